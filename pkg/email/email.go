package email

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern must match the whole string: a local part, a domain, and a
// final alphabetic label of 2 to 64 letters.
var emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// IsValid reports whether email is syntactically acceptable for sign-up and
// sign-in. It never panics and returns false for the empty string.
func IsValid(email string) bool {
	return emailPattern.MatchString(email)
}

// DeriveNameFromEmail builds a display name from the local part of an email
// address, used when sign-up is submitted without a name.
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
