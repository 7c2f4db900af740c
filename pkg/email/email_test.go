package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain address", "jane.doe@example.com", true},
		{"plus tag and percent", "jane+work%1@mail.example.co", true},
		{"subdomain", "ops@eu.office.example.org", true},
		{"empty string", "", false},
		{"missing at sign", "jane.example.com", false},
		{"missing domain dot", "jane@localhost", false},
		{"missing local part", "@example.com", false},
		{"single letter tld", "jane@example.c", false},
		{"numeric tld", "jane@example.123", false},
		{"space in local part", "jane doe@example.com", false},
		{"trailing garbage", "jane@example.com extra", false},
		{"two at signs", "jane@doe@example.com", false},
		{"tld of 64 letters", "jane@example." + strings.Repeat("a", 64), true},
		{"tld of 65 letters", "jane@example." + strings.Repeat("a", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}

func TestDeriveNameFromEmail(t *testing.T) {
	t.Run("splits dotted local part", func(t *testing.T) {
		first, last := DeriveNameFromEmail("jane.doe@example.com")
		assert.Equal(t, "Jane", first)
		assert.Equal(t, "Doe", last)
	})

	t.Run("single token falls back to User", func(t *testing.T) {
		first, last := DeriveNameFromEmail("ops@example.com")
		assert.Equal(t, "Ops", first)
		assert.Equal(t, "User", last)
	})

	t.Run("separator-only local part", func(t *testing.T) {
		first, last := DeriveNameFromEmail("._@example.com")
		assert.Equal(t, "User", first)
		assert.Equal(t, "User", last)
	})
}
