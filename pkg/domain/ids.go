// Package domain holds typed identifiers shared across packages.
//
// Each ID is a distinct named UUID type so a UserID can never be passed where
// an AttemptID is expected. Parsing happens at trust boundaries (CLI input,
// configuration) and rejects empty, malformed, and nil UUIDs.
package domain

import (
	"github.com/google/uuid"

	dErrors "presence/pkg/domain-errors"
)

// UserID identifies an account holder.
type UserID uuid.UUID

// AttemptID identifies a single check-in or check-out evaluation.
type AttemptID uuid.UUID

// NewUserID returns a fresh random user ID.
func NewUserID() UserID {
	return UserID(uuid.New())
}

// NewAttemptID returns a fresh random attempt ID.
func NewAttemptID() AttemptID {
	return AttemptID(uuid.New())
}

func (u UserID) String() string {
	return uuid.UUID(u).String()
}

// IsNil reports whether the ID is the zero UUID.
func (u UserID) IsNil() bool {
	return uuid.UUID(u) == uuid.Nil
}

func (a AttemptID) String() string {
	return uuid.UUID(a).String()
}

func (a AttemptID) IsNil() bool {
	return uuid.UUID(a) == uuid.Nil
}

// ParseUserID parses a user ID from its canonical string form.
func ParseUserID(s string) (UserID, error) {
	parsed, err := parseUUID(s, "user ID")
	if err != nil {
		return UserID{}, err
	}
	return UserID(parsed), nil
}

// ParseAttemptID parses an attempt ID from its canonical string form.
func ParseAttemptID(s string) (AttemptID, error) {
	parsed, err := parseUUID(s, "attempt ID")
	if err != nil {
		return AttemptID{}, err
	}
	return AttemptID(parsed), nil
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+label)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" must not be nil")
	}
	return parsed, nil
}
