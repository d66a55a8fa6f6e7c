package validation

import (
	"errors"
	"strings"
)

// MaxIdentityLength bounds identity keys accepted from clients.
const MaxIdentityLength = 64

var (
	ErrIdentityRequired = errors.New("user id is required")
	ErrIdentityTooLong  = errors.New("user id is too long (max 64 characters)")
)

// ValidateIdentity validates an identity key
func ValidateIdentity(id string) error {
	trimmed := strings.TrimSpace(id)

	if trimmed == "" {
		return ErrIdentityRequired
	}

	if len(trimmed) > MaxIdentityLength {
		return ErrIdentityTooLong
	}

	return nil
}
