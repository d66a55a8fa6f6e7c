package validation

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	// MaxHrefLength caps stored social link URLs.
	MaxHrefLength = 500
	// MaxCommentLength caps stored comment text.
	MaxCommentLength = 500
)

var ErrCommentRequired = errors.New("comment text is required")

// IsLinkURL reports whether s is an absolute http or https URL.
func IsLinkURL(s string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// ValidateComment checks that a comment has visible text.
func ValidateComment(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrCommentRequired
	}
	return nil
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
