package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestIsLinkURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://instagram.com/x", true},
		{"http://steamcommunity.com/id/x", true},
		{"https://", false},
		{"ftp://example.com", false},
		{"instagram.com/x", false},
		{"HTTPS://example.com", false},
		{"", false},
		{"remove", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, IsLinkURL(tt.in), tt.in)
	}
}

func TestValidateComment(t *testing.T) {
	require.ErrorIs(t, ValidateComment(""), ErrCommentRequired)
	require.ErrorIs(t, ValidateComment(" \n\t"), ErrCommentRequired)
	require.NoError(t, ValidateComment("nice page"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", Truncate("abc", 5))
	require.Len(t, Truncate(strings.Repeat("a", 501), 500), 500)

	got := Truncate(strings.Repeat("é", 600), 500)
	require.Equal(t, 500, utf8.RuneCountInString(got))
	require.True(t, utf8.ValidString(got))
}

func TestValidateIdentity(t *testing.T) {
	require.NoError(t, ValidateIdentity("1098101847014777002"))
	require.ErrorIs(t, ValidateIdentity("  "), ErrIdentityRequired)
	require.ErrorIs(t, ValidateIdentity(strings.Repeat("9", 65)), ErrIdentityTooLong)
}
