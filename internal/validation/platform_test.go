package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePlatform(t *testing.T) {
	tests := map[string]string{
		"insta":     "instagram",
		"Instagram": "instagram",
		"tiktok":    "tiktok",
		"ROBLOX":    "roblox",
		"discord":   "discord",
		"steam":     "steam",
		"telegram":  "telegram",
	}
	for alias, want := range tests {
		p, ok := ResolvePlatform(alias)
		require.True(t, ok, alias)
		require.Equal(t, want, p.Key)
	}

	_, ok := ResolvePlatform("myspace")
	require.False(t, ok)
}

func TestPlatformsOrder(t *testing.T) {
	names := make([]string, 0)
	for _, p := range Platforms() {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"Instagram", "TikTok", "Roblox", "Discord", "Steam", "Telegram"}, names)
}
