package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "development")
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "PROFILE_IDS", "COMMAND_PREFIX", "DISCORD_BOT_TOKEN", "BOT_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.True(t, cfg.IsDevelopment())
	require.False(t, cfg.IsProduction())
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "file", cfg.StorageDriver)
	require.Equal(t, ",", cfg.CommandPrefix)
	require.Equal(t, defaultProfileIDs, cfg.ProfileIDs)
	require.True(t, cfg.BotEnabled)
	require.False(t, cfg.HasBotToken())
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("PROFILE_IDS", " 1, 2 ,,3 ")
	t.Setenv("COMMAND_PREFIX", "!")
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("COMMENT_RATE_WINDOW", "30s")

	cfg := Load()

	require.True(t, cfg.IsProduction())
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, []string{"1", "2", "3"}, cfg.ProfileIDs)
	require.Equal(t, "!", cfg.CommandPrefix)
	require.True(t, cfg.HasBotToken())
	require.Equal(t, 30*time.Second, cfg.CommentRateWindow)
}

func TestEnvHelpersFallBackOnInvalidValues(t *testing.T) {
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_INT", "-4")
	t.Setenv("X_DURATION", "soon")

	require.True(t, envBool("X_BOOL", true))
	require.Equal(t, 7, envInt("X_INT", 7))
	require.Equal(t, time.Second, envDuration("X_DURATION", time.Second))
}

func TestEnvListCopiesDefault(t *testing.T) {
	t.Setenv("X_LIST", "")
	def := []string{"a"}

	got := envList("X_LIST", def)
	got[0] = "b"

	require.Equal(t, "a", def[0])
}
