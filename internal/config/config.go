package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Profiles that may edit themselves through chat commands when PROFILE_IDS is unset.
var defaultProfileIDs = []string{"1098101847014777002", "1419932037053153402"}

type Config struct {
	// Application
	AppEnv    string
	Port      string
	StaticDir string

	// Storage (file, sqlite, pgx or s3)
	StorageDriver string
	DataDir       string
	DBConnection  string

	// Storage - S3-compatible
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services (MinIO, R2, etc.)
	S3Prefix    string

	// Discord
	DiscordBotToken   string
	DiscordAPITimeout time.Duration
	BotEnabled        bool
	CommandPrefix     string
	ProfileIDs        []string // Allow-list of identities that may run chat commands

	// Comments
	CommentRateLimit  int
	CommentRateWindow time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppEnv:    envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:      envString("PORT", "3000"),
		StaticDir: envString("STATIC_DIR", "public"),

		// Storage
		StorageDriver: envString("STORAGE_DRIVER", "file"),
		DataDir:       envString("DATA_DIR", "data"),
		DBConnection:  envString("DB_CONNECTION", "./data/glowbio.db?_pragma=journal_mode(WAL)"),

		S3Region:    envString("S3_REGION", ""),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
		S3Prefix:    envString("S3_PREFIX", "glowbio/"),

		// Discord
		DiscordBotToken:   envString("DISCORD_BOT_TOKEN", ""),
		DiscordAPITimeout: envDuration("DISCORD_API_TIMEOUT", 10*time.Second),
		BotEnabled:        envBool("BOT_ENABLED", true),
		CommandPrefix:     envString("COMMAND_PREFIX", ","),
		ProfileIDs:        envList("PROFILE_IDS", defaultProfileIDs),

		// Comments
		CommentRateLimit:  envInt("COMMENT_RATE_LIMIT", 10),
		CommentRateWindow: envDuration("COMMENT_RATE_WINDOW", time.Minute),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.StorageDriver == "s3" {
		validateS3(cfg)
	}

	return cfg
}

// validateS3 stops the process when the s3 driver is selected without a bucket.
func validateS3(cfg *Config) {
	if cfg.S3Bucket == "" || cfg.S3Region == "" {
		slog.Error("s3 storage requires S3_BUCKET and S3_REGION",
			"hint", "set STORAGE_DRIVER=file for local development")
		os.Exit(1)
	}
}

// RequireBotToken exits when no Discord token is configured. Used by entry
// points that cannot do anything useful without the gateway.
func (c *Config) RequireBotToken() {
	if c.DiscordBotToken != "" {
		return
	}
	slog.Error("config required env var missing", "key", "DISCORD_BOT_TOKEN")
	os.Exit(1)
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envList reads a comma separated list, dropping empty entries.
func envList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return append([]string(nil), def...)
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// HasBotToken reports whether Discord lookups and the chat bot can run.
func (c *Config) HasBotToken() bool {
	return c.DiscordBotToken != ""
}
