package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	cfg "github.com/itssocoldhere/glowbio/internal/config"
	"github.com/itssocoldhere/glowbio/internal/db"
)

// ErrSnapshotNotFound is returned by Load when nothing was saved under a name yet.
var ErrSnapshotNotFound = errors.New("storage: snapshot not found")

// Backend stores whole-collection snapshots by name.
type Backend interface {
	// Load returns the last saved snapshot for name
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the snapshot for name
	Save(ctx context.Context, name string, data []byte) error

	// Close releases connections held by the backend
	Close() error
}

// New creates the backend selected by STORAGE_DRIVER
// file: JSON files in DATA_DIR (default)
// sqlite, pgx: a collections table managed by goose migrations
// s3: one object per collection in an S3-compatible bucket
func New(c *cfg.Config) (Backend, error) {
	switch c.StorageDriver {
	case "", "file":
		slog.Info("initializing file storage", "dir", c.DataDir)
		return NewFileBackend(c.DataDir), nil
	case "sqlite", "pgx":
		database, err := db.Init(c.StorageDriver, c.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		err = db.RunMigrations(database.DB, c.StorageDriver)
		if err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return NewSQLBackend(database), nil
	case "s3":
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Backend(S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
			Prefix:    c.S3Prefix,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}
