package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLBackend keeps snapshots as rows of the collections table.
type SQLBackend struct {
	db *sqlx.DB
}

func NewSQLBackend(db *sqlx.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (b *SQLBackend) Load(ctx context.Context, name string) ([]byte, error) {
	var data string
	err := b.db.GetContext(ctx, &data, b.db.Rebind(`SELECT data FROM collections WHERE name = ?`), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", name, err)
	}
	return []byte(data), nil
}

func (b *SQLBackend) Save(ctx context.Context, name string, data []byte) error {
	_, err := b.db.ExecContext(ctx, b.db.Rebind(`
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`), name, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	return nil
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}
