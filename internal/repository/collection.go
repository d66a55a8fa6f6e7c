package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/itssocoldhere/glowbio/internal/storage"
)

// Collection names, also used as file and object names by the backends.
const (
	SocialLinksCollection = "social-links"
	GlowColorsCollection  = "glow-colors"
	CommentsCollection    = "comments"
)

// Collection is a whole-snapshot mapping from identity to T.
// Every mutation reads the full mapping, changes it in memory and writes it
// back; concurrent writers race and the last one wins.
type Collection[T any] struct {
	backend storage.Backend
	name    string
}

func NewCollection[T any](backend storage.Backend, name string) *Collection[T] {
	return &Collection[T]{backend: backend, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Read returns the stored mapping. A missing, empty or unparsable snapshot
// reads as an empty mapping; entries that do not decode as T are dropped.
func (c *Collection[T]) Read(ctx context.Context) (map[string]T, error) {
	data, err := c.backend.Load(ctx, c.name)
	if errors.Is(err, storage.ErrSnapshotNotFound) {
		return map[string]T{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]T{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("collection unreadable, treating as empty", "collection", c.name, "error", err)
		return map[string]T{}, nil
	}

	out := make(map[string]T, len(raw))
	for key, value := range raw {
		var item T
		if err := json.Unmarshal(value, &item); err != nil {
			slog.Warn("dropping malformed collection entry", "collection", c.name, "key", key, "error", err)
			continue
		}
		out[key] = item
	}
	return out, nil
}

func (c *Collection[T]) Write(ctx context.Context, all map[string]T) error {
	if all == nil {
		all = map[string]T{}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	return c.backend.Save(ctx, c.name, data)
}
