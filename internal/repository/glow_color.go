package repository

import (
	"context"

	"github.com/itssocoldhere/glowbio/internal/storage"
)

type GlowColorRepository interface {
	ByUserID(ctx context.Context, userID string) (string, bool, error)
	Set(ctx context.Context, userID, color string) error
}

type glowColorRepository struct {
	colors *Collection[string]
}

func NewGlowColorRepository(backend storage.Backend) GlowColorRepository {
	return &glowColorRepository{
		colors: NewCollection[string](backend, GlowColorsCollection),
	}
}

func (r *glowColorRepository) ByUserID(ctx context.Context, userID string) (string, bool, error) {
	all, err := r.colors.Read(ctx)
	if err != nil {
		return "", false, err
	}
	color, ok := all[userID]
	if !ok || color == "" {
		return "", false, nil
	}
	return color, true, nil
}

func (r *glowColorRepository) Set(ctx context.Context, userID, color string) error {
	all, err := r.colors.Read(ctx)
	if err != nil {
		return err
	}
	all[userID] = color
	return r.colors.Write(ctx, all)
}
