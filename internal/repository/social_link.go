package repository

import (
	"context"

	"github.com/itssocoldhere/glowbio/internal/model"
	"github.com/itssocoldhere/glowbio/internal/storage"
)

type SocialLinkRepository interface {
	ByUserID(ctx context.Context, userID string) ([]model.SocialLink, error)
	// Replace drops any link for platform and appends link when it is not
	// nil. It reports whether a link for platform existed before.
	Replace(ctx context.Context, userID, platform string, link *model.SocialLink) (bool, error)
}

type socialLinkRepository struct {
	links *Collection[[]model.SocialLink]
}

func NewSocialLinkRepository(backend storage.Backend) SocialLinkRepository {
	return &socialLinkRepository{
		links: NewCollection[[]model.SocialLink](backend, SocialLinksCollection),
	}
}

func (r *socialLinkRepository) ByUserID(ctx context.Context, userID string) ([]model.SocialLink, error) {
	all, err := r.links.Read(ctx)
	if err != nil {
		return nil, err
	}
	links := all[userID]
	if links == nil {
		links = []model.SocialLink{}
	}
	return links, nil
}

func (r *socialLinkRepository) Replace(ctx context.Context, userID, platform string, link *model.SocialLink) (bool, error) {
	all, err := r.links.Read(ctx)
	if err != nil {
		return false, err
	}

	current := all[userID]
	kept := make([]model.SocialLink, 0, len(current)+1)
	for _, l := range current {
		if l.Platform != platform {
			kept = append(kept, l)
		}
	}
	hadPrevious := len(kept) != len(current)

	if link == nil && !hadPrevious {
		return false, nil
	}
	if link != nil {
		kept = append(kept, *link)
	}

	all[userID] = kept
	if err := r.links.Write(ctx, all); err != nil {
		return false, err
	}
	return hadPrevious, nil
}
