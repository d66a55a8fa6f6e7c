package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/itssocoldhere/glowbio/internal/model"
	"github.com/itssocoldhere/glowbio/internal/repository"
	"github.com/itssocoldhere/glowbio/internal/validation"
)

type ProfileService struct {
	linkRepo    repository.SocialLinkRepository
	colorRepo   repository.GlowColorRepository
	commentRepo repository.CommentRepository
	now         func() time.Time
}

func NewProfileService(
	linkRepo repository.SocialLinkRepository,
	colorRepo repository.GlowColorRepository,
	commentRepo repository.CommentRepository,
) *ProfileService {
	return &ProfileService{
		linkRepo:    linkRepo,
		colorRepo:   colorRepo,
		commentRepo: commentRepo,
		now:         time.Now,
	}
}

func (s *ProfileService) Links(ctx context.Context, userID string) ([]model.SocialLink, error) {
	return s.linkRepo.ByUserID(ctx, userID)
}

// UpsertLink replaces the link for platform. An href that is not an http(s)
// URL removes the link instead. hadPrevious reports whether one existed.
func (s *ProfileService) UpsertLink(ctx context.Context, userID, platform, href string) (bool, error) {
	href = strings.TrimSpace(href)

	var link *model.SocialLink
	if validation.IsLinkURL(href) {
		link = &model.SocialLink{
			Platform: platform,
			Href:     validation.Truncate(href, validation.MaxHrefLength),
			At:       s.now().UTC(),
		}
	}

	hadPrevious, err := s.linkRepo.Replace(ctx, userID, platform, link)
	if err != nil {
		return false, fmt.Errorf("update %s link: %w", platform, err)
	}
	return hadPrevious, nil
}

func (s *ProfileService) GlowColor(ctx context.Context, userID string) (string, bool, error) {
	return s.colorRepo.ByUserID(ctx, userID)
}

func (s *ProfileService) SetGlowColor(ctx context.Context, userID, color string) error {
	if err := s.colorRepo.Set(ctx, userID, color); err != nil {
		return fmt.Errorf("set glow color: %w", err)
	}
	return nil
}

func (s *ProfileService) Comments(ctx context.Context, userID string) ([]model.Comment, error) {
	return s.commentRepo.ByUserID(ctx, userID)
}

// AppendComment stores a comment at the head of the identity's list.
func (s *ProfileService) AppendComment(ctx context.Context, userID, text string) (*model.Comment, error) {
	err := validation.ValidateComment(text)
	if err != nil {
		return nil, err
	}

	now := s.now()
	comment := &model.Comment{
		ID:     newCommentID(now),
		UserID: userID,
		Text:   validation.Truncate(norm.NFC.String(text), validation.MaxCommentLength),
		At:     now.UTC(),
	}

	if err := s.commentRepo.Prepend(ctx, comment); err != nil {
		return nil, fmt.Errorf("append comment: %w", err)
	}
	return comment, nil
}

// Profile collects everything stored for one identity.
func (s *ProfileService) Profile(ctx context.Context, userID string) (*model.Profile, error) {
	links, err := s.Links(ctx, userID)
	if err != nil {
		return nil, err
	}
	comments, err := s.Comments(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := &model.Profile{UserID: userID, Links: links, Comments: comments}

	color, ok, err := s.GlowColor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ok {
		profile.GlowColor = &color
	}
	return profile, nil
}

// newCommentID is the creation time in milliseconds plus a short random suffix.
func newCommentID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
