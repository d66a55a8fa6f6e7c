package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/itssocoldhere/glowbio/internal/repository"
	"github.com/itssocoldhere/glowbio/internal/storage"
	"github.com/itssocoldhere/glowbio/internal/validation"
)

func newTestProfileService(t *testing.T) *ProfileService {
	t.Helper()
	backend := storage.NewFileBackend(t.TempDir())
	svc := NewProfileService(
		repository.NewSocialLinkRepository(backend),
		repository.NewGlowColorRepository(backend),
		repository.NewCommentRepository(backend),
	)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestUpsertLinkReplacesExisting(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService(t)

	had, err := svc.UpsertLink(ctx, "1", "instagram", "https://instagram.com/a")
	require.NoError(t, err)
	require.False(t, had)

	had, err = svc.UpsertLink(ctx, "1", "instagram", " https://instagram.com/b ")
	require.NoError(t, err)
	require.True(t, had)

	links, err := svc.Links(ctx, "1")
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, "instagram", links[0].Platform)
	require.Equal(t, "https://instagram.com/b", links[0].Href)
	require.Equal(t, svc.now(), links[0].At)
}

func TestUpsertLinkWithNonURLRemoves(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService(t)

	had, err := svc.UpsertLink(ctx, "1", "tiktok", "")
	require.NoError(t, err)
	require.False(t, had)

	_, err = svc.UpsertLink(ctx, "1", "tiktok", "https://tiktok.com/@x")
	require.NoError(t, err)

	had, err = svc.UpsertLink(ctx, "1", "tiktok", "tiktok.com/@x")
	require.NoError(t, err)
	require.True(t, had)

	links, err := svc.Links(ctx, "1")
	require.NoError(t, err)
	require.Empty(t, links)
}

func TestUpsertLinkTruncatesHref(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService(t)

	href := "https://example.com/" + strings.Repeat("a", 600)
	_, err := svc.UpsertLink(ctx, "1", "steam", href)
	require.NoError(t, err)

	links, err := svc.Links(ctx, "1")
	require.NoError(t, err)
	require.Len(t, links[0].Href, validation.MaxHrefLength)
}

func TestGlowColor(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService(t)

	_, ok, err := svc.GlowColor(ctx, "1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, svc.SetGlowColor(ctx, "1", "#3b82f6"))

	color, ok, err := svc.GlowColor(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "#3b82f6", color)
}

func TestAppendComment(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService(t)

	first, err := svc.AppendComment(ctx, "1", "hello")
	require.NoError(t, err)
	require.Regexp(t, `^\d+-[0-9a-f]{6}$`, first.ID)
	require.Equal(t, "1", first.UserID)

	second, err := svc.AppendComment(ctx, "1", "again")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	list, err := svc.Comments(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
}

func TestAppendCommentTruncatesTo500(t *testing.T) {
	svc := newTestProfileService(t)

	c, err := svc.AppendComment(context.Background(), "1", strings.Repeat("x", 501))
	require.NoError(t, err)
	require.Equal(t, 500, utf8.RuneCountInString(c.Text))
}

func TestAppendCommentRejectsBlank(t *testing.T) {
	svc := newTestProfileService(t)

	_, err := svc.AppendComment(context.Background(), "1", "  \n ")
	require.ErrorIs(t, err, validation.ErrCommentRequired)

	list, err := svc.Comments(context.Background(), "1")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestProfileAggregates(t *testing.T) {
	ctx := context.Background()
	svc := newTestProfileService(t)

	profile, err := svc.Profile(ctx, "1")
	require.NoError(t, err)
	require.Nil(t, profile.GlowColor)
	require.Empty(t, profile.Links)

	require.NoError(t, svc.SetGlowColor(ctx, "1", "#fff"))
	_, err = svc.UpsertLink(ctx, "1", "roblox", "https://roblox.com/users/1")
	require.NoError(t, err)

	profile, err = svc.Profile(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "#fff", *profile.GlowColor)
	require.Len(t, profile.Links, 1)
}
