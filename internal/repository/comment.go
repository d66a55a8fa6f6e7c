package repository

import (
	"context"

	"github.com/itssocoldhere/glowbio/internal/model"
	"github.com/itssocoldhere/glowbio/internal/storage"
)

type CommentRepository interface {
	// ByUserID returns comments newest first
	ByUserID(ctx context.Context, userID string) ([]model.Comment, error)
	Prepend(ctx context.Context, comment *model.Comment) error
}

type commentRepository struct {
	comments *Collection[[]model.Comment]
}

func NewCommentRepository(backend storage.Backend) CommentRepository {
	return &commentRepository{
		comments: NewCollection[[]model.Comment](backend, CommentsCollection),
	}
}

func (r *commentRepository) ByUserID(ctx context.Context, userID string) ([]model.Comment, error) {
	all, err := r.comments.Read(ctx)
	if err != nil {
		return nil, err
	}
	list := all[userID]
	if list == nil {
		list = []model.Comment{}
	}
	return list, nil
}

func (r *commentRepository) Prepend(ctx context.Context, comment *model.Comment) error {
	all, err := r.comments.Read(ctx)
	if err != nil {
		return err
	}
	all[comment.UserID] = append([]model.Comment{*comment}, all[comment.UserID]...)
	return r.comments.Write(ctx, all)
}
