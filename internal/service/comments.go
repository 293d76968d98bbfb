package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

type CommentService struct {
	comments repository.Comments
}

func NewCommentService(comments repository.Comments) *CommentService {
	return &CommentService{comments: comments}
}

var _ Comments = (*CommentService)(nil)

// Submit stores a message from the public contact form.
func (s *CommentService) Submit(ctx context.Context, in CommentInput) (int, error) {
	if strings.TrimSpace(in.Message) == "" {
		return 0, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	id, err := s.comments.Insert(ctx, models.Comment{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
		Read:    false,
		Status:  models.CommentPending,
	})
	if err != nil {
		return 0, fmt.Errorf("save comment: %w", err)
	}
	return id, nil
}

// List returns messages matching the filter, newest first.
func (s *CommentService) List(ctx context.Context, f repository.CommentFilter) ([]models.Comment, error) {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return nil, fmt.Errorf("%w: 'from' must be <= 'to'", ErrInvalidInput)
	}
	return s.comments.List(ctx, f)
}

// MarkRead flags a message as read.
func (s *CommentService) MarkRead(ctx context.Context, id int) (*models.Comment, error) {
	c, err := s.comments.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

// SetStatus moves a message to approved or rejected.
func (s *CommentService) SetStatus(ctx context.Context, id int, status string) (*models.Comment, error) {
	if status != models.CommentApproved && status != models.CommentRejected {
		return nil, fmt.Errorf("%w: unknown comment status %q", ErrInvalidInput, status)
	}
	c, err := s.comments.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a message.
func (s *CommentService) Delete(ctx context.Context, id int) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
