package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// PostService orchestrates article CRUD over the posts repository.
type PostService struct {
	posts repository.Posts
}

func NewPostService(posts repository.Posts) *PostService {
	return &PostService{posts: posts}
}

var _ Posts = (*PostService)(nil)

// Create validates and stores a new article. Status defaults to draft.
func (s *PostService) Create(ctx context.Context, in PostInput) (*models.NewsPost, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = models.PostDraft
	}
	if !models.ValidPostStatus(status) {
		return nil, fmt.Errorf("%w: unknown post status %q", ErrInvalidInput, in.Status)
	}

	id, err := s.posts.Create(ctx, models.NewsPost{
		Title:    in.Title,
		Content:  in.Content,
		Author:   in.Author,
		Category: in.Category,
		Status:   status,
		Image:    in.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return s.Get(ctx, id)
}

// List returns all articles, newest updates first.
func (s *PostService) List(ctx context.Context) ([]models.NewsPost, error) {
	return s.posts.List(ctx)
}

// Get loads a single article.
func (s *PostService) Get(ctx context.Context, id int) (*models.NewsPost, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// Update applies partial changes to an article.
func (s *PostService) Update(ctx context.Context, id int, upd repository.PostUpdate) (*models.NewsPost, error) {
	if upd.Status != nil && !models.ValidPostStatus(*upd.Status) {
		return nil, fmt.Errorf("%w: unknown post status %q", ErrInvalidInput, *upd.Status)
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
	}
	p, err := s.posts.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// Delete removes an article.
func (s *PostService) Delete(ctx context.Context, id int) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
