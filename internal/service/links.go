package service

import (
	"context"
	"errors"
	"fmt"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// PostCategoryService manages the many-to-many post/category links.
type PostCategoryService struct {
	links repository.PostCategories
}

func NewPostCategoryService(links repository.PostCategories) *PostCategoryService {
	return &PostCategoryService{links: links}
}

var _ PostCategories = (*PostCategoryService)(nil)

// Create links a post to a category. Both sides must exist.
func (s *PostCategoryService) Create(ctx context.Context, postID, categoryID int) (*models.PostCategoryLink, error) {
	if postID <= 0 || categoryID <= 0 {
		return nil, fmt.Errorf("%w: postId and categoryId are required", ErrInvalidInput)
	}
	id, err := s.links.Create(ctx, postID, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrMissingRef) {
			return nil, fmt.Errorf("%w: unknown post or category", ErrInvalidInput)
		}
		return nil, fmt.Errorf("create link: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *PostCategoryService) List(ctx context.Context) ([]models.PostCategoryLink, error) {
	return s.links.List(ctx)
}

func (s *PostCategoryService) Get(ctx context.Context, id int) (*models.PostCategoryLink, error) {
	l, err := s.links.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("link %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

// Update re-points a link to another post or category.
func (s *PostCategoryService) Update(ctx context.Context, id int, upd repository.PostCategoryUpdate) (*models.PostCategoryLink, error) {
	if upd.PostID != nil && *upd.PostID <= 0 {
		return nil, fmt.Errorf("%w: invalid postId", ErrInvalidInput)
	}
	if upd.CategoryID != nil && *upd.CategoryID <= 0 {
		return nil, fmt.Errorf("%w: invalid categoryId", ErrInvalidInput)
	}
	l, err := s.links.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("link %d: %w", id, ErrNotFound)
		case errors.Is(err, repository.ErrMissingRef):
			return nil, fmt.Errorf("%w: unknown post or category", ErrInvalidInput)
		}
		return nil, err
	}
	return l, nil
}

func (s *PostCategoryService) Delete(ctx context.Context, id int) error {
	if err := s.links.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("link %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
