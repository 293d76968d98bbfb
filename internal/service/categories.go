package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

type CategoryService struct {
	categories repository.Categories
}

func NewCategoryService(categories repository.Categories) *CategoryService {
	return &CategoryService{categories: categories}
}

var _ Categories = (*CategoryService)(nil)

// Create validates and stores a new category. Status defaults to Active.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = models.StatusActive
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}

	id, err := s.categories.Create(ctx, models.Category{
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*models.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, upd repository.CategoryUpdate) (*models.Category, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", ErrInvalidInput)
	}
	if upd.Status != nil && !models.ValidStatus(*upd.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *upd.Status)
	}
	c, err := s.categories.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
