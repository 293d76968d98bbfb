package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// ImageService persists uploaded-image records over the file store.
type ImageService struct {
	images repository.Images
	store  Uploads
}

func NewImageService(images repository.Images, store Uploads) *ImageService {
	return &ImageService{images: images, store: store}
}

var _ Images = (*ImageService)(nil)

// Upload writes the blob to the file store and records it in the database.
// postID 0 leaves the image unattached.
func (s *ImageService) Upload(ctx context.Context, postID int, originalName string, size int64, src io.Reader) (*models.Image, error) {
	if postID < 0 {
		return nil, fmt.Errorf("%w: invalid postId", ErrInvalidInput)
	}

	blob, err := s.store.Save(ctx, originalName, size, src)
	if err != nil {
		return nil, fmt.Errorf("store image blob: %w", err)
	}

	id, err := s.images.Create(ctx, models.Image{
		PostID:     postID,
		URL:        blob.URL,
		Name:       blob.Name,
		Size:       blob.Size,
		UploadedAt: blob.UploadedAt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrMissingRef) {
			return nil, fmt.Errorf("%w: unknown post %d", ErrInvalidInput, postID)
		}
		return nil, fmt.Errorf("record image: %w", err)
	}
	return s.Get(ctx, id)
}

// List returns all image records, newest first.
func (s *ImageService) List(ctx context.Context) ([]models.Image, error) {
	return s.images.List(ctx)
}

// Get loads a single image record.
func (s *ImageService) Get(ctx context.Context, id int) (*models.Image, error) {
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("image %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return img, nil
}

// Update applies partial changes to an image record.
func (s *ImageService) Update(ctx context.Context, id int, upd repository.ImageUpdate) (*models.Image, error) {
	if upd.PostID != nil && *upd.PostID < 0 {
		return nil, fmt.Errorf("%w: invalid postId", ErrInvalidInput)
	}
	if upd.URL != nil && strings.TrimSpace(*upd.URL) == "" {
		return nil, fmt.Errorf("%w: url cannot be empty", ErrInvalidInput)
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	img, err := s.images.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("image %d: %w", id, ErrNotFound)
		case errors.Is(err, repository.ErrMissingRef):
			return nil, fmt.Errorf("%w: unknown post", ErrInvalidInput)
		}
		return nil, err
	}
	return img, nil
}

// Delete removes an image record. The blob stays on disk; the static route
// keeps serving files already referenced by published posts.
func (s *ImageService) Delete(ctx context.Context, id int) error {
	if err := s.images.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("image %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
