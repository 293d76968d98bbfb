package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"newsroom/internal/models"

	"github.com/google/uuid"
)

// UploadConfig points the file store at its directory and public URL prefix.
type UploadConfig struct {
	Dir     string
	BaseURL string // e.g. "/uploads/images"
}

// FileStore saves image blobs to local disk under random filenames.
type FileStore struct {
	cfg UploadConfig
}

func NewFileStore(cfg UploadConfig) *FileStore {
	return &FileStore{cfg: cfg}
}

var _ Uploads = (*FileStore)(nil)

// Save writes src to disk under a generated name and returns the public URL.
// The original filename only contributes its extension.
func (f *FileStore) Save(ctx context.Context, originalName string, size int64, src io.Reader) (*models.UploadedImage, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	if err := os.MkdirAll(f.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure upload dir %q: %w", f.cfg.Dir, err)
	}

	dst, err := os.Create(filepath.Join(f.cfg.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file %q: %w", name, err)
	}
	defer func() { _ = dst.Close() }()

	written, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(dst.Name())
		return nil, fmt.Errorf("write upload file %q: %w", name, err)
	}
	if size > 0 && written != size {
		_ = os.Remove(dst.Name())
		return nil, fmt.Errorf("short write for upload %q: got %d of %d bytes", name, written, size)
	}

	return &models.UploadedImage{
		URL:        strings.TrimRight(f.cfg.BaseURL, "/") + "/" + name,
		Name:       name,
		Size:       formatSize(written),
		UploadedAt: time.Now().UTC(),
	}, nil
}

// formatSize renders a byte count the way the dashboard displays it, e.g. "500KB".
func formatSize(n int64) string {
	const kb = 1024
	if n < kb {
		return fmt.Sprintf("%dB", n)
	}
	return fmt.Sprintf("%dKB", (n+kb-1)/kb)
}
