package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"newsroom/internal/models"
)

func newMockImageRepo(t *testing.T) (*ImageRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewImageRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestImageRepository_Create(t *testing.T) {
	uploadedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("attached to post", func(t *testing.T) {
		repo, mock, cleanup := newMockImageRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertImageSQL)).
			WithArgs(3, "/uploads/a.png", "a.png", "12KB", uploadedAt).
			WillReturnResult(sqlmock.NewResult(9, 1))

		id, err := repo.Create(context.Background(), models.Image{
			PostID: 3, URL: "/uploads/a.png", Name: "a.png", Size: "12KB", UploadedAt: uploadedAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 9 {
			t.Fatalf("expected id=9, got %d", id)
		}
	})

	t.Run("unattached stores NULL post", func(t *testing.T) {
		repo, mock, cleanup := newMockImageRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertImageSQL)).
			WithArgs(nil, "/uploads/b.png", "b.png", "1KB", uploadedAt).
			WillReturnResult(sqlmock.NewResult(10, 1))

		_, err := repo.Create(context.Background(), models.Image{
			URL: "/uploads/b.png", Name: "b.png", Size: "1KB", UploadedAt: uploadedAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing post", func(t *testing.T) {
		repo, mock, cleanup := newMockImageRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertImageSQL)).
			WithArgs(99, "/uploads/c.png", "c.png", "1KB", uploadedAt).
			WillReturnError(errors.New("constraint failed: FOREIGN KEY constraint failed"))

		_, err := repo.Create(context.Background(), models.Image{
			PostID: 99, URL: "/uploads/c.png", Name: "c.png", Size: "1KB", UploadedAt: uploadedAt,
		})
		if !errors.Is(err, ErrMissingRef) {
			t.Fatalf("expected ErrMissingRef, got %v", err)
		}
	})
}

func TestImageRepository_GetByID(t *testing.T) {
	t.Run("joined post title", func(t *testing.T) {
		repo, mock, cleanup := newMockImageRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "post_id", "title", "url", "name", "size", "uploaded_at"}).
			AddRow(9, 3, "Launch", "/uploads/a.png", "a.png", "12KB", time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(selectImageSQL + " WHERE i.id = ?")).
			WithArgs(9).
			WillReturnRows(rows)

		img, err := repo.GetByID(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.PostID != 3 || img.PostTitle != "Launch" {
			t.Fatalf("joined fields missing: %+v", img)
		}
	})

	t.Run("null post columns", func(t *testing.T) {
		repo, mock, cleanup := newMockImageRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "post_id", "title", "url", "name", "size", "uploaded_at"}).
			AddRow(10, nil, nil, "/uploads/b.png", "b.png", nil, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta(selectImageSQL + " WHERE i.id = ?")).
			WithArgs(10).
			WillReturnRows(rows)

		img, err := repo.GetByID(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img.PostID != 0 || img.PostTitle != "" || img.Size != "" {
			t.Fatalf("expected zero values for NULL columns, got %+v", img)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := newMockImageRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectImageSQL + " WHERE i.id = ?")).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "title", "url", "name", "size", "uploaded_at"}))

		if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestImageRepository_Update_DetachesPost(t *testing.T) {
	repo, mock, cleanup := newMockImageRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE images SET post_id = ? WHERE id = ?")).
		WithArgs(nil, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows([]string{"id", "post_id", "title", "url", "name", "size", "uploaded_at"}).
		AddRow(9, nil, nil, "/uploads/a.png", "a.png", "12KB", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(selectImageSQL + " WHERE i.id = ?")).
		WithArgs(9).
		WillReturnRows(rows)

	zero := 0
	img, err := repo.Update(context.Background(), 9, ImageUpdate{PostID: &zero})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.PostID != 0 {
		t.Fatalf("expected detached image, got post %d", img.PostID)
	}
}
