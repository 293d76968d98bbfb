package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockLinkRepo(t *testing.T) (*PostCategoryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewPostCategoryRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestPostCategoryRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockLinkRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertLinkSQL)).
			WithArgs(2, 7).
			WillReturnResult(sqlmock.NewResult(5, 1))

		id, err := repo.Create(context.Background(), 2, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 5 {
			t.Fatalf("expected id=5, got %d", id)
		}
	})

	t.Run("missing post or category", func(t *testing.T) {
		repo, mock, cleanup := newMockLinkRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertLinkSQL)).
			WithArgs(99, 7).
			WillReturnError(errors.New("constraint failed: FOREIGN KEY constraint failed"))

		_, err := repo.Create(context.Background(), 99, 7)
		if !errors.Is(err, ErrMissingRef) {
			t.Fatalf("expected ErrMissingRef, got %v", err)
		}
	})
}

func TestPostCategoryRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := newMockLinkRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "post_id", "category_id", "title", "name"}).
		AddRow(5, 2, 7, "Launch", "Announcements")
	mock.ExpectQuery(regexp.QuoteMeta(selectLinkSQL + " WHERE pc.id = ?")).
		WithArgs(5).
		WillReturnRows(rows)

	l, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.PostTitle != "Launch" || l.CategoryName != "Announcements" {
		t.Fatalf("joined fields missing: %+v", l)
	}
}

func TestPostCategoryRepository_Delete_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockLinkRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteLinkSQL)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
