package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"newsroom/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockCommentRepo(t *testing.T) (*CommentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewCommentRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func commentColumns() []string {
	return []string{"id", "name", "email", "phone", "subject", "message", "read", "status", "created_at"}
}

func TestCommentRepository_Insert(t *testing.T) {
	repo, mock, cleanup := newMockCommentRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertCommentSQL)).
		WithArgs("bob", "b@x.com", "", "hello", "message body", false,
			models.CommentPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Insert(context.Background(), models.Comment{
		Name:    "bob",
		Email:   "b@x.com",
		Subject: "hello",
		Message: "message body",
		Status:  models.CommentPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id=11, got %d", id)
	}
}

func TestCommentRepository_List_FilterBuilding(t *testing.T) {
	now := time.Now().UTC()
	from := now.Add(-24 * time.Hour)

	tests := []struct {
		name      string
		filter    CommentFilter
		wantQuery string
		wantArgs  int
	}{
		{
			name:      "no filter",
			filter:    CommentFilter{},
			wantQuery: `SELECT id, name, email, phone, subject, message, read, status, created_at FROM comments ORDER BY created_at DESC`,
		},
		{
			name:      "time range and unread",
			filter:    CommentFilter{From: from, To: now, Unread: true},
			wantQuery: `SELECT id, name, email, phone, subject, message, read, status, created_at FROM comments WHERE created_at >= ? AND created_at <= ? AND read = 0 ORDER BY created_at DESC`,
			wantArgs:  2,
		},
		{
			name:      "unread only",
			filter:    CommentFilter{Unread: true},
			wantQuery: `SELECT id, name, email, phone, subject, message, read, status, created_at FROM comments WHERE read = 0 ORDER BY created_at DESC`,
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockCommentRepo(t)
			defer cleanup()

			rows := sqlmock.NewRows(commentColumns()).
				AddRow(1, "bob", "b@x.com", "", "hi", "body", false, models.CommentPending, now)

			ex := mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery))
			if tt.wantArgs == 2 {
				ex.WithArgs(tt.filter.From, tt.filter.To)
			}
			ex.WillReturnRows(rows)

			got, err := repo.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 1 || got[0].Name != "bob" {
				t.Fatalf("unexpected result: %+v", got)
			}
		})
	}
}

func TestCommentRepository_MarkRead_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockCommentRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(markCommentReadSQL)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.MarkRead(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommentRepository_SetStatus(t *testing.T) {
	repo, mock, cleanup := newMockCommentRepo(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectExec(regexp.QuoteMeta(setCommentStatusSQL)).
		WithArgs(models.CommentApproved, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectCommentByIDSQL)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(commentColumns()).
			AddRow(5, "bob", "b@x.com", "", "hi", "body", true, models.CommentApproved, now))

	c, err := repo.SetStatus(context.Background(), 5, models.CommentApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != models.CommentApproved {
		t.Fatalf("expected approved, got %q", c.Status)
	}
}
