package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"newsroom/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "role", "status", "avatar", "created_at", "updated_at"}
}

func sampleUser() models.User {
	return models.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "h123",
		Role:         models.RoleWriter,
		Status:       models.StatusActive,
		Avatar:       models.DefaultAvatar,
	}
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name           string
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int
		wantErr        error
		errContainsStr string
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "a@x.com", "h123", models.RoleWriter, models.StatusActive,
						models.DefaultAvatar, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "duplicate email",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "a@x.com", "h123", models.RoleWriter, models.StatusActive,
						models.DefaultAvatar, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "exec error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "a@x.com", "h123", models.RoleWriter, models.StatusActive,
						models.DefaultAvatar, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnError(errors.New("db exec failed"))
			},
			errContainsStr: "insert user",
		},
	}

	for _, tt := range tests {
		tt := tt // capture
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			id, err := repo.Create(context.Background(), sampleUser())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if tt.errContainsStr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error containing %q, got %v", tt.errContainsStr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("expected id=%d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows(userColumns()).
			AddRow(3, "alice", "a@x.com", "h123", models.RoleWriter, models.StatusActive,
				models.DefaultAvatar, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
			WithArgs("a@x.com").
			WillReturnRows(rows)

		u, err := repo.GetByEmail(context.Background(), "a@x.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 3 || u.Username != "alice" || u.Role != models.RoleWriter {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
			WithArgs("nobody@x.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUserRepository_Update(t *testing.T) {
	t.Run("role change", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		role := models.RoleEditor
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = ?, updated_at = ? WHERE id = ?")).
			WithArgs(role, sqlmock.AnyArg(), 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		now := time.Now().UTC()
		rows := sqlmock.NewRows(userColumns()).
			AddRow(3, "alice", "a@x.com", "h123", role, models.StatusActive,
				models.DefaultAvatar, now, now)
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDSQL)).
			WithArgs(3).
			WillReturnRows(rows)

		u, err := repo.Update(context.Background(), 3, UserUpdate{Role: &role})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Role != models.RoleEditor {
			t.Fatalf("expected role Editor, got %q", u.Role)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		role := models.RoleEditor
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = ?, updated_at = ? WHERE id = ?")).
			WithArgs(role, sqlmock.AnyArg(), 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), 99, UserUpdate{Role: &role})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
