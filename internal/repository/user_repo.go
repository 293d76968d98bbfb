package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsroom/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, email, password_hash, role, status, avatar, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, username, email, password_hash, role, status, avatar, created_at, updated_at FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT id, username, email, password_hash, role, status, avatar, created_at, updated_at FROM users WHERE id = ?`
	selectAllUsersSQL    = `SELECT id, username, email, password_hash, role, status, avatar, created_at, updated_at FROM users ORDER BY id`
	deleteUserSQL        = `DELETE FROM users WHERE id = ?`
)

// isUniqueViolation detects the SQLite unique-constraint error for users.username/users.email.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a new user and returns its ID.
// Returns ErrDuplicate when username or email is already taken.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Username, u.Email, u.PasswordHash, u.Role, u.Status, u.Avatar, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Username, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Role, &u.Status, &u.Avatar, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// GetByEmail fetches a user by exact email match.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
}

// GetByID fetches a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
}

// List returns all users ordered by ID.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.Role, &u.Status, &u.Avatar, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

// Update applies the non-nil fields of upd and returns the updated record.
func (r *UserRepository) Update(ctx context.Context, id int, upd UserUpdate) (*models.User, error) {
	set, args := buildUserUpdate(upd)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(set, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update user %d: %w", id, ErrDuplicate)
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func buildUserUpdate(upd UserUpdate) (set []string, args []any) {
	if upd.Username != nil {
		set = append(set, "username = ?")
		args = append(args, *upd.Username)
	}
	if upd.Email != nil {
		set = append(set, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.PasswordHash != nil {
		set = append(set, "password_hash = ?")
		args = append(args, *upd.PasswordHash)
	}
	if upd.Role != nil {
		set = append(set, "role = ?")
		args = append(args, *upd.Role)
	}
	if upd.Status != nil {
		set = append(set, "status = ?")
		args = append(args, *upd.Status)
	}
	if upd.Avatar != nil {
		set = append(set, "avatar = ?")
		args = append(args, *upd.Avatar)
	}
	return set, args
}

// Delete removes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
