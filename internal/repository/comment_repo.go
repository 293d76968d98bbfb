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

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

var _ Comments = (*CommentRepository)(nil)

const (
	insertCommentSQL = `INSERT INTO comments (name, email, phone, subject, message, read, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectCommentByIDSQL = `SELECT id, name, email, phone, subject, message, read, status, created_at FROM comments WHERE id = ?`
	markCommentReadSQL   = `UPDATE comments SET read = 1 WHERE id = ?`
	setCommentStatusSQL  = `UPDATE comments SET status = ? WHERE id = ?`
	deleteCommentSQL     = `DELETE FROM comments WHERE id = ?`
)

// Insert stores a new contact message and returns its ID.
func (r *CommentRepository) Insert(ctx context.Context, c models.Comment) (int, error) {
	res, err := r.db.ExecContext(ctx, insertCommentSQL,
		c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Read, c.Status, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for comment: %w", err)
	}
	return int(lastID), nil
}

// List returns messages matching the filter, newest first.
func (r *CommentRepository) List(ctx context.Context, f CommentFilter) ([]models.Comment, error) {
	var (
		where []string
		args  []any
	)
	if !f.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, f.From)
	}
	if !f.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, f.To)
	}
	if f.Unread {
		where = append(where, "read = 0")
	}

	query := `SELECT id, name, email, phone, subject, message, read, status, created_at FROM comments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var comments []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}
	return comments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	var name, email, phone, subject sql.NullString
	err := row.Scan(&c.ID, &name, &email, &phone, &subject,
		&c.Message, &c.Read, &c.Status, &c.CreatedAt)
	if err != nil {
		return models.Comment{}, fmt.Errorf("scan comment: %w", err)
	}
	c.Name, c.Email, c.Phone, c.Subject = name.String, email.String, phone.String, subject.String
	return c, nil
}

// getByID fetches a single message.
func (r *CommentRepository) getByID(ctx context.Context, id int) (*models.Comment, error) {
	row := r.db.QueryRowContext(ctx, selectCommentByIDSQL, id)
	c, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// MarkRead flags a message as read and returns the updated record.
func (r *CommentRepository) MarkRead(ctx context.Context, id int) (*models.Comment, error) {
	res, err := r.db.ExecContext(ctx, markCommentReadSQL, id)
	if err != nil {
		return nil, fmt.Errorf("mark comment %d read: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.getByID(ctx, id)
}

// SetStatus changes the moderation state and returns the updated record.
func (r *CommentRepository) SetStatus(ctx context.Context, id int, status string) (*models.Comment, error) {
	res, err := r.db.ExecContext(ctx, setCommentStatusSQL, status, id)
	if err != nil {
		return nil, fmt.Errorf("set comment %d status: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.getByID(ctx, id)
}

// Delete removes a message by ID.
func (r *CommentRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteCommentSQL, id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
