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

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL = `INSERT INTO posts (title, content, author, category, status, image, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectPostByIDSQL = `SELECT id, title, content, author, category, status, image, created_at, updated_at FROM posts WHERE id = ?`
	selectAllPostsSQL = `SELECT id, title, content, author, category, status, image, created_at, updated_at FROM posts ORDER BY updated_at DESC`
	deletePostSQL     = `DELETE FROM posts WHERE id = ?`
)

// Create inserts a new post and returns its ID.
func (r *PostRepository) Create(ctx context.Context, p models.NewsPost) (int, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertPostSQL,
		p.Title, p.Content, p.Author, p.Category, p.Status, p.Image, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert post %q: %w", p.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post %q: %w", p.Title, err)
	}
	return int(lastID), nil
}

// List returns all posts, newest updates first.
func (r *PostRepository) List(ctx context.Context) ([]models.NewsPost, error) {
	rows, err := r.db.QueryContext(ctx, selectAllPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var posts []models.NewsPost
	for rows.Next() {
		var p models.NewsPost
		var author, category, image sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &author, &category,
			&p.Status, &image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		p.Author, p.Category, p.Image = author.String, category.String, image.String
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return posts, nil
}

// GetByID fetches a single post.
func (r *PostRepository) GetByID(ctx context.Context, id int) (*models.NewsPost, error) {
	var p models.NewsPost
	var author, category, image sql.NullString
	err := r.db.QueryRowContext(ctx, selectPostByIDSQL, id).Scan(
		&p.ID, &p.Title, &p.Content, &author, &category, &p.Status, &image,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select post %d: %w", id, err)
	}
	p.Author, p.Category, p.Image = author.String, category.String, image.String
	return &p, nil
}

// Update applies the non-nil fields of upd and returns the updated record.
func (r *PostRepository) Update(ctx context.Context, id int, upd PostUpdate) (*models.NewsPost, error) {
	var (
		set  []string
		args []any
	)
	for _, f := range []struct {
		col string
		val *string
	}{
		{"title", upd.Title},
		{"content", upd.Content},
		{"author", upd.Author},
		{"category", upd.Category},
		{"status", upd.Status},
		{"image", upd.Image},
	} {
		if f.val != nil {
			set = append(set, f.col+" = ?")
			args = append(args, *f.val)
		}
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := fmt.Sprintf("UPDATE posts SET %s WHERE id = ?", strings.Join(set, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a post by ID.
func (r *PostRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deletePostSQL, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
