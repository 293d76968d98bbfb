package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"newsroom/internal/models"
)

type PostCategoryRepository struct {
	db *sql.DB
}

func NewPostCategoryRepository(db *sql.DB) *PostCategoryRepository {
	return &PostCategoryRepository{db: db}
}

var _ PostCategories = (*PostCategoryRepository)(nil)

const (
	insertLinkSQL = `INSERT INTO post_categories (post_id, category_id) VALUES (?, ?)`
	selectLinkSQL = `SELECT pc.id, pc.post_id, pc.category_id, p.title, c.name
FROM post_categories pc
JOIN posts p ON p.id = pc.post_id
JOIN categories c ON c.id = pc.category_id`
	deleteLinkSQL = `DELETE FROM post_categories WHERE id = ?`
)

// isForeignKeyViolation detects a reference to a missing post or category.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// Create inserts a post/category link and returns its ID.
// Returns ErrMissingRef when either side does not exist.
func (r *PostCategoryRepository) Create(ctx context.Context, postID, categoryID int) (int, error) {
	res, err := r.db.ExecContext(ctx, insertLinkSQL, postID, categoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("link post %d to category %d: %w", postID, categoryID, ErrMissingRef)
		}
		return 0, fmt.Errorf("insert link: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for link: %w", err)
	}
	return int(lastID), nil
}

// List returns all links with post title and category name attached.
func (r *PostCategoryRepository) List(ctx context.Context) ([]models.PostCategoryLink, error) {
	rows, err := r.db.QueryContext(ctx, selectLinkSQL+" ORDER BY pc.id")
	if err != nil {
		return nil, fmt.Errorf("select links: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var links []models.PostCategoryLink
	for rows.Next() {
		var l models.PostCategoryLink
		if err := rows.Scan(&l.ID, &l.PostID, &l.CategoryID, &l.PostTitle, &l.CategoryName); err != nil {
			return nil, fmt.Errorf("scan link row: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate link rows: %w", err)
	}
	return links, nil
}

// GetByID fetches a single link.
func (r *PostCategoryRepository) GetByID(ctx context.Context, id int) (*models.PostCategoryLink, error) {
	var l models.PostCategoryLink
	err := r.db.QueryRowContext(ctx, selectLinkSQL+" WHERE pc.id = ?", id).Scan(
		&l.ID, &l.PostID, &l.CategoryID, &l.PostTitle, &l.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select link %d: %w", id, err)
	}
	return &l, nil
}

// Update re-points the link and returns the updated record.
func (r *PostCategoryRepository) Update(ctx context.Context, id int, upd PostCategoryUpdate) (*models.PostCategoryLink, error) {
	var (
		set  []string
		args []any
	)
	if upd.PostID != nil {
		set = append(set, "post_id = ?")
		args = append(args, *upd.PostID)
	}
	if upd.CategoryID != nil {
		set = append(set, "category_id = ?")
		args = append(args, *upd.CategoryID)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE post_categories SET %s WHERE id = ?", strings.Join(set, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("update link %d: %w", id, ErrMissingRef)
		}
		return nil, fmt.Errorf("update link %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a link by ID.
func (r *PostCategoryRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteLinkSQL, id)
	if err != nil {
		return fmt.Errorf("delete link %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
