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

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ Categories = (*CategoryRepository)(nil)

const (
	insertCategorySQL = `INSERT INTO categories (name, description, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`
	selectCategoryByIDSQL  = `SELECT id, name, description, status, created_at, updated_at FROM categories WHERE id = ?`
	selectAllCategoriesSQL = `SELECT id, name, description, status, created_at, updated_at FROM categories ORDER BY name`
	deleteCategorySQL      = `DELETE FROM categories WHERE id = ?`
)

// Create inserts a new category and returns its ID.
func (r *CategoryRepository) Create(ctx context.Context, c models.Category) (int, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertCategorySQL,
		c.Name, c.Description, c.Status, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert category %q: %w", c.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for category %q: %w", c.Name, err)
	}
	return int(lastID), nil
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, selectAllCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		var desc sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &desc, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		c.Description = desc.String
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return cats, nil
}

// GetByID fetches a single category.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var c models.Category
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx, selectCategoryByIDSQL, id).Scan(
		&c.ID, &c.Name, &desc, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select category %d: %w", id, err)
	}
	c.Description = desc.String
	return &c, nil
}

// Update applies the non-nil fields of upd and returns the updated record.
func (r *CategoryRepository) Update(ctx context.Context, id int, upd CategoryUpdate) (*models.Category, error) {
	var (
		set  []string
		args []any
	)
	if upd.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Status != nil {
		set = append(set, "status = ?")
		args = append(args, *upd.Status)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	query := fmt.Sprintf("UPDATE categories SET %s WHERE id = ?", strings.Join(set, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a category by ID.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteCategorySQL, id)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
