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

type ImageRepository struct {
	db *sql.DB
}

func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

var _ Images = (*ImageRepository)(nil)

const (
	insertImageSQL = `INSERT INTO images (post_id, url, name, size, uploaded_at) VALUES (?, ?, ?, ?, ?)`
	selectImageSQL = `SELECT i.id, i.post_id, p.title, i.url, i.name, i.size, i.uploaded_at
FROM images i
LEFT JOIN posts p ON p.id = i.post_id`
	deleteImageSQL = `DELETE FROM images WHERE id = ?`
)

// nullablePostID maps 0 to NULL so unattached images pass the FK.
func nullablePostID(id int) any {
	if id == 0 {
		return nil
	}
	return id
}

// Create persists an image record and returns its ID.
// Returns ErrMissingRef when the referenced post does not exist.
func (r *ImageRepository) Create(ctx context.Context, img models.Image) (int, error) {
	uploadedAt := img.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertImageSQL,
		nullablePostID(img.PostID), img.URL, img.Name, img.Size, uploadedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("insert image for post %d: %w", img.PostID, ErrMissingRef)
		}
		return 0, fmt.Errorf("insert image %q: %w", img.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for image %q: %w", img.Name, err)
	}
	return int(lastID), nil
}

type imageRow interface {
	Scan(dest ...any) error
}

func scanImage(row imageRow) (models.Image, error) {
	var img models.Image
	var postID sql.NullInt64
	var title, size sql.NullString
	err := row.Scan(&img.ID, &postID, &title, &img.URL, &img.Name, &size, &img.UploadedAt)
	if err != nil {
		return models.Image{}, fmt.Errorf("scan image: %w", err)
	}
	img.PostID = int(postID.Int64)
	img.PostTitle = title.String
	img.Size = size.String
	return img, nil
}

// List returns all image records, newest first, with post titles attached.
func (r *ImageRepository) List(ctx context.Context) ([]models.Image, error) {
	rows, err := r.db.QueryContext(ctx, selectImageSQL+" ORDER BY i.uploaded_at DESC")
	if err != nil {
		return nil, fmt.Errorf("select images: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var images []models.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image rows: %w", err)
	}
	return images, nil
}

// GetByID fetches a single image record.
func (r *ImageRepository) GetByID(ctx context.Context, id int) (*models.Image, error) {
	row := r.db.QueryRowContext(ctx, selectImageSQL+" WHERE i.id = ?", id)
	img, err := scanImage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

// Update applies the non-nil fields of upd and returns the updated record.
func (r *ImageRepository) Update(ctx context.Context, id int, upd ImageUpdate) (*models.Image, error) {
	var (
		set  []string
		args []any
	)
	if upd.PostID != nil {
		set = append(set, "post_id = ?")
		args = append(args, nullablePostID(*upd.PostID))
	}
	if upd.URL != nil {
		set = append(set, "url = ?")
		args = append(args, *upd.URL)
	}
	if upd.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *upd.Name)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE images SET %s WHERE id = ?", strings.Join(set, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("update image %d: %w", id, ErrMissingRef)
		}
		return nil, fmt.Errorf("update image %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes an image record by ID.
func (r *ImageRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteImageSQL, id)
	if err != nil {
		return fmt.Errorf("delete image %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
