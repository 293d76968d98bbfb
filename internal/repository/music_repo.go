package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsroom/internal/models"
)

type MusicRepository struct {
	db *sql.DB
}

func NewMusicRepository(db *sql.DB) *MusicRepository {
	return &MusicRepository{db: db}
}

var _ Music = (*MusicRepository)(nil)

const (
	insertMusicSQL     = `INSERT INTO music (youtube_url, created_at) VALUES (?, ?)`
	selectMusicByIDSQL = `SELECT id, youtube_url, created_at FROM music WHERE id = ?`
	selectAllMusicSQL  = `SELECT id, youtube_url, created_at FROM music ORDER BY id DESC`
	deleteMusicSQL     = `DELETE FROM music WHERE id = ?`
)

// Insert stores a new music link and returns the created record.
func (r *MusicRepository) Insert(ctx context.Context, youtubeURL string) (*models.Music, error) {
	res, err := r.db.ExecContext(ctx, insertMusicSQL, youtubeURL, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("insert music link: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for music link: %w", err)
	}

	var m models.Music
	err = r.db.QueryRowContext(ctx, selectMusicByIDSQL, lastID).Scan(&m.ID, &m.YoutubeURL, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("select music link %d: %w", lastID, err)
	}
	return &m, nil
}

// List returns all music links, newest first.
func (r *MusicRepository) List(ctx context.Context) ([]models.Music, error) {
	rows, err := r.db.QueryContext(ctx, selectAllMusicSQL)
	if err != nil {
		return nil, fmt.Errorf("select music links: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []models.Music
	for rows.Next() {
		var m models.Music
		if err := rows.Scan(&m.ID, &m.YoutubeURL, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan music row: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate music rows: %w", err)
	}
	return items, nil
}

// Delete removes a music link by ID.
func (r *MusicRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteMusicSQL, id)
	if err != nil {
		return fmt.Errorf("delete music link %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
