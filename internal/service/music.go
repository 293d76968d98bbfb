package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// youtubeIDPattern extracts the 11-character video id from the usual URL shapes.
var youtubeIDPattern = regexp.MustCompile(`^.*(?:youtu\.be/|youtube\.com/(?:embed/|v/|watch\?v=|watch\?.+&v=))([^#&?]{11}).*`)

// ExtractVideoID returns the YouTube video id embedded in url, or "".
func ExtractVideoID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

type MusicService struct {
	music repository.Music
}

func NewMusicService(music repository.Music) *MusicService {
	return &MusicService{music: music}
}

var _ Music = (*MusicService)(nil)

// Add validates the URL points at a YouTube video and stores it.
func (s *MusicService) Add(ctx context.Context, youtubeURL string) (*models.Music, error) {
	youtubeURL = strings.TrimSpace(youtubeURL)
	if youtubeURL == "" {
		return nil, fmt.Errorf("%w: youtubeUrl is required", ErrInvalidInput)
	}
	if ExtractVideoID(youtubeURL) == "" {
		return nil, fmt.Errorf("%w: not a YouTube video URL", ErrInvalidInput)
	}
	m, err := s.music.Insert(ctx, youtubeURL)
	if err != nil {
		return nil, fmt.Errorf("add music link: %w", err)
	}
	return m, nil
}

// List returns all links, newest first.
func (s *MusicService) List(ctx context.Context) ([]models.Music, error) {
	return s.music.List(ctx)
}

// Delete removes a link.
func (s *MusicService) Delete(ctx context.Context, id int) error {
	if err := s.music.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("music link %d: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}
