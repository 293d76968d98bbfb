package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/repository/db"
)

// Sentinel errors shared by all repositories.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrMissingRef = errors.New("referenced record not found")
)

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int, upd UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int) error
}

type Posts interface {
	Create(ctx context.Context, p models.NewsPost) (int, error)
	List(ctx context.Context) ([]models.NewsPost, error)
	GetByID(ctx context.Context, id int) (*models.NewsPost, error)
	Update(ctx context.Context, id int, upd PostUpdate) (*models.NewsPost, error)
	Delete(ctx context.Context, id int) error
}

type Categories interface {
	Create(ctx context.Context, c models.Category) (int, error)
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Update(ctx context.Context, id int, upd CategoryUpdate) (*models.Category, error)
	Delete(ctx context.Context, id int) error
}

type Comments interface {
	Insert(ctx context.Context, c models.Comment) (int, error)
	List(ctx context.Context, f CommentFilter) ([]models.Comment, error)
	MarkRead(ctx context.Context, id int) (*models.Comment, error)
	SetStatus(ctx context.Context, id int, status string) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

type Music interface {
	Insert(ctx context.Context, youtubeURL string) (*models.Music, error)
	List(ctx context.Context) ([]models.Music, error)
	Delete(ctx context.Context, id int) error
}

type PostCategories interface {
	Create(ctx context.Context, postID, categoryID int) (int, error)
	List(ctx context.Context) ([]models.PostCategoryLink, error)
	GetByID(ctx context.Context, id int) (*models.PostCategoryLink, error)
	Update(ctx context.Context, id int, upd PostCategoryUpdate) (*models.PostCategoryLink, error)
	Delete(ctx context.Context, id int) error
}

type Images interface {
	Create(ctx context.Context, img models.Image) (int, error)
	List(ctx context.Context) ([]models.Image, error)
	GetByID(ctx context.Context, id int) (*models.Image, error)
	Update(ctx context.Context, id int, upd ImageUpdate) (*models.Image, error)
	Delete(ctx context.Context, id int) error
}

// UserUpdate carries optional field changes; nil means "leave unchanged".
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *string
	Status       *string
	Avatar       *string
}

type PostUpdate struct {
	Title    *string
	Content  *string
	Author   *string
	Category *string
	Status   *string
	Image    *string
}

type CategoryUpdate struct {
	Name        *string
	Description *string
	Status      *string
}

// PostCategoryUpdate re-points a link; nil means "leave unchanged".
type PostCategoryUpdate struct {
	PostID     *int
	CategoryID *int
}

// ImageUpdate carries optional field changes; nil means "leave unchanged".
// Setting PostID to 0 detaches the image from its post.
type ImageUpdate struct {
	PostID *int
	URL    *string
	Name   *string
}

// CommentFilter narrows admin message listings by time range and read flag.
type CommentFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Unread bool      // when true, only unread messages
}

type Repository struct {
	Users          Users
	Posts          Posts
	Categories     Categories
	Comments       Comments
	Music          Music
	PostCategories PostCategories
	Images         Images
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users:          NewUserRepository(sqlDB),
		Posts:          NewPostRepository(sqlDB),
		Categories:     NewCategoryRepository(sqlDB),
		Comments:       NewCommentRepository(sqlDB),
		Music:          NewMusicRepository(sqlDB),
		PostCategories: NewPostCategoryRepository(sqlDB),
		Images:         NewImageRepository(sqlDB),
	}
}

// InitDB opens the SQLite file and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
