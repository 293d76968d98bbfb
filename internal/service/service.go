package service

import (
	"context"
	"io"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	ParseToken(accessToken string) (Principal, error)
}

// Posts exposes the article lifecycle: drafts, publishing, edits.
type Posts interface {
	Create(ctx context.Context, in PostInput) (*models.NewsPost, error)
	List(ctx context.Context) ([]models.NewsPost, error)
	Get(ctx context.Context, id int) (*models.NewsPost, error)
	Update(ctx context.Context, id int, upd repository.PostUpdate) (*models.NewsPost, error)
	Delete(ctx context.Context, id int) error
}

type Categories interface {
	Create(ctx context.Context, in CategoryInput) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int) (*models.Category, error)
	Update(ctx context.Context, id int, upd repository.CategoryUpdate) (*models.Category, error)
	Delete(ctx context.Context, id int) error
}

// Comments covers the public contact form plus admin moderation.
type Comments interface {
	Submit(ctx context.Context, in CommentInput) (int, error)
	List(ctx context.Context, f repository.CommentFilter) ([]models.Comment, error)
	MarkRead(ctx context.Context, id int) (*models.Comment, error)
	SetStatus(ctx context.Context, id int, status string) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

type Music interface {
	Add(ctx context.Context, youtubeURL string) (*models.Music, error)
	List(ctx context.Context) ([]models.Music, error)
	Delete(ctx context.Context, id int) error
}

// Users is the admin-side account management surface.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, in UserUpdateInput) (*models.User, error)
	Delete(ctx context.Context, id int) error
}

// Uploads stores image blobs and returns their public URL.
type Uploads interface {
	Save(ctx context.Context, originalName string, size int64, src io.Reader) (*models.UploadedImage, error)
}

// PostCategories manages the post/category link collection.
type PostCategories interface {
	Create(ctx context.Context, postID, categoryID int) (*models.PostCategoryLink, error)
	List(ctx context.Context) ([]models.PostCategoryLink, error)
	Get(ctx context.Context, id int) (*models.PostCategoryLink, error)
	Update(ctx context.Context, id int, upd repository.PostCategoryUpdate) (*models.PostCategoryLink, error)
	Delete(ctx context.Context, id int) error
}

// Images owns uploaded-image records: the blob goes to the file store, the
// metadata row to the database.
type Images interface {
	Upload(ctx context.Context, postID int, originalName string, size int64, src io.Reader) (*models.Image, error)
	List(ctx context.Context) ([]models.Image, error)
	Get(ctx context.Context, id int) (*models.Image, error)
	Update(ctx context.Context, id int, upd repository.ImageUpdate) (*models.Image, error)
	Delete(ctx context.Context, id int) error
}

// RegisterInput carries a registration request; Role/Status/Avatar are optional.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Status   string
	Avatar   string
}

// LoginResult is the successful-login payload: token plus minimal profile.
type LoginResult struct {
	Token    string
	Username string
	Role     string
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID int
	Role   string
}

type PostInput struct {
	Title    string
	Content  string
	Author   string
	Category string
	Status   string
	Image    string
}

type CategoryInput struct {
	Name        string
	Description string
	Status      string
}

type CommentInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// UserUpdateInput carries optional profile changes; Password, if set, is re-hashed.
type UserUpdateInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
	Status   *string
	Avatar   *string
}

// AuthConfig holds the process-wide token parameters, loaded once at startup.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Authorization
	Posts
	Categories
	Comments
	Music
	Users
	Uploads
	PostCategories
	Images
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig, uploads UploadConfig) *Service {
	authSvc := NewAuthService(repos.Users, auth)
	store := NewFileStore(uploads)
	return &Service{
		Authorization:  authSvc,
		Posts:          NewPostService(repos.Posts),
		Categories:     NewCategoryService(repos.Categories),
		Comments:       NewCommentService(repos.Comments),
		Music:          NewMusicService(repos.Music),
		Users:          NewUserService(repos.Users),
		Uploads:        store,
		PostCategories: NewPostCategoryService(repos.PostCategories),
		Images:         NewImageService(repos.Images, store),
	}
}
