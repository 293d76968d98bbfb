package handlers

import (
	"context"
	"io"
	"net/http"

	"newsroom/internal/models"
	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginRes     service.LoginResult
	loginErr     error
	parsePrin    service.Principal
	parseErr     error

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastParseToken string
}

func (m *mockAuth) Register(ctx context.Context, in service.RegisterInput) (*models.User, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}
func (m *mockAuth) Login(ctx context.Context, email, password string) (service.LoginResult, error) {
	m.lastLoginEmail = email
	return m.loginRes, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (service.Principal, error) {
	m.lastParseToken = token
	return m.parsePrin, m.parseErr
}

type mockPosts struct {
	post    *models.NewsPost
	list    []models.NewsPost
	err     error
	lastIn  service.PostInput
	lastUpd repository.PostUpdate
	deletes int
}

func (m *mockPosts) Create(ctx context.Context, in service.PostInput) (*models.NewsPost, error) {
	m.lastIn = in
	return m.post, m.err
}
func (m *mockPosts) List(ctx context.Context) ([]models.NewsPost, error) { return m.list, m.err }
func (m *mockPosts) Get(ctx context.Context, id int) (*models.NewsPost, error) {
	return m.post, m.err
}
func (m *mockPosts) Update(ctx context.Context, id int, upd repository.PostUpdate) (*models.NewsPost, error) {
	m.lastUpd = upd
	return m.post, m.err
}
func (m *mockPosts) Delete(ctx context.Context, id int) error {
	m.deletes++
	return m.err
}

type mockCategories struct {
	category *models.Category
	list     []models.Category
	err      error
}

func (m *mockCategories) Create(ctx context.Context, in service.CategoryInput) (*models.Category, error) {
	return m.category, m.err
}
func (m *mockCategories) List(ctx context.Context) ([]models.Category, error) {
	return m.list, m.err
}
func (m *mockCategories) Get(ctx context.Context, id int) (*models.Category, error) {
	return m.category, m.err
}
func (m *mockCategories) Update(ctx context.Context, id int, upd repository.CategoryUpdate) (*models.Category, error) {
	return m.category, m.err
}
func (m *mockCategories) Delete(ctx context.Context, id int) error { return m.err }

type mockComments struct {
	comment    *models.Comment
	list       []models.Comment
	submitID   int
	err        error
	lastFilter repository.CommentFilter
	lastStatus string
}

func (m *mockComments) Submit(ctx context.Context, in service.CommentInput) (int, error) {
	return m.submitID, m.err
}
func (m *mockComments) List(ctx context.Context, f repository.CommentFilter) ([]models.Comment, error) {
	m.lastFilter = f
	return m.list, m.err
}
func (m *mockComments) MarkRead(ctx context.Context, id int) (*models.Comment, error) {
	return m.comment, m.err
}
func (m *mockComments) SetStatus(ctx context.Context, id int, status string) (*models.Comment, error) {
	m.lastStatus = status
	return m.comment, m.err
}
func (m *mockComments) Delete(ctx context.Context, id int) error { return m.err }

type mockMusic struct {
	item *models.Music
	list []models.Music
	err  error
}

func (m *mockMusic) Add(ctx context.Context, url string) (*models.Music, error) {
	return m.item, m.err
}
func (m *mockMusic) List(ctx context.Context) ([]models.Music, error) { return m.list, m.err }
func (m *mockMusic) Delete(ctx context.Context, id int) error         { return m.err }

type mockUsers struct {
	user *models.User
	list []models.User
	err  error
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) { return m.list, m.err }
func (m *mockUsers) Get(ctx context.Context, id int) (*models.User, error) {
	return m.user, m.err
}
func (m *mockUsers) Update(ctx context.Context, id int, in service.UserUpdateInput) (*models.User, error) {
	return m.user, m.err
}
func (m *mockUsers) Delete(ctx context.Context, id int) error { return m.err }

type mockUploads struct {
	img   *models.UploadedImage
	err   error
	saves int
}

func (m *mockUploads) Save(ctx context.Context, originalName string, size int64, src io.Reader) (*models.UploadedImage, error) {
	m.saves++
	return m.img, m.err
}

type mockLinks struct {
	link       *models.PostCategoryLink
	list       []models.PostCategoryLink
	err        error
	lastPostID int
	lastCatID  int
}

func (m *mockLinks) Create(ctx context.Context, postID, categoryID int) (*models.PostCategoryLink, error) {
	m.lastPostID, m.lastCatID = postID, categoryID
	return m.link, m.err
}
func (m *mockLinks) List(ctx context.Context) ([]models.PostCategoryLink, error) {
	return m.list, m.err
}
func (m *mockLinks) Get(ctx context.Context, id int) (*models.PostCategoryLink, error) {
	return m.link, m.err
}
func (m *mockLinks) Update(ctx context.Context, id int, upd repository.PostCategoryUpdate) (*models.PostCategoryLink, error) {
	return m.link, m.err
}
func (m *mockLinks) Delete(ctx context.Context, id int) error { return m.err }

type mockImages struct {
	img        *models.Image
	list       []models.Image
	err        error
	lastPostID int
	lastName   string
	lastUpd    repository.ImageUpdate
	deletes    int
}

func (m *mockImages) Upload(ctx context.Context, postID int, originalName string, size int64, src io.Reader) (*models.Image, error) {
	m.lastPostID, m.lastName = postID, originalName
	return m.img, m.err
}
func (m *mockImages) List(ctx context.Context) ([]models.Image, error) { return m.list, m.err }
func (m *mockImages) Get(ctx context.Context, id int) (*models.Image, error) {
	return m.img, m.err
}
func (m *mockImages) Update(ctx context.Context, id int, upd repository.ImageUpdate) (*models.Image, error) {
	m.lastUpd = upd
	return m.img, m.err
}
func (m *mockImages) Delete(ctx context.Context, id int) error {
	m.deletes++
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
