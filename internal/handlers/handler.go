package handlers

import (
	"errors"
	"net/http"

	"newsroom/internal/logger"
	"newsroom/internal/metrics"
	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), metrics.Instrument())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health and metrics endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	h.registerPublicRoutes(router)
	h.registerAdminRoutes(router)

	// Live admin dashboard feed (HTTP upgrade) — same port
	router.GET("/ws/dashboard", h.wsDashboard)

	return router
}

func (h *Handler) registerPublicRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/users", h.register)
		api.POST("/users/login", newLoginLimiter().middleware(), h.login)

		api.GET("/news", h.listPosts)
		api.GET("/news/:id", h.getPost)

		api.GET("/categories", h.listCategories)
		api.GET("/categories/:id", h.getCategory)

		api.GET("/music", h.listMusic)

		api.GET("/article-categories", h.listLinks)
		api.GET("/article-categories/:id", h.getLink)

		api.GET("/images", h.listImages)
		api.GET("/images/:id", h.getImage)

		// Public contact form
		api.POST("/comments", h.submitComment)
	}
}

// registerAdminRoutes mounts every mutation route behind the auth gate,
// with per-group role requirements on top.
func (h *Handler) registerAdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin", h.authMiddleware)

	content := h.requireRoles(models.RoleAdmin, models.RoleEditor, models.RoleWriter)
	editorial := h.requireRoles(models.RoleAdmin, models.RoleEditor)
	adminOnly := h.requireRoles(models.RoleAdmin)

	news := admin.Group("/news")
	{
		news.POST("", content, h.createPost)
		news.PUT("/:id", content, h.updatePost)
		news.DELETE("/:id", adminOnly, h.deletePost)
	}

	categories := admin.Group("/categories")
	{
		categories.POST("", editorial, h.createCategory)
		categories.PUT("/:id", editorial, h.updateCategory)
		categories.DELETE("/:id", adminOnly, h.deleteCategory)
	}

	comments := admin.Group("/comments", editorial)
	{
		comments.GET("", h.listComments)
		comments.PATCH("/:id/read", h.markCommentRead)
		comments.PATCH("/:id/approve", h.approveComment)
		comments.PATCH("/:id/reject", h.rejectComment)
		comments.DELETE("/:id", adminOnly, h.deleteComment)
	}

	music := admin.Group("/music")
	{
		music.POST("", editorial, h.addMusic)
		music.DELETE("/:id", adminOnly, h.deleteMusic)
	}

	links := admin.Group("/article-categories")
	{
		links.POST("", editorial, h.createLink)
		links.PUT("/:id", editorial, h.updateLink)
		links.DELETE("/:id", adminOnly, h.deleteLink)
	}

	users := admin.Group("/users", adminOnly)
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}

	images := admin.Group("/images")
	{
		images.POST("", content, h.uploadImage)
		images.PUT("/:id", editorial, h.updateImage)
		images.DELETE("/:id", adminOnly, h.deleteImage)
	}
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// serviceError translates service-layer errors into HTTP responses.
// Internal detail never reaches the client; unknown errors become a 500.
func (h *Handler) serviceError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrUserInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": service.ErrUserInactive.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "server error", logKey, err)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
