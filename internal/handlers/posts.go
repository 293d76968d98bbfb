package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment; writes a 400 and returns false on junk.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// saveFormImage stores the optional "image" file of a multipart form and
// returns its public URL. Empty URL when no file was sent. On failure it
// writes the response itself: 400 for a bad multipart body, 500 when the
// store rejects the blob.
func (h *Handler) saveFormImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", true
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image upload"})
		return "", false
	}
	url, err := h.storeUpload(c, file)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to store image", "post_image_store_failed", err)
		return "", false
	}
	return url, true
}

func (h *Handler) storeUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	img, err := h.services.Uploads.Save(c.Request.Context(), file.Filename, file.Size, src)
	if err != nil {
		return "", err
	}
	return img.URL, nil
}

// @Summary      List news posts
// @Tags         news
// @Produce      json
// @Success      200  {array}   models.NewsPost
// @Failure      500  {object}  map[string]string
// @Router       /api/news [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Posts.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load posts", "posts_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Get one news post
// @Tags         news
// @Produce      json
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  models.NewsPost
// @Failure      404  {object}  map[string]string
// @Router       /api/news/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	post, err := h.services.Posts.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "post_get_failed")
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Create a news post
// @Description  Multipart form: title, content, author, category, status, optional image file.
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  models.NewsPost
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/news [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	imageURL, ok := h.saveFormImage(c)
	if !ok {
		return
	}

	post, err := h.services.Posts.Create(c.Request.Context(), service.PostInput{
		Title:    c.PostForm("title"),
		Content:  c.PostForm("content"),
		Author:   c.PostForm("author"),
		Category: c.PostForm("category"),
		Status:   c.PostForm("status"),
		Image:    imageURL,
	})
	if err != nil {
		h.serviceError(c, err, "post_create_failed")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// @Summary      Update a news post
// @Description  Multipart form; only the provided fields change. A new image file replaces the old URL.
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  int  true  "Post ID"
// @Success      200  {object}  models.NewsPost
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/news/{id} [put]
// @Security     BearerAuth
func (h *Handler) updatePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd repository.PostUpdate
	for _, f := range []struct {
		key string
		dst **string
	}{
		{"title", &upd.Title},
		{"content", &upd.Content},
		{"author", &upd.Author},
		{"category", &upd.Category},
		{"status", &upd.Status},
	} {
		if v, present := c.GetPostForm(f.key); present {
			v := v
			*f.dst = &v
		}
	}

	imageURL, ok := h.saveFormImage(c)
	if !ok {
		return
	}
	if imageURL != "" {
		upd.Image = &imageURL
	}

	post, err := h.services.Posts.Update(c.Request.Context(), id, upd)
	if err != nil {
		h.serviceError(c, err, "post_update_failed")
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Delete a news post
// @Tags         news
// @Produce      json
// @Param        id  path  int  true  "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/news/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Posts.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, "post_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
