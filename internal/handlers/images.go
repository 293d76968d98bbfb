package handlers

import (
	"net/http"
	"strconv"

	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
)

type imageUpdateRequest struct {
	PostID *int    `json:"postId,omitempty"`
	URL    *string `json:"url,omitempty"`
	Name   *string `json:"name,omitempty"`
}

// @Summary      Upload an image
// @Description  Multipart form with an "image" file and an optional post_id field. Stores the blob and records its metadata.
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  models.Image
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/images [post]
// @Security     BearerAuth
func (h *Handler) uploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	postID := 0
	if raw := c.PostForm("post_id"); raw != "" {
		postID, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post_id"})
			return
		}
	}

	src, err := file.Open()
	if err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, "failed to read image", "image_open_failed", err)
		return
	}
	defer func() { _ = src.Close() }()

	img, err := h.services.Images.Upload(c.Request.Context(), postID, file.Filename, file.Size, src)
	if err != nil {
		h.serviceError(c, err, "image_store_failed")
		return
	}
	c.JSON(http.StatusCreated, img)
}

// @Summary      List image records
// @Tags         images
// @Produce      json
// @Success      200  {array}  models.Image
// @Router       /api/images [get]
func (h *Handler) listImages(c *gin.Context) {
	images, err := h.services.Images.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load images", "images_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// @Summary      Get one image record
// @Tags         images
// @Produce      json
// @Param        id  path  int  true  "Image ID"
// @Success      200  {object}  models.Image
// @Failure      404  {object}  map[string]string
// @Router       /api/images/{id} [get]
func (h *Handler) getImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	img, err := h.services.Images.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "image_get_failed")
		return
	}
	c.JSON(http.StatusOK, img)
}

// @Summary      Update an image record
// @Description  Only the provided fields change; postId 0 detaches the image from its post.
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "Image ID"
// @Param        body  body  imageUpdateRequest  true  "Fields to change"
// @Success      200  {object}  models.Image
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/images/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input imageUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	img, err := h.services.Images.Update(c.Request.Context(), id, repository.ImageUpdate{
		PostID: input.PostID,
		URL:    input.URL,
		Name:   input.Name,
	})
	if err != nil {
		h.serviceError(c, err, "image_update_failed")
		return
	}
	c.JSON(http.StatusOK, img)
}

// @Summary      Delete an image record
// @Tags         images
// @Produce      json
// @Param        id  path  int  true  "Image ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/images/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Images.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, "image_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
