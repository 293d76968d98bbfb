package handlers

import (
	"net/http"

	"newsroom/internal/repository"

	"github.com/gin-gonic/gin"
)

type linkRequest struct {
	PostID     int `json:"postId" binding:"required"`
	CategoryID int `json:"categoryId" binding:"required"`
}

type linkUpdateRequest struct {
	PostID     *int `json:"postId,omitempty"`
	CategoryID *int `json:"categoryId,omitempty"`
}

// @Summary      List post/category links
// @Description  Each link carries the post title and category name.
// @Tags         article-categories
// @Produce      json
// @Success      200  {array}  models.PostCategoryLink
// @Router       /api/article-categories [get]
func (h *Handler) listLinks(c *gin.Context) {
	links, err := h.services.PostCategories.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load links", "links_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// @Summary      Get one post/category link
// @Tags         article-categories
// @Produce      json
// @Param        id  path  int  true  "Link ID"
// @Success      200  {object}  models.PostCategoryLink
// @Failure      404  {object}  map[string]string
// @Router       /api/article-categories/{id} [get]
func (h *Handler) getLink(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	link, err := h.services.PostCategories.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "link_get_failed")
		return
	}
	c.JSON(http.StatusOK, link)
}

// @Summary      Link a post to a category
// @Tags         article-categories
// @Accept       json
// @Produce      json
// @Param        body  body  linkRequest  true  "Link payload"
// @Success      201  {object}  models.PostCategoryLink
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/article-categories [post]
// @Security     BearerAuth
func (h *Handler) createLink(c *gin.Context) {
	var input linkRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	link, err := h.services.PostCategories.Create(c.Request.Context(), input.PostID, input.CategoryID)
	if err != nil {
		h.serviceError(c, err, "link_create_failed")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// @Summary      Re-point a post/category link
// @Tags         article-categories
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "Link ID"
// @Param        body  body  linkUpdateRequest  true  "Fields to change"
// @Success      200  {object}  models.PostCategoryLink
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/article-categories/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateLink(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input linkUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	link, err := h.services.PostCategories.Update(c.Request.Context(), id, repository.PostCategoryUpdate{
		PostID:     input.PostID,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		h.serviceError(c, err, "link_update_failed")
		return
	}
	c.JSON(http.StatusOK, link)
}

// @Summary      Delete a post/category link
// @Tags         article-categories
// @Produce      json
// @Param        id  path  int  true  "Link ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/article-categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteLink(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.PostCategories.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, "link_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}
