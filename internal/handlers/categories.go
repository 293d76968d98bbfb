package handlers

import (
	"net/http"

	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type categoryUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  models.Category
// @Router       /api/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load categories", "categories_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary      Get one category
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "Category ID"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [get]
func (h *Handler) getCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cat, err := h.services.Categories.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "category_get_failed")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  categoryRequest  true  "Category payload"
// @Success      201  {object}  models.Category
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/categories [post]
// @Security     BearerAuth
func (h *Handler) createCategory(c *gin.Context) {
	var input categoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	cat, err := h.services.Categories.Create(c.Request.Context(), service.CategoryInput{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	})
	if err != nil {
		h.serviceError(c, err, "category_create_failed")
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "Category ID"
// @Param        body  body  categoryUpdateRequest  true  "Fields to change"
// @Success      200  {object}  models.Category
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/categories/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input categoryUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	cat, err := h.services.Categories.Update(c.Request.Context(), id, repository.CategoryUpdate{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	})
	if err != nil {
		h.serviceError(c, err, "category_update_failed")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "Category ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Categories.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, "category_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
