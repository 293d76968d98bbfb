package handlers

import (
	"net/http"

	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

type userUpdateRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load users", "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      Get one user account
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  models.User
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.services.Users.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "user_get_failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Update a user account
// @Description  Only the provided fields change; a new password is re-hashed before storage.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "User ID"
// @Param        body  body  userUpdateRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}  "message, user"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/admin/users/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input userUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	user, err := h.services.Users.Update(c.Request.Context(), id, service.UserUpdateInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		Status:   input.Status,
		Avatar:   input.Avatar,
	})
	if err != nil {
		h.serviceError(c, err, "user_update_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// @Summary      Delete a user account
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, "user_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
