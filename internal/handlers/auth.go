package handlers

import (
	"net/http"

	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   registerRequest  true  "Account payload"
// @Success      201   {object}  map[string]interface{}  "message, user"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		Status:   input.Status,
		Avatar:   input.Avatar,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("register_failed", "username", input.Username, "err", err)
		}
		h.serviceError(c, err, "register_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// @Summary      Log in
// @Description  Returns a bearer token plus minimal profile data.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "token, username, role"
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "email", input.Email, "err", err)
		}
		h.serviceError(c, err, "login_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    res.Token,
		"username": res.Username,
		"role":     res.Role,
	})
}
