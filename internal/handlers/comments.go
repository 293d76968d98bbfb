package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"newsroom/internal/models"
	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

type commentRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" binding:"required"`
}

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}

// @Summary      Submit a contact message
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body  commentRequest  true  "Message payload"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/comments [post]
func (h *Handler) submitComment(c *gin.Context) {
	var input commentRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if _, err := h.services.Comments.Submit(c.Request.Context(), service.CommentInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}); err != nil {
		h.serviceError(c, err, "comment_submit_failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message saved"})
}

// @Summary      List contact messages
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD') and unread flag. A date-only 'to' is treated as end-of-day inclusive.
// @Tags         comments
// @Produce      json
// @Param        from    query  string  false  "Start of range"  example(2025-08-01)
// @Param        to      query  string  false  "End of range"    example(2025-08-31)
// @Param        unread  query  bool    false  "Only unread messages"
// @Success      200  {object}  map[string]interface{}  "count, comments"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/comments [get]
// @Security     BearerAuth
func (h *Handler) listComments(c *gin.Context) {
	var (
		from time.Time
		to   time.Time
		err  error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		// If the user didn't include a time component, treat "to" as the end of that day.
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}

	comments, err := h.services.Comments.List(c.Request.Context(), repository.CommentFilter{
		From:   from,
		To:     to,
		Unread: c.Query("unread") == "true",
	})
	if err != nil {
		h.serviceError(c, err, "comments_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(comments),
		"comments": comments,
	})
}

// @Summary      Mark a message as read
// @Tags         comments
// @Produce      json
// @Param        id  path  int  true  "Message ID"
// @Success      200  {object}  models.Comment
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/comments/{id}/read [patch]
// @Security     BearerAuth
func (h *Handler) markCommentRead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	comment, err := h.services.Comments.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "comment_mark_read_failed")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// @Summary      Approve a message
// @Tags         comments
// @Produce      json
// @Param        id  path  int  true  "Message ID"
// @Success      200  {object}  models.Comment
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/comments/{id}/approve [patch]
// @Security     BearerAuth
func (h *Handler) approveComment(c *gin.Context) {
	h.setCommentStatus(c, models.CommentApproved)
}

// @Summary      Reject a message
// @Tags         comments
// @Produce      json
// @Param        id  path  int  true  "Message ID"
// @Success      200  {object}  models.Comment
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/comments/{id}/reject [patch]
// @Security     BearerAuth
func (h *Handler) rejectComment(c *gin.Context) {
	h.setCommentStatus(c, models.CommentRejected)
}

func (h *Handler) setCommentStatus(c *gin.Context, status string) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	comment, err := h.services.Comments.SetStatus(c.Request.Context(), id, status)
	if err != nil {
		h.serviceError(c, err, "comment_set_status_failed")
		return
	}
	c.JSON(http.StatusOK, comment)
}

// @Summary      Delete a message
// @Tags         comments
// @Produce      json
// @Param        id  path  int  true  "Message ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/comments/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Comments.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, "comment_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
