package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type musicRequest struct {
	YoutubeURL string `json:"youtubeUrl" binding:"required"`
}

// @Summary      List music links
// @Tags         music
// @Produce      json
// @Success      200  {array}  models.Music
// @Router       /api/music [get]
func (h *Handler) listMusic(c *gin.Context) {
	items, err := h.services.Music.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to fetch music", "music_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Add a music link
// @Tags         music
// @Accept       json
// @Produce      json
// @Param        body  body  musicRequest  true  "YouTube URL"
// @Success      201  {object}  models.Music
// @Failure      400  {object}  map[string]string
// @Router       /api/admin/music [post]
// @Security     BearerAuth
func (h *Handler) addMusic(c *gin.Context) {
	var input musicRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	item, err := h.services.Music.Add(c.Request.Context(), input.YoutubeURL)
	if err != nil {
		h.serviceError(c, err, "music_add_failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Delete a music link
// @Tags         music
// @Produce      json
// @Param        id  path  int  true  "Music ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/music/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteMusic(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.Music.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, "music_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
