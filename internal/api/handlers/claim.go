package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/store"
)

// ClaimItem removes a found item and its image once the owner picked it up.
func (h *Handler) ClaimItem(c *gin.Context) {
	id := c.Param("id")

	if err := h.Claimer.Claim(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{"ID": id})
			return
		}
		log.Error().Str("item_id", id).Err(err).Msg("claim failed")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Claim failed"})
		return
	}

	c.HTML(http.StatusOK, "claimed.html", gin.H{"ID": id})
}
