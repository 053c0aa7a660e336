package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MatchLost scores the posted lost-item description against the stored set
// and renders the candidates in the order the model returned them.
func (h *Handler) MatchLost(c *gin.Context) {
	description := c.PostForm("description")

	matches, err := h.Matcher.MatchLost(c.Request.Context(), description)
	if err != nil {
		log.Error().Err(err).Msg("match-lost failed")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Matching failed"})
		return
	}

	c.HTML(http.StatusOK, "matches.html", gin.H{"MatchedItems": matches})
}
