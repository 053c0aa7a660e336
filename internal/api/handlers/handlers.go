// Package handlers contains the gin handlers for the lost-and-found flows.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/auth"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/services"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/storage"
)

// Handler bundles the injected collaborators for all routes. Everything is
// constructed in the composition root; no package-level state.
type Handler struct {
	Reporter *services.Reporter
	Matcher  *services.Matcher
	Claimer  *services.Claimer
	Images   storage.ImageStore
	Verifier auth.Verifier

	// IndexFile is the landing page served on GET /.
	IndexFile string
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Index(c *gin.Context) {
	c.File(h.IndexFile)
}
