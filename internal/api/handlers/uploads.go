package handlers

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/storage"
)

// ServeUpload streams a stored image. Going through the image store keeps
// the public /uploads/ prefix working for both disk and MinIO backends.
func (h *Handler) ServeUpload(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("file"), "/")
	if name == "" || strings.Contains(name, "..") {
		c.String(http.StatusBadRequest, "invalid file name")
		return
	}

	rc, err := h.Images.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.String(http.StatusNotFound, "not found")
			return
		}
		log.Error().Str("object", name).Err(err).Msg("failed to open stored image")
		c.String(http.StatusInternalServerError, "storage error")
		return
	}
	defer rc.Close()

	c.Header("Content-Type", storage.ContentTypeFor(filepath.Ext(name)))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		log.Warn().Str("object", name).Err(err).Msg("failed to stream stored image")
	}
}
