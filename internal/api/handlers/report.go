package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/services"
)

// ReportFound accepts a multipart image upload, has the model describe it
// and stores the new found-item record.
func (h *Handler) ReportFound(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.String(http.StatusBadRequest, "Image is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded image")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Image processing failed"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded image")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Image processing failed"})
		return
	}

	item, err := h.Reporter.ReportFound(
		c.Request.Context(),
		fileHeader.Filename,
		data,
		fileHeader.Header.Get("Content-Type"),
		c.PostForm("location"),
	)
	if err != nil {
		var infected services.ErrInfected
		switch {
		case errors.Is(err, services.ErrNoImage):
			c.String(http.StatusBadRequest, "Image is required")
		case errors.As(err, &infected):
			c.String(http.StatusBadRequest, "Upload rejected")
		default:
			log.Error().Err(err).Msg("report-found failed")
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Image processing failed"})
		}
		return
	}

	c.HTML(http.StatusOK, "success.html", gin.H{"Item": item})
}
