package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/auth"
)

// Login checks the posted credentials. No session or token is issued; the
// welcome view is the whole outcome of a successful login.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.Verifier.Verify(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error().Err(err).Msg("login lookup failed")
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Invalid credentials</h1>"))
		return
	}

	c.HTML(http.StatusOK, "welcome.html", gin.H{"Username": user.Username})
}
