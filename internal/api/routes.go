package api

import (
	"github.com/gin-gonic/gin"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/api/handlers"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/configuration"
)

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}

// NewRouter builds the gin engine with all routes, templates and middleware.
func NewRouter(h *handlers.Handler, cfg *configuration.Config) *gin.Engine {
	r := gin.Default()

	if cfg.TracingEnabled {
		r.Use(gintrace.Middleware("item-service"))
	}
	r.Use(corsMiddleware())

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/public", cfg.Uploads.PublicDir)

	r.GET("/", h.Index)
	r.POST("/login", h.Login)
	r.POST("/report-found", h.ReportFound)
	r.POST("/match-lost", h.MatchLost)
	r.POST("/claim-item/:id", h.ClaimItem)
	r.GET("/uploads/*file", h.ServeUpload)

	r.GET("/api/health", h.HealthCheck)

	return r
}
