package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS adds cross-origin headers for the configured origins. A "*" entry opens
// the service to every origin. Requests from unlisted origins still reach the
// handler, just without Access-Control-Allow-Origin, so the browser blocks the
// read while the service keeps answering.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}

	cfg.AllowOrigins = allowedOrigins
	handler := cors.New(cfg)
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && !slices.Contains(allowedOrigins, origin) {
			c.Next()
			return
		}
		handler(c)
	}
}
