package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CorsMiddleware allows the configured frontend origin (CORS_ORIGIN), or any
// origin when unset.
func CorsMiddleware(c *gin.Context) {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	} else {
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(204)
		return
	}

	c.Next()
}
