package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS restricts cross-origin access to the configured allow-list plus a
// wildcard suffix for Cloudflare Workers previews. Requests without an Origin
// header (curl, mobile apps) bypass the check entirely.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return OriginAllowed(allowedOrigins, origin)
		},
		AllowMethods:     []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	})
}

func OriginAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a != "" && strings.HasPrefix(origin, a) {
			return true
		}
	}
	return strings.HasSuffix(origin, ".workers.dev")
}
