package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware libera as origens configuradas. Lista vazia libera qualquer
// origem, mas sem credenciais.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	allow := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		allow[o] = struct{}{}
	}

	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: len(allow) > 0,
		AllowOriginFunc: func(origin string) bool {
			if len(allow) == 0 {
				return true
			}
			_, ok := allow[origin]
			return ok
		},
		MaxAge: 12 * time.Hour,
	})
}
