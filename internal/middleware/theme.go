package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beauty-site/internal/theme"
)

// ThemeMiddleware resolve o tema e o propaga no contexto da requisição;
// handlers e templates leem via theme.FromContext.
func ThemeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := theme.Resolve(c.Request)
		c.Request = c.Request.WithContext(theme.WithTheme(c.Request.Context(), t))
		c.Next()
	}
}
