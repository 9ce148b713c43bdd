package httpresp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, data)
}

// Cached responde 200 permitindo cache público por maxAge.
func Cached(c *gin.Context, maxAge time.Duration, data any) {
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
	c.JSON(http.StatusOK, data)
}
