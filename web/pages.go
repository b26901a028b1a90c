package web

import (
	"net/http"
	"path/filepath"

	"gallery/config"

	"github.com/gin-gonic/gin"
)

// Page serves one of the pre-built HTML pages from the static directory
func Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(config.STATIC_DIR, name))
	}
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
