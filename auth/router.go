package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is a wrapper that adds the admin session check to registered routes
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler gin.HandlerFunc) {
	session := LoadSession(c)
	if !session.IsAdmin() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	handler(c)
}

func (cr *Router) GET(path string, handler gin.HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler gin.HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) DELETE(path string, handler gin.HandlerFunc) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
