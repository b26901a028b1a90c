package handlers

import (
	"crypto/subtle"
	"net/http"

	"gallery/auth"
	"gallery/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func credentialsValid(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(config.ADMIN_USERNAME)) != 1 {
		return false
	}
	if config.ADMIN_PASSWORD_HASH != "" {
		return bcrypt.CompareHashAndPassword([]byte(config.ADMIN_PASSWORD_HASH), []byte(password)) == nil
	}
	if config.ADMIN_PASSWORD == "" {
		// No credentials configured - nobody gets in
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(config.ADMIN_PASSWORD)) == 1
}

func AdminLogin(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if !credentialsValid(r.Username, r.Password) {
		c.JSON(http.StatusUnauthorized, Response{"invalid credentials"})
		return
	}
	session := auth.LoadSession(c)
	session.LoginAdmin()
	c.JSON(http.StatusOK, gin.H{"error": "", "admin": true})
}

func AdminLogout(c *gin.Context) {
	session := auth.LoadSession(c)
	session.Logout()
	c.JSON(http.StatusOK, OKResponse)
}

func AdminStatus(c *gin.Context) {
	session := auth.LoadSession(c)
	c.JSON(http.StatusOK, gin.H{"error": "", "admin": session.IsAdmin()})
}
