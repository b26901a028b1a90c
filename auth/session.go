package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	adminKey   = "admin"
	visitorKey = "visitor"
)

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) IsAdmin() bool {
	admin, ok := s.Get(adminKey).(bool)
	return ok && admin
}

func (s *Session) LoginAdmin() {
	s.Set(adminKey, true)
	s.Save()
}

func (s *Session) Logout() {
	s.Delete(adminKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

// Visitor returns a stable per-browser token, creating one on first use.
// Like records are keyed on it.
func (s *Session) Visitor() string {
	if v, ok := s.Get(visitorKey).(string); ok && v != "" {
		return v
	}
	v := uuid.NewString()
	s.Set(visitorKey, v)
	s.Save()
	return v
}
