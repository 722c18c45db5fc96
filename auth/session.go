package auth

import (
	"server/db"
	"server/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(id uint64) {
	s.Set(userIdKey, id)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

func (s *Session) UserID() uint64 {
	id := s.Get(userIdKey)
	if id == nil {
		return 0
	}
	uid, ok := id.(uint64)
	if !ok {
		return 0
	}
	return uid
}

func (s *Session) User() (user models.User) {
	user.ID = s.UserID()
	if user.ID == 0 {
		return
	}
	if db.Instance.First(&user).Error != nil {
		user.ID = 0
	}
	return
}
