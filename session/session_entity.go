package session

import (
	"context"
	"ncrtrack/domain"
	"time"

	"github.com/fundwit/go-commons/types"
)

type Session struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`

	SigningTime time.Time `json:"-"`

	Context context.Context `json:"-"`
}

type Identity struct {
	ID       types.ID    `json:"id"`
	Name     string      `json:"name"`
	Nickname string      `json:"nickname"`
	Role     domain.Role `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s.Identity.Role == domain.RoleAdmin
}

func (s *Session) HasRole(role domain.Role) bool {
	return s.Identity.Role == role
}

func (s *Session) Clone() Session {
	return Session{Token: s.Token, Identity: s.Identity, SigningTime: s.SigningTime, Context: s.Context}
}
