package testinfra

import (
	"context"
	"fmt"
	"time"

	"ncrtrack/domain"
	"ncrtrack/session"

	"github.com/fundwit/go-commons/types"
)

// BuildSecCtx builds a session for a user holding the given workflow role.
func BuildSecCtx(uid types.ID, role domain.Role) *session.Session {
	return &session.Session{
		Token: fmt.Sprintf("test-token-%d", uid),
		Identity: session.Identity{
			ID:   uid,
			Name: fmt.Sprintf("user-%d", uid),
			Role: role,
		},
		SigningTime: time.Now(),
		Context:     context.Background(),
	}
}
