package ports

import (
	"context"

	"github.com/taskhive/task-manager/internal/core/domain"
)

// AuthService implements registration and login. Both return a freshly minted
// credential alongside the identity it was minted for.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
