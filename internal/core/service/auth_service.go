package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/task-manager/internal/core/domain"
	"github.com/taskhive/task-manager/internal/core/ports"
	"github.com/taskhive/task-manager/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo  ports.UserRepository
	codec *token.Codec
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec) *AuthService {
	return &AuthService{repo: repo, codec: codec}
}

// Register creates a new identity with the standard role and mints its first
// credential. Duplicate emails surface as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tok, err := s.codec.Mint(created.ID, created.Role, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}
	return tok, created, nil
}

// Login verifies the presented secret and mints a credential on match. An
// unknown email and a wrong password both return domain.ErrInvalidCredentials
// so responses cannot be used to enumerate identities.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Mint(user.ID, user.Role, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
