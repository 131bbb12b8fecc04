package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User models a registered identity. ID and Role are fixed at registration.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanAccess reports whether the user may act on a resource owned by ownerID:
// the owner itself, or any admin.
func (u *User) CanAccess(ownerID string) bool {
	return u.ID == ownerID || u.Role == RoleAdmin
}
