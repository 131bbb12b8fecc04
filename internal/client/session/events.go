package session

import "github.com/taskhive/task-manager/internal/core/domain"

// Event is a tagged transition trigger consumed by Reduce. The concrete types
// below are the full set; there are no string-typed actions.
type Event interface {
	isEvent()
}

// SubmitStarted begins a credential-mutating operation (login, register, or
// bootstrap revalidation) under a fresh generation.
type SubmitStarted struct {
	Gen uint64
}

// AuthSucceeded records a freshly minted (or revalidated) credential.
type AuthSucceeded struct {
	Gen   uint64
	Token string
}

// AuthFailed records a rejected login or register attempt.
type AuthFailed struct {
	Gen     uint64
	Message string
}

// IdentityLoaded records the identity the server resolved for the credential.
type IdentityLoaded struct {
	Gen  uint64
	User *domain.User
}

// IdentityRejected records that the server refused the credential; the
// session drops to Unauthenticated and the credential is forgotten.
type IdentityRejected struct {
	Gen     uint64
	Message string
}

// NoStoredCredential resolves bootstrap immediately when nothing is persisted.
type NoStoredCredential struct{}

// LoggedOut discards the session. Logout is idempotent.
type LoggedOut struct{}

// ErrorCleared removes the last error message, leaving the rest untouched.
type ErrorCleared struct{}

func (SubmitStarted) isEvent()      {}
func (AuthSucceeded) isEvent()      {}
func (AuthFailed) isEvent()         {}
func (IdentityLoaded) isEvent()     {}
func (IdentityRejected) isEvent()   {}
func (NoStoredCredential) isEvent() {}
func (LoggedOut) isEvent()          {}
func (ErrorCleared) isEvent()       {}
