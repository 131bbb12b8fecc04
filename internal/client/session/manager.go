package session

import (
	"context"
	"errors"
	"sync"

	"github.com/taskhive/task-manager/internal/client/api"
	"github.com/taskhive/task-manager/internal/core/domain"
)

// ErrInFlight is returned when a credential-mutating operation is requested
// while another one has not resolved yet. Transitions are serialized; the
// caller retries after the current one settles.
var ErrInFlight = errors.New("another authentication request is in flight")

// AuthAPI is the slice of the server API the session machine depends on.
type AuthAPI interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (*domain.User, error)
}

// CredentialStore persists the bearer credential across runs.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Manager owns the session State and is the only writer to it. All mutation
// goes through Reduce; the Manager adds I/O (API calls, credential
// persistence) around the pure transitions.
type Manager struct {
	api   AuthAPI
	store CredentialStore

	mu    sync.Mutex
	state State
}

func NewManager(api AuthAPI, store CredentialStore) *Manager {
	return &Manager{
		api:   api,
		store: store,
		state: State{Phase: Bootstrapping},
	}
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Token returns the current credential, or "" when unauthenticated.
func (m *Manager) Token() string {
	return m.State().Token
}

func (m *Manager) dispatch(ev Event) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Reduce(m.state, ev)
	return m.state
}

// begin reserves the next generation for a credential-mutating operation,
// rejecting overlap with one already in flight.
func (m *Manager) begin() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Loading {
		return 0, ErrInFlight
	}
	gen := m.state.Gen + 1
	m.state = Reduce(m.state, SubmitStarted{Gen: gen})
	return gen, nil
}

// Bootstrap replays the stored credential against the server. With nothing
// stored it resolves to Unauthenticated without any network call; a rejected
// credential is discarded and its failure reason kept as the session error.
func (m *Manager) Bootstrap(ctx context.Context) State {
	tok, err := m.store.Load()
	if err != nil || tok == "" {
		return m.dispatch(NoStoredCredential{})
	}

	gen, err := m.begin()
	if err != nil {
		return m.State()
	}

	user, err := m.api.Me(ctx, tok)
	if err != nil {
		_ = m.store.Clear()
		return m.dispatch(IdentityRejected{Gen: gen, Message: failureMessage(err, "authentication error")})
	}

	m.dispatch(AuthSucceeded{Gen: gen, Token: tok})
	return m.dispatch(IdentityLoaded{Gen: gen, User: user})
}

// Login submits credentials, persists the minted token, and loads the
// identity behind it.
func (m *Manager) Login(ctx context.Context, email, password string) (State, error) {
	return m.authenticate(ctx, func(ctx context.Context) (string, error) {
		return m.api.Login(ctx, email, password)
	}, "login failed")
}

// Register creates an account; the contract is identical to Login.
func (m *Manager) Register(ctx context.Context, name, email, password string) (State, error) {
	return m.authenticate(ctx, func(ctx context.Context) (string, error) {
		return m.api.Register(ctx, name, email, password)
	}, "registration failed")
}

func (m *Manager) authenticate(ctx context.Context, obtain func(context.Context) (string, error), fallback string) (State, error) {
	gen, err := m.begin()
	if err != nil {
		return m.State(), err
	}

	tok, err := obtain(ctx)
	if err != nil {
		return m.dispatch(AuthFailed{Gen: gen, Message: failureMessage(err, fallback)}), nil
	}

	if err := m.store.Save(tok); err != nil {
		return m.dispatch(AuthFailed{Gen: gen, Message: "failed to persist credential"}), nil
	}
	m.dispatch(AuthSucceeded{Gen: gen, Token: tok})

	user, err := m.api.Me(ctx, tok)
	if err != nil {
		_ = m.store.Clear()
		return m.dispatch(IdentityRejected{Gen: gen, Message: failureMessage(err, "authentication error")}), nil
	}
	return m.dispatch(IdentityLoaded{Gen: gen, User: user}), nil
}

// Logout discards the stored credential and the session. No server call is
// made; the token stays valid server-side until expiry. Safe to call at any
// time, repeatedly.
func (m *Manager) Logout() State {
	_ = m.store.Clear()
	return m.dispatch(LoggedOut{})
}

// Invalidate drops the session after a protected request was rejected as
// unauthenticated mid-flight (expired or revoked identity).
func (m *Manager) Invalidate(message string) State {
	_ = m.store.Clear()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Reduce(m.state, IdentityRejected{Gen: m.state.Gen, Message: message})
	return m.state
}

// ClearError removes the session error message.
func (m *Manager) ClearError() State {
	return m.dispatch(ErrorCleared{})
}

// failureMessage prefers the server-provided messages, falling back to a
// generic description for transport-level failures.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		return apiErr.Error()
	}
	return fallback
}
