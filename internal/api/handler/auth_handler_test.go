package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/task-manager/internal/api/middleware"
	"github.com/taskhive/task-manager/internal/core/domain"
)

type stubAuthService struct {
	token string
	user  *domain.User
	err   error

	gotName, gotEmail, gotPassword string
}

func (s *stubAuthService) Register(_ context.Context, name, email, password string) (string, *domain.User, error) {
	s.gotName, s.gotEmail, s.gotPassword = name, email, password
	return s.token, s.user, s.err
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.gotEmail, s.gotPassword = email, password
	return s.token, s.user, s.err
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_RegisterReturnsTokenWith201(t *testing.T) {
	svc := &stubAuthService{token: "tok-1", user: &domain.User{ID: "u1"}}
	h := NewAuthHandler(svc)
	c, rec := newJSONContext(http.MethodPost, "/api/users/register",
		`{"name":"Ada","email":"ada@example.com","password":"secret1"}`)

	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "tok-1", resp.Token)
	require.Equal(t, "Ada", svc.gotName)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"email":"ada@example.com","password":"secret1"}`, "name is required"},
		{"bad email", `{"name":"Ada","email":"nope","password":"secret1"}`, "email must be a valid email"},
		{"short password", `{"name":"Ada","email":"ada@example.com","password":"abc"}`, "password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/api/users/register", tt.body)

			err := h.Register(c)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Contains(t, ve.Messages, tt.want)
		})
	}
}

func TestAuthHandler_RegisterCollectsAllMessages(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newJSONContext(http.MethodPost, "/api/users/register", `{}`)

	err := h.Register(c)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Messages, 3, "one message per invalid field")
}

func TestAuthHandler_RegisterPropagatesConflict(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists})
	c, _ := newJSONContext(http.MethodPost, "/api/users/register",
		`{"name":"Ada","email":"ada@example.com","password":"secret1"}`)

	require.ErrorIs(t, h.Register(c), domain.ErrUserExists)
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	svc := &stubAuthService{token: "tok-2", user: &domain.User{ID: "u1"}}
	h := NewAuthHandler(svc)
	c, rec := newJSONContext(http.MethodPost, "/api/users/login",
		`{"email":"ada@example.com","password":"secret1"}`)

	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "tok-2", resp.Token)
}

func TestAuthHandler_LoginPropagatesInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})
	c, _ := newJSONContext(http.MethodPost, "/api/users/login",
		`{"email":"ada@example.com","password":"wrong"}`)

	require.ErrorIs(t, h.Login(c), domain.ErrInvalidCredentials)
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newJSONContext(http.MethodGet, "/api/users/me", "")
	user := &domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleUser}
	c.Set(middleware.UserContextKey, user)

	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "u1", resp.Data.ID)
}
