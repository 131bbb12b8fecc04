package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/task-manager/internal/api/handler"
	"github.com/taskhive/task-manager/internal/core/domain"
)

// serve runs a request through a minimal echo instance whose only route
// returns err, and decodes the error envelope the handler produced.
func serve(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"unknown user", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"missing task", domain.ErrTaskNotFound, http.StatusNotFound, "task not found"},
		{"ownership denial", domain.ErrNotAuthorized, http.StatusUnauthorized, "not authorized to access this task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serve(t, tt.err)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, false, body["success"])
			require.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestErrorHandler_ValidationMessagesAsList(t *testing.T) {
	err := &handler.ValidationError{Messages: []string{
		"email must be a valid email",
		"password must be at least 6 characters",
	}}

	code, body := serve(t, err)
	require.Equal(t, http.StatusBadRequest, code)

	msgs, ok := body["error"].([]any)
	require.True(t, ok, "validation errors must render as a list")
	require.Len(t, msgs, 2)
	require.Equal(t, "email must be a valid email", msgs[0])
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, body := serve(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "missing authorization header", body["error"])
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := serve(t, errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, code)
	require.Equal(t, "internal server error", body["error"], "internal details must not leak")
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, _ := serve(t, fmt.Errorf("find task: %w", domain.ErrTaskNotFound))
	require.Equal(t, http.StatusNotFound, code)
}
