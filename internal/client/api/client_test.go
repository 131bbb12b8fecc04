package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_LoginParsesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/users/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"), "login carries no credential")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ada@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "tok-1"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	tok, err := c.Login(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)
}

func TestClient_MeSendsBearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]string{"id": "u1", "name": "Ada", "email": "ada@example.com", "role": "user"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	user, err := c.Me(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "user", user.Role)
}

func TestClient_ValidationMessagesDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   []string{"email must be a valid email address", "password must be at least 6 characters"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Register(context.Background(), "Ada", "nope", "x")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Len(t, apiErr.Messages, 2)
	require.Contains(t, apiErr.Error(), "valid email")
}

func TestClient_SingleErrorStringDecoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "invalid credentials"})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "ada@example.com", "wrong")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, []string{"invalid credentials"}, apiErr.Messages)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Login(context.Background(), "ada@example.com", "secret1")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Contains(t, apiErr.Error(), "502")
}

func TestClient_ListTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tasks", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"count":   1,
			"data":    []map[string]string{{"id": "t1", "title": "ship it", "status": "pending", "priority": "medium"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	tasks, err := c.ListTasks(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "ship it", tasks[0].Title)
}
