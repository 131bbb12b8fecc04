// Package api is the HTTP client for the task-manager server. The bearer
// credential is an explicit argument on every authenticated call; the client
// holds no token state and mutates no shared defaults, so one instance is
// safe to share across concurrent callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taskhive/task-manager/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Error is a non-2xx response decoded into its status and server messages.
type Error struct {
	Status   int
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Client talks to the task-manager HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the server's uniform response shape. Error is raw because the
// server sends either a single string or a list of validation messages.
type envelope struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// Register creates an account and returns the minted credential.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/api/users/register", "", body)
	if err != nil {
		return "", err
	}
	return env.Token, nil
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/api/users/login", "", body)
	if err != nil {
		return "", err
	}
	return env.Token, nil
}

// Me resolves the token to the identity it was minted for.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/users/me", token, nil)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// ListTasks returns the caller's tasks.
func (c *Client) ListTasks(ctx context.Context, token string) ([]domain.Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/tasks", token, nil)
	if err != nil {
		return nil, err
	}
	var tasks []domain.Task
	if err := json.Unmarshal(env.Data, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

// CreateTaskInput carries the fields accepted by task creation.
type CreateTaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// CreateTask creates a task owned by the authenticated caller.
func (c *Client) CreateTask(ctx context.Context, token string, input CreateTaskInput) (*domain.Task, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/tasks", token, input)
	if err != nil {
		return nil, err
	}
	var task domain.Task
	if err := json.Unmarshal(env.Data, &task); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return &task, nil
}

// DeleteTask removes a task by id.
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, token, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if len(data) > 0 {
		// Non-JSON bodies fall through to the status check below.
		_ = json.Unmarshal(data, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Messages: decodeMessages(env.Error)}
	}
	return &env, nil
}

// decodeMessages accepts either a single error string or a list of messages.
func decodeMessages(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	return nil
}
