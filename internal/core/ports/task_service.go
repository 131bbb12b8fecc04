package ports

import (
	"context"
	"time"

	"github.com/taskhive/task-manager/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task. The owner
// is always the authenticated caller; it is never taken from the payload.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// TaskService implements task operations on behalf of an authenticated caller.
// Get, Update and Delete check existence before ownership, so a missing task
// surfaces as domain.ErrTaskNotFound even to callers who could not have
// accessed it.
type TaskService interface {
	Create(ctx context.Context, caller *domain.User, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, caller *domain.User) ([]domain.Task, error)
	Get(ctx context.Context, caller *domain.User, id string) (*domain.Task, error)
	Update(ctx context.Context, caller *domain.User, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, caller *domain.User, id string) error
}
