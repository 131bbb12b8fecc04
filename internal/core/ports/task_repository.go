package ports

import (
	"context"

	"github.com/taskhive/task-manager/internal/core/domain"
)

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
