package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskhive/task-manager/internal/core/domain"
	"github.com/taskhive/task-manager/internal/core/ports"
)

// TaskService implements task CRUD with per-resource ownership enforcement.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// Create stores a new task owned by the caller.
func (s *TaskService) Create(ctx context.Context, caller *domain.User, input ports.CreateTaskInput) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusPending,
		Priority:    domain.PriorityMedium,
		DueDate:     input.DueDate,
		UserID:      caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Status != "" {
		task.Status = domain.TaskStatus(input.Status)
	}
	if input.Priority != "" {
		task.Priority = domain.TaskPriority(input.Priority)
	}

	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("user_id", caller.ID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", task.ID).Str("user_id", caller.ID).Msg("task created")
	return task, nil
}

// List returns the caller's own tasks.
func (s *TaskService) List(ctx context.Context, caller *domain.User) ([]domain.Task, error) {
	return s.repo.FindByUser(ctx, caller.ID)
}

// Get returns a single task. Existence is checked before ownership, so a
// missing id yields ErrTaskNotFound regardless of the caller.
func (s *TaskService) Get(ctx context.Context, caller *domain.User, id string) (*domain.Task, error) {
	return s.authorizedTask(ctx, caller, id)
}

// Update applies a partial update to a task the caller may act on.
func (s *TaskService) Update(ctx context.Context, caller *domain.User, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.authorizedTask(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = domain.TaskStatus(*input.Status)
	}
	if input.Priority != nil {
		task.Priority = domain.TaskPriority(*input.Priority)
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to update task")
		return nil, err
	}
	return task, nil
}

// Delete removes a task the caller may act on.
func (s *TaskService) Delete(ctx context.Context, caller *domain.User, id string) error {
	if _, err := s.authorizedTask(ctx, caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("task_id", id).Msg("failed to delete task")
		return err
	}
	return nil
}

// authorizedTask loads a task and enforces the ownership policy: the owner
// and admins may act, everyone else gets ErrNotAuthorized.
func (s *TaskService) authorizedTask(ctx context.Context, caller *domain.User, id string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanAccess(task.UserID) {
		s.logger.Warn().Str("task_id", id).Str("user_id", caller.ID).Msg("ownership check denied")
		return nil, domain.ErrNotAuthorized
	}
	return task, nil
}
