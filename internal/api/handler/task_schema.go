package handler

import (
	"time"

	"github.com/taskhive/task-manager/internal/core/domain"
)

// --- Request / Response types ---

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required,max=100"`
	Description string     `json:"description" validate:"max=500"`
	Status      string     `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

// updateTaskRequest uses pointers so absent fields are left unchanged.
type updateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

type taskResponse struct {
	Success bool         `json:"success"`
	Data    *domain.Task `json:"data"`
}

type taskListResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Data    []domain.Task `json:"data"`
}

type emptyDataResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}
