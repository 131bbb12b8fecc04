package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// TaskPriority represents how urgent a task is.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrNotAuthorized = errors.New("not authorized to access this task")

// Task is the core aggregate. UserID is the owning identity, set once at
// creation and never reassigned.
type Task struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Status      TaskStatus   `json:"status" bson:"status"`
	Priority    TaskPriority `json:"priority" bson:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty" bson:"due_date,omitempty"`
	UserID      string       `json:"user" bson:"user_id"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}
