package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-manager/internal/api/metrics"
	"github.com/taskhive/task-manager/internal/core/domain"
	"github.com/taskhive/task-manager/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. All routes sit
// behind the Auth middleware; ownership is enforced by the service.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /api/tasks, returning the caller's own tasks.
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context(), CurrentUser(c))
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return c.JSON(http.StatusOK, taskListResponse{Success: true, Count: len(tasks), Data: tasks})
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), CurrentUser(c), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusCreated, taskResponse{Success: true, Data: task})
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.service.Get(c.Request().Context(), CurrentUser(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskResponse{Success: true, Data: task})
}

// Update handles PUT /api/tasks/:id.
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Update(c.Request().Context(), CurrentUser(c), c.Param("id"), ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskResponse{Success: true, Data: task})
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), CurrentUser(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyDataResponse{Success: true, Data: map[string]any{}})
}
