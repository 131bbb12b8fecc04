package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-manager/internal/core/domain"
	"github.com/taskhive/task-manager/internal/core/ports"
)

type stubTaskRepo struct {
	tasks map[string]*domain.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	if t, ok := r.tasks[id]; ok {
		return cloneTask(t), nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) FindByUser(_ context.Context, userID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	delete(r.tasks, id)
	return nil
}

var (
	owner    = &domain.User{ID: "u-owner", Role: domain.RoleUser}
	stranger = &domain.User{ID: "u-other", Role: domain.RoleUser}
	admin    = &domain.User{ID: "u-admin", Role: domain.RoleAdmin}
)

func newTestTaskService(repo *stubTaskRepo) *TaskService {
	return NewTaskService(repo, zerolog.Nop())
}

func TestTaskService_Create_Defaults(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTestTaskService(repo)

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{Title: "buy milk"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
	if task.UserID != owner.ID {
		t.Fatalf("expected owner %s, got %s", owner.ID, task.UserID)
	}
	if task.Status != domain.StatusPending || task.Priority != domain.PriorityMedium {
		t.Fatalf("unexpected defaults: %s/%s", task.Status, task.Priority)
	}
}

func TestTaskService_Get_OwnershipPolicy(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTestTaskService(repo)

	created, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{Title: "secret plans"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("owner should access own task: %v", err)
	}
	if _, err := svc.Get(context.Background(), admin, created.ID); err != nil {
		t.Fatalf("admin should access any task: %v", err)
	}
	if _, err := svc.Get(context.Background(), stranger, created.ID); err != domain.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

// A missing task is reported as not found even to callers who would not have
// been authorized, keeping the 404 path distinct from the 401 path.
func TestTaskService_Get_NotFoundBeforeOwnership(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTestTaskService(repo)

	if _, err := svc.Get(context.Background(), stranger, "no-such-id"); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_Update(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTestTaskService(repo)

	created, _ := svc.Create(context.Background(), owner, ports.CreateTaskInput{Title: "draft"})

	title := "final"
	status := string(domain.StatusCompleted)
	if _, err := svc.Update(context.Background(), stranger, created.ID, ports.UpdateTaskInput{Title: &title}); err != domain.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized for stranger, got %v", err)
	}

	updated, err := svc.Update(context.Background(), admin, created.ID, ports.UpdateTaskInput{Title: &title, Status: &status})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Title != "final" || updated.Status != domain.StatusCompleted {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.UserID != owner.ID {
		t.Fatalf("owner must never change, got %s", updated.UserID)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to advance")
	}
}

func TestTaskService_Delete(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTestTaskService(repo)

	created, _ := svc.Create(context.Background(), owner, ports.CreateTaskInput{Title: "to delete"})

	if err := svc.Delete(context.Background(), stranger, created.ID); err != domain.ErrNotAuthorized {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), owner, created.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("expected task gone, got %v", err)
	}
}

func TestTaskService_List_OnlyOwn(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTestTaskService(repo)

	_, _ = svc.Create(context.Background(), owner, ports.CreateTaskInput{Title: "mine"})
	_, _ = svc.Create(context.Background(), stranger, ports.CreateTaskInput{Title: "theirs"})

	tasks, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "mine" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestTaskService_Create_ExplicitFields(t *testing.T) {
	repo := newStubTaskRepo()
	svc := newTestTaskService(repo)

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:    "ship release",
		Status:   string(domain.StatusInProgress),
		Priority: string(domain.PriorityHigh),
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Status != domain.StatusInProgress || task.Priority != domain.PriorityHigh {
		t.Fatalf("explicit fields not applied: %s/%s", task.Status, task.Priority)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Fatalf("due date not applied: %v", task.DueDate)
	}
}
