package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/taskhive/task-manager/internal/client/api"
)

func (a *App) listTasks(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	tasks, err := a.api.ListTasks(ctx, a.session.Token())
	if err != nil {
		return a.authFailed(err)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "no tasks")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Status, t.Priority)
	}
	return w.Flush()
}

func (a *App) addTask(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("usage: add <title> [description]")
	}

	input := api.CreateTaskInput{Title: args[0]}
	if len(args) > 1 {
		input.Description = strings.Join(args[1:], " ")
	}

	task, err := a.api.CreateTask(ctx, a.session.Token(), input)
	if err != nil {
		return a.authFailed(err)
	}
	fmt.Fprintf(a.out, "created task %s (%s/%s)\n", task.ID, task.Status, task.Priority)
	return nil
}

func (a *App) removeTask(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: rm <id>")
	}

	if err := a.api.DeleteTask(ctx, a.session.Token(), args[0]); err != nil {
		return a.authFailed(err)
	}
	fmt.Fprintf(a.out, "removed task %s\n", args[0])
	return nil
}
