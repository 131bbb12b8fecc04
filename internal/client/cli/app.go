// Package cli implements the task-manager command-line client. Every command
// goes through the session manager, so authentication state transitions stay
// in one place regardless of which command triggered them.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/taskhive/task-manager/internal/client/api"
	"github.com/taskhive/task-manager/internal/client/config"
	"github.com/taskhive/task-manager/internal/client/credstore"
	"github.com/taskhive/task-manager/internal/client/session"
)

type App struct {
	api     *api.Client
	session *session.Manager
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config) *App {
	client := api.New(cfg.ServerURL, cfg.RequestTimeout)
	store := credstore.New(cfg.CredentialPath)
	return &App{
		api:     client,
		session: session.NewManager(client, store),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run resolves the stored credential and dispatches the command. It returns
// an exit code rather than calling os.Exit so main stays trivial.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	a.session.Bootstrap(ctx)

	var err error
	switch cmd := args[0]; cmd {
	case "register":
		err = a.register(ctx)
	case "login":
		err = a.login(ctx)
	case "logout":
		err = a.logout()
	case "whoami":
		err = a.whoAmI(ctx)
	case "tasks":
		err = a.listTasks(ctx)
	case "add":
		err = a.addTask(ctx, args[1:])
	case "rm":
		err = a.removeTask(ctx, args[1:])
	case "help":
		a.usage()
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", cmd)
		a.usage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return 1
	}
	return 0
}

func (a *App) usage() {
	fmt.Fprint(a.out, `usage: taskman [flags] <command>

commands:
  register   create an account and sign in
  login      sign in with an existing account
  logout     discard the stored credential
  whoami     show the signed-in identity
  tasks      list your tasks
  add        add a task: add <title> [description]
  rm         remove a task: rm <id>
  help       show this message
`)
}

// requireAuth gates protected commands on the session state, mirroring how
// protected views decide between loading, login redirect, and content.
func (a *App) requireAuth() error {
	switch session.Guard(a.session.State()) {
	case session.Render:
		return nil
	case session.ShowLoading:
		return errors.New("session check still in progress, try again")
	default:
		if msg := a.session.State().Err; msg != "" {
			return fmt.Errorf("not signed in: %s", msg)
		}
		return errors.New("not signed in, run 'taskman login' first")
	}
}

// authFailed drops the session when the server rejected the credential
// mid-command, so the next invocation prompts for login instead of retrying
// a dead token.
func (a *App) authFailed(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status == 401 {
		a.session.Invalidate("session expired, sign in again")
		return errors.New("session expired, sign in again")
	}
	return err
}
