package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhive/task-manager/internal/client/session"
)

func (a *App) register(ctx context.Context) error {
	name, err := promptLine(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := promptLine(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := promptPassword("Password", a.out)
	if err != nil {
		return err
	}

	s, err := a.session.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	if s.Phase != session.Authenticated {
		return errors.New(s.Err)
	}
	fmt.Fprintf(a.out, "registered and signed in as %s <%s>\n", s.User.Name, s.User.Email)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := promptLine(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := promptPassword("Password", a.out)
	if err != nil {
		return err
	}

	s, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if s.Phase != session.Authenticated {
		return errors.New(s.Err)
	}
	fmt.Fprintf(a.out, "signed in as %s <%s>\n", s.User.Name, s.User.Email)
	return nil
}

func (a *App) logout() error {
	a.session.Logout()
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *App) whoAmI(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	user, err := a.api.Me(ctx, a.session.Token())
	if err != nil {
		return a.authFailed(err)
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}
