package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-manager/internal/api/middleware"
	"github.com/taskhive/task-manager/internal/core/domain"
)

// CurrentUser returns the identity attached by the Auth middleware. Routes
// behind the gate may rely on its presence; a missing identity means the
// route was wired without the middleware, which is a programming error and
// not a recoverable condition.
func CurrentUser(c echo.Context) *domain.User {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		panic("handler: route reached without auth middleware")
	}
	return user
}
