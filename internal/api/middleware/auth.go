package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-manager/internal/api/metrics"
	"github.com/taskhive/task-manager/internal/core/domain"
	"github.com/taskhive/task-manager/internal/core/ports"
	"github.com/taskhive/task-manager/internal/core/token"
)

// UserContextKey is where the Auth middleware stores the resolved identity.
// Handlers read it through handler.CurrentUser.
const UserContextKey = "auth_user"

// Auth verifies the bearer credential, resolves it to a live identity, and
// attaches that identity to the request context. The token may be valid while
// the identity no longer exists (deleted after minting); that case is a clean
// 401, not a server fault.
func Auth(codec *token.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1], time.Now().UTC())
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired credential")
			}

			user, err := users.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired credential")
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
