package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/eminentestates/residence-api/internal/api/metrics"
	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// RequireRole confirms the caller's persisted role matches required.
// The user record is re-read from the store on every check so a role
// change takes effect on the next request; nothing is cached.
//
// A missing record or any other role value fails closed with
// domain.ErrForbidden; a missing email claim after Auth ran surfaces
// as domain.ErrUnauthenticated.
func RequireRole(users ports.UserRepository, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(CtxEmail).(string)
			if email == "" {
				metrics.AuthDenialsTotal.WithLabelValues("missing_claims").Inc()
				return domain.ErrUnauthenticated
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthDenialsTotal.WithLabelValues("role_mismatch").Inc()
					return domain.ErrForbidden
				}
				return err
			}
			if user.Role != required {
				metrics.AuthDenialsTotal.WithLabelValues("role_mismatch").Inc()
				return domain.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireSelf guards the self-check endpoints: the email path
// parameter must equal the verified claim's email, preventing a caller
// from querying another identity. This predicate is independent of
// RequireRole and never touches the store.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(CtxEmail).(string)
			if email == "" || c.Param(param) != email {
				metrics.AuthDenialsTotal.WithLabelValues("self_mismatch").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
