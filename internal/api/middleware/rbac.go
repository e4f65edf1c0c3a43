package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/accessgate/rbac-system/internal/api/metrics"
	"github.com/accessgate/rbac-system/internal/core/domain"
)

// RequireRoles enforces the allow-list bound to a protected operation.
// It must run after Auth: the only trusted role is the one Auth
// extracted from a verified token. Missing claims mean the gate never
// ran, which is an authentication failure, not an authorization one.
func RequireRoles(allow domain.AllowList) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(RoleKey).(string)
			if role == "" {
				return domain.ErrMissingToken
			}

			if err := domain.Authorize(domain.Role(role), allow); err != nil {
				metrics.AuthzDecisionsTotal.WithLabelValues("deny").Inc()
				return err
			}
			metrics.AuthzDecisionsTotal.WithLabelValues("permit").Inc()

			return next(c)
		}
	}
}
