package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accessgate/rbac-system/internal/api/metrics"
	"github.com/accessgate/rbac-system/internal/core/domain"
	"github.com/accessgate/rbac-system/internal/core/ports"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	ClaimsKey = "auth_claims"
	RoleKey   = "auth_role"
)

// Auth is the gate in front of every protected operation. It extracts
// the bearer token, decodes it, and attaches the resulting claims to
// the request context. All decode failures collapse to a single
// unauthenticated outcome for the client; the precise kind survives
// only in logs and metrics.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			claims, err := tokens.Decode(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				log.Debug().
					Err(err).
					Str("path", c.Path()).
					Msg("token rejected")
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(ClaimsKey, claims)
			c.Set(RoleKey, string(claims.Role))

			return next(c)
		}
	}
}

// verifyResult maps a decode failure onto its metric label.
func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
