package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/accessgate/rbac-system/internal/api/middleware"
	"github.com/accessgate/rbac-system/internal/core/domain"
)

// ctxClaims extracts the claims the Auth middleware attached to the
// request. Their presence proves the gate ran; a protected handler
// reached without them is a wiring bug, reported as unauthenticated
// rather than a 500.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if !ok || claims == nil {
		return nil, domain.ErrMissingToken
	}
	return claims, nil
}
