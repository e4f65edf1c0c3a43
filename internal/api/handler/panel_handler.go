package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accessgate/rbac-system/internal/core/domain"
)

// PanelHandler serves the protected demo panels. Each route's
// allow-list is declared in the route policy table, not here: by the
// time these handlers run, authentication and authorization have
// already passed.
type PanelHandler struct{}

func NewPanelHandler() *PanelHandler {
	return &PanelHandler{}
}

type panelResponse struct {
	Message  string `json:"message"`
	Role     string `json:"role,omitempty"`
	Username string `json:"username,omitempty"`
}

// Dashboard greets any authenticated user with a role-specific message.
//
// @Summary      Dashboard
// @Tags         panels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  panelResponse
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *PanelHandler) Dashboard(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var message string
	switch claims.Role {
	case domain.RoleAdmin:
		message = "Welcome Admin! You have full system access."
	case domain.RoleModerator:
		message = "Welcome Moderator! You can review and manage user content."
	default:
		message = "Welcome User! You can view your profile and content."
	}

	return c.JSON(http.StatusOK, panelResponse{
		Message:  message,
		Role:     string(claims.Role),
		Username: claims.Username,
	})
}

// AdminPanel is restricted to the admin role.
//
// @Summary      Admin control panel
// @Tags         panels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  panelResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin-panel [get]
func (h *PanelHandler) AdminPanel(c echo.Context) error {
	return c.JSON(http.StatusOK, panelResponse{Message: "Welcome to the Admin Control Panel"})
}

// ModPanel is restricted to moderators and admins.
//
// @Summary      Moderator panel
// @Tags         panels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  panelResponse
// @Failure      403  {object}  map[string]string
// @Router       /mod-panel [get]
func (h *PanelHandler) ModPanel(c echo.Context) error {
	return c.JSON(http.StatusOK, panelResponse{Message: "Moderator Section: Access granted"})
}

// UserPanel is open to every role, each listed explicitly.
//
// @Summary      User panel
// @Tags         panels
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  panelResponse
// @Failure      403  {object}  map[string]string
// @Router       /user-panel [get]
func (h *PanelHandler) UserPanel(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, panelResponse{
		Message:  "User Section: Access granted",
		Username: claims.Username,
	})
}
