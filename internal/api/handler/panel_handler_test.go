package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/accessgate/rbac-system/internal/api/middleware"
	"github.com/accessgate/rbac-system/internal/core/domain"
)

func newPanelContext(claims *domain.Claims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(middleware.ClaimsKey, claims)
	}
	return c, rec
}

func TestDashboard_RoleSpecificMessages(t *testing.T) {
	tests := []struct {
		role    domain.Role
		message string
	}{
		{domain.RoleAdmin, "Welcome Admin! You have full system access."},
		{domain.RoleModerator, "Welcome Moderator! You can review and manage user content."},
		{domain.RoleUser, "Welcome User! You can view your profile and content."},
	}

	h := NewPanelHandler()
	for _, tt := range tests {
		c, rec := newPanelContext(&domain.Claims{Username: "x", Role: tt.role})
		if err := h.Dashboard(c); err != nil {
			t.Fatalf("dashboard for %s: %v", tt.role, err)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["message"] != tt.message {
			t.Fatalf("role %s: expected %q, got %q", tt.role, tt.message, resp["message"])
		}
		if resp["role"] != string(tt.role) {
			t.Fatalf("role %s not echoed, got %v", tt.role, resp["role"])
		}
	}
}

func TestDashboard_MissingClaims(t *testing.T) {
	h := NewPanelHandler()
	c, _ := newPanelContext(nil)

	if err := h.Dashboard(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAdminPanel(t *testing.T) {
	h := NewPanelHandler()
	c, rec := newPanelContext(&domain.Claims{Username: "admin", Role: domain.RoleAdmin})

	if err := h.AdminPanel(c); err != nil {
		t.Fatalf("admin panel: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Welcome to the Admin Control Panel" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
