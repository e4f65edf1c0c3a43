package domain

import (
	"errors"
	"testing"
)

func TestAuthorize(t *testing.T) {
	adminOnly := AllowList{RoleAdmin}
	modPanel := AllowList{RoleAdmin, RoleModerator}
	everyone := AllowList{RoleUser, RoleModerator, RoleAdmin}

	tests := []struct {
		name   string
		role   Role
		allow  AllowList
		permit bool
	}{
		{"admin on admin-only", RoleAdmin, adminOnly, true},
		{"moderator on admin-only", RoleModerator, adminOnly, false},
		{"user on admin-only", RoleUser, adminOnly, false},
		{"admin on mod panel", RoleAdmin, modPanel, true},
		{"moderator on mod panel", RoleModerator, modPanel, true},
		{"user on mod panel", RoleUser, modPanel, false},
		{"user on shared", RoleUser, everyone, true},
		{"unknown role", Role("superuser"), everyone, false},
		{"empty allow-list denies all", RoleAdmin, AllowList{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.role, tt.allow)
			if tt.permit && err != nil {
				t.Fatalf("expected permit, got %v", err)
			}
			if !tt.permit && !errors.Is(err, ErrInsufficientRole) {
				t.Fatalf("expected ErrInsufficientRole, got %v", err)
			}
		})
	}
}

// Admin privilege comes only from explicit enumeration, never from an
// implied hierarchy.
func TestAuthorize_NoImplicitAdminOverride(t *testing.T) {
	userOnly := AllowList{RoleUser}
	if err := Authorize(RoleAdmin, userOnly); !errors.Is(err, ErrInsufficientRole) {
		t.Fatalf("admin must not bypass an allow-list that omits it, got %v", err)
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleModerator, RoleAdmin} {
		if !r.IsValid() {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	for _, r := range []Role{"", "root", "Admin", "ADMIN"} {
		if r.IsValid() {
			t.Fatalf("expected %q to be invalid", r)
		}
	}
}
