package bootstrap

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accessgate/rbac-system/internal/core/domain"
	"github.com/accessgate/rbac-system/internal/infrastructure/db/memory"
)

func TestEnsureUsers_CreatesMissing(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	if err := EnsureUsers(ctx, repo, DemoUsers(), zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	admin, err := repo.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")); err != nil {
		t.Fatalf("seeded hash does not match password: %v", err)
	}
}

func TestEnsureUsers_Idempotent(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	if err := EnsureUsers(ctx, repo, DemoUsers(), zerolog.Nop()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	before, _ := repo.FindByUsername(ctx, "mod")

	if err := EnsureUsers(ctx, repo, DemoUsers(), zerolog.Nop()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	after, _ := repo.FindByUsername(ctx, "mod")

	if before.ID != after.ID || before.PasswordHash != after.PasswordHash {
		t.Fatalf("reseeding mutated an existing user")
	}
}
