package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/accessgate/rbac-system/internal/core/domain"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Username: "alice", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated ID")
	}

	found, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != created.ID || found.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", found)
	}

	// Returned values are copies; mutating them must not leak back.
	found.Role = domain.RoleAdmin
	again, _ := repo.FindByUsername(ctx, "alice")
	if again.Role != domain.RoleUser {
		t.Fatalf("repository state mutated through a returned copy")
	}
}

func TestUserRepository_Duplicate(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Username: "bob"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.User{Username: "bob"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository()
	if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
