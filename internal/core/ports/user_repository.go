package ports

import (
	"context"

	"github.com/accessgate/rbac-system/internal/core/domain"
)

// UserRepository defines the interface for user directory persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
