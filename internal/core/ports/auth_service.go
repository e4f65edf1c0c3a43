package ports

import (
	"context"

	"github.com/accessgate/rbac-system/internal/core/domain"
)

// AuthService orchestrates credential verification and token issuance.
type AuthService interface {
	// Login verifies the supplied credentials and mints a signed token.
	// Unknown username and wrong password are indistinguishable to the
	// caller: both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)

	// Register creates a new user with a hashed password.
	Register(ctx context.Context, username, password, email string, role domain.Role) (*domain.User, error)
}
