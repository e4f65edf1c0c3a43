// Package bootstrap loads the immutable user directory before the
// server starts accepting requests.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accessgate/rbac-system/internal/core/domain"
	"github.com/accessgate/rbac-system/internal/core/ports"
)

// SeedUser describes one entry of the startup user directory.
type SeedUser struct {
	Username string
	Password string
	Email    string
	Role     domain.Role
}

// DemoUsers is the demo directory: one account per role. Intended for
// development only; gate it behind configuration.
func DemoUsers() []SeedUser {
	return []SeedUser{
		{Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		{Username: "mod", Password: "mod123", Role: domain.RoleModerator},
		{Username: "user", Password: "user123", Role: domain.RoleUser},
	}
}

// EnsureUsers creates any missing directory entries. Existing users are
// left untouched: the directory is immutable once serving begins.
func EnsureUsers(ctx context.Context, repo ports.UserRepository, users []SeedUser, log zerolog.Logger) error {
	for _, su := range users {
		_, err := repo.FindByUsername(ctx, su.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("seed lookup %q: %w", su.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed hash %q: %w", su.Username, err)
		}

		now := time.Now().UTC()
		_, err = repo.Create(ctx, &domain.User{
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: string(hash),
			Role:         su.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("seed create %q: %w", su.Username, err)
		}

		log.Info().Str("username", su.Username).Str("role", string(su.Role)).Msg("seeded user")
	}
	return nil
}
