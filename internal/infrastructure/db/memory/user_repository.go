// Package memory provides an in-process user repository. It backs the
// demo directory in development and the end-to-end tests; production
// deployments use the MongoDB repository instead.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/accessgate/rbac-system/internal/core/domain"
)

// UserRepository implements ports.UserRepository on a map. The
// directory is read-mostly: writes happen only during seeding.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by username
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	clone := *user
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	r.users[user.Username] = &clone

	out := clone
	return &out, nil
}
