package domain

import (
	"errors"
	"time"
)

// Role is one of a closed set of privilege labels. There is no implicit
// hierarchy between roles: every access decision is made against an
// explicit allow-list, never a numeric comparison.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	ErrTokenMalformed   = errors.New("token malformed")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrMissingToken     = errors.New("no token provided")

	ErrInsufficientRole = errors.New("insufficient role")
	ErrTooManyAttempts  = errors.New("too many login attempts")
)

// User models an authenticated actor. The user directory is loaded
// before serving begins and is read-only for the process lifetime.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
