package ports

import "github.com/accessgate/rbac-system/internal/core/domain"

// TokenService encodes identity claims into signed, expiring tokens
// and validates them back. Decode failures are terminal for the
// request; there are no retry semantics.
type TokenService interface {
	// Encode mints a token carrying the user's identity and role.
	Encode(user *domain.User) (string, error)

	// Decode verifies the signature and expiry of a token and returns
	// the embedded claims. Failure modes: domain.ErrInvalidSignature,
	// domain.ErrTokenExpired, domain.ErrTokenMalformed.
	Decode(token string) (*domain.Claims, error)
}
