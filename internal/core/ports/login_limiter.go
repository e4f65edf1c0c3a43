package ports

import "context"

// LoginLimiter throttles repeated failed logins per username.
// Implementations must be safe for concurrent use.
type LoginLimiter interface {
	// Allow reports whether a login attempt for username may proceed.
	Allow(ctx context.Context, username string) (bool, error)

	// RecordFailure counts one failed attempt against username.
	RecordFailure(ctx context.Context, username string) error

	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, username string) error
}
