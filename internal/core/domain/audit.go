package domain

import "time"

// AuthAction identifies the kind of authentication activity recorded
// in the audit trail.
type AuthAction string

const (
	ActionLogin    AuthAction = "login"
	ActionRegister AuthAction = "register"
)

// AuthEvent is a single audit record describing an authentication
// attempt and its outcome.
type AuthEvent struct {
	Username  string
	Action    AuthAction
	Success   bool
	Reason    string // populated on failure, e.g. "invalid_credentials"
	Timestamp time.Time
}
