package domain

import "time"

// Claims is the identity payload carried inside a token. A Claims value
// is only trustworthy when it was produced by a successful token decode
// in the current request; identity data from any other source (request
// body, query params) is never authoritative.
type Claims struct {
	UserID    string
	Username  string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
