package domain

// AllowList is the explicit set of roles permitted to invoke a
// protected operation. It is bound at route registration time and
// never mutated afterwards.
type AllowList []Role

// Contains reports whether role is in the allow-list.
func (a AllowList) Contains(role Role) bool {
	for _, r := range a {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize permits the caller iff its role appears in the allow-list.
// There is no wildcard and no admin override: admin must be listed
// explicitly on every operation that should admit it.
func Authorize(role Role, allow AllowList) error {
	if !allow.Contains(role) {
		return ErrInsufficientRole
	}
	return nil
}
