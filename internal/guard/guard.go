package guard

import (
	"github.com/petcarex/console/internal/domain"
)

// Decision is the outcome of evaluating a page's role allow-list against the
// current session state.
type Decision int

const (
	// Allow means the session is authenticated and its role is allowed.
	Allow Decision = iota
	// DenyUnauthenticated covers no token, undecodable claims, and expiry.
	DenyUnauthenticated
	// DenyForbidden means authenticated but the role is not in the
	// allow-list.
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny_unauthenticated"
	case DenyForbidden:
		return "deny_forbidden"
	}
	return "unknown"
}

// Evaluate decides whether a page may render for the given session state.
// It is pure: repeated calls with unchanged state yield the same decision,
// and exactly one decision is returned for every role and allow-list. Side
// effects (notices, navigation) belong to the caller.
func Evaluate(state domain.SessionState, allowed ...domain.Role) Decision {
	if !state.Authenticated() {
		return DenyUnauthenticated
	}
	for _, role := range allowed {
		if state.Claims.Role == role {
			return Allow
		}
	}
	return DenyForbidden
}
