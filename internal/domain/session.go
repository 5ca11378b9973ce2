package domain

// Claims is the decoded payload of a session token. Claims are derived from
// the token by the session package, never hand-constructed: they exist only
// while a valid-shaped token is present.
type Claims struct {
	Subject    string
	Role       Role
	BranchCode string
	Position   string
	ExpiresAt  int64 // unix seconds; zero means non-expiring
}

// SessionState is the computed view of the current session. Claims is nil
// whenever the stored token failed to decode; that is a normal state, not an
// error.
type SessionState struct {
	Token   string
	Claims  *Claims
	Expired bool
}

// Authenticated reports whether a token is present, its claims decoded and
// it has not expired.
func (s SessionState) Authenticated() bool {
	return s.Token != "" && s.Claims != nil && !s.Expired
}
