package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petcarex/console/internal/domain"
)

// Manager owns the lifecycle of session tokens over an injected Store and
// derives SessionState from them. Store failures degrade to "no session":
// none of the methods ever surface an error to feature code.
type Manager struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewManager builds a manager over the given store.
func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{store: store, logger: logger, now: time.Now}
}

// WithClock overrides the wall clock. Test hook.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// NewID mints a fresh console session id.
func NewID() string {
	return uuid.NewString()
}

// SetToken overwrites any existing token for the session. The token shape is
// not validated at write time; a malformed token simply fails to decode
// later.
func (m *Manager) SetToken(ctx context.Context, sid, token string) {
	if sid == "" {
		return
	}
	if err := m.store.SetToken(ctx, sid, token); err != nil {
		m.logger.Warn("session store write failed", zap.Error(err))
	}
}

// Token returns the stored token and whether one is present.
func (m *Manager) Token(ctx context.Context, sid string) (string, bool) {
	if sid == "" {
		return "", false
	}
	token, err := m.store.GetToken(ctx, sid)
	if err != nil {
		m.logger.Warn("session store read failed", zap.Error(err))
		return "", false
	}
	return token, token != ""
}

// Clear removes the stored token. Clearing an already-cleared session is a
// safe no-op.
func (m *Manager) Clear(ctx context.Context, sid string) {
	if sid == "" {
		return
	}
	if err := m.store.ClearToken(ctx, sid); err != nil {
		m.logger.Warn("session store clear failed", zap.Error(err))
	}
}

// State reads the stored token, decodes it, and computes expiry against the
// current wall clock. An exp equal to the current second already counts as
// expired; a missing exp never expires.
func (m *Manager) State(ctx context.Context, sid string) domain.SessionState {
	token, ok := m.Token(ctx, sid)
	if !ok {
		return domain.SessionState{}
	}

	state := domain.SessionState{Token: token}
	claims, ok := Decode(token)
	if !ok {
		return state
	}

	state.Claims = claims
	state.Expired = claims.ExpiresAt != 0 && claims.ExpiresAt <= m.now().Unix()
	return state
}

// IsAuthenticated reports whether the session holds a decodable, unexpired
// token.
func (m *Manager) IsAuthenticated(ctx context.Context, sid string) bool {
	return m.State(ctx, sid).Authenticated()
}
