package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/petcarex/console/internal/domain"
	"github.com/petcarex/console/internal/events"
	"github.com/petcarex/console/internal/gateway"
	"github.com/petcarex/console/internal/guard"
	"github.com/petcarex/console/internal/session"
)

// LoginResult is what a successful login hands back to the entry page: the
// minted console session and where its role lands.
type LoginResult struct {
	SessionID string
	State     domain.SessionState
	Landing   string
}

// SessionService coordinates login, logout and session lifecycle events.
type SessionService struct {
	sessions   *session.Manager
	auth       *gateway.AuthClient
	dispatcher events.Dispatcher
}

// NewSessionService builds the service.
func NewSessionService(sessions *session.Manager, auth *gateway.AuthClient, dispatcher events.Dispatcher) *SessionService {
	return &SessionService{sessions: sessions, auth: auth, dispatcher: dispatcher}
}

// LoginCustomer authenticates a customer against the upstream API and mints
// a console session holding the issued token.
func (s *SessionService) LoginCustomer(ctx context.Context, username, password string) (*LoginResult, error) {
	grant, err := s.auth.LoginCustomer(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, grant.AccessToken, events.EventSignedIn), nil
}

// LoginStaff authenticates a staff member and mints a console session.
func (s *SessionService) LoginStaff(ctx context.Context, staffID, password string) (*LoginResult, error) {
	grant, err := s.auth.LoginStaff(ctx, staffID, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, grant.AccessToken, events.EventSignedIn), nil
}

// Logout destroys the session. Logging out an absent session is a no-op.
func (s *SessionService) Logout(ctx context.Context, sid string) {
	state := s.sessions.State(ctx, sid)
	s.sessions.Clear(ctx, sid)
	if state.Token != "" {
		s.publish(ctx, events.EventSignedOut, sid, state)
	}
}

// NoteExpired records that a session was turned away because its token had
// expired.
func (s *SessionService) NoteExpired(ctx context.Context, sid string, state domain.SessionState) {
	s.publish(ctx, events.EventSessionExpired, sid, state)
}

// NoteRevoked records that the upstream rejected the session's token. The
// gateway has already cleared it by the time this runs.
func (s *SessionService) NoteRevoked(ctx context.Context, sid string, state domain.SessionState) {
	s.publish(ctx, events.EventSessionRevoked, sid, state)
}

func (s *SessionService) establish(ctx context.Context, token string, eventType events.EventType) *LoginResult {
	sid := session.NewID()
	s.sessions.SetToken(ctx, sid, token)

	state := s.sessions.State(ctx, sid)
	s.publish(ctx, eventType, sid, state)

	return &LoginResult{
		SessionID: sid,
		State:     state,
		Landing:   guard.LandingRoute(state),
	}
}

func (s *SessionService) publish(ctx context.Context, eventType events.EventType, sid string, state domain.SessionState) {
	if s.dispatcher == nil {
		return
	}
	actor := events.Actor{}
	if state.Claims != nil {
		actor = events.Actor{
			Subject:    state.Claims.Subject,
			Role:       state.Claims.Role,
			BranchCode: state.Claims.BranchCode,
		}
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sid,
		Actor:     actor,
		Timestamp: time.Now(),
	})
}
