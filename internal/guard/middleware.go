package guard

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/petcarex/console/internal/config"
	"github.com/petcarex/console/internal/domain"
	"github.com/petcarex/console/internal/session"
)

const (
	sessionIDKey    = "session_id"
	sessionStateKey = "session_state"
)

// Notifier receives session lifecycle observations made while guarding
// routes. Implemented by the session service.
type Notifier interface {
	NoteExpired(ctx context.Context, sid string, state domain.SessionState)
}

// SessionMiddleware resolves the console session cookie into a SessionState
// snapshot and threads the session id through the request context so the
// gateway client can attach the bearer token.
func SessionMiddleware(cfg config.SessionConfig, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cfg.CookieName)
		if sid == "" {
			c.Locals(sessionStateKey, domain.SessionState{})
			return c.Next()
		}

		ctx := session.WithID(c.UserContext(), sid)
		c.SetUserContext(ctx)
		c.Locals(sessionIDKey, sid)
		c.Locals(sessionStateKey, sessions.State(ctx, sid))
		return c.Next()
	}
}

// RequireRoles guards a route group with a role allow-list. Both deny cases
// return the browser to the entry point; only the notice differs.
func RequireRoles(notifier Notifier, allowed ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := StateFrom(c)
		switch Evaluate(state, allowed...) {
		case Allow:
			return c.Next()
		case DenyForbidden:
			return Deny(c, http.StatusForbidden, "insufficient privilege")
		default:
			if notifier != nil && state.Token != "" && state.Expired {
				notifier.NoteExpired(c.UserContext(), IDFrom(c), state)
			}
			return Deny(c, http.StatusUnauthorized, "please sign in")
		}
	}
}

// Deny sends the notice plus the entry-point redirect. The redirect is
// omitted when the browser is already at the entry point so it never
// navigates to itself.
func Deny(c *fiber.Ctx, status int, notice string) error {
	body := fiber.Map{"notice": notice}
	if c.Path() != RouteEntry {
		body["redirect"] = RouteEntry
	}
	return c.Status(status).JSON(body)
}

// IDFrom returns the console session id resolved for this request.
func IDFrom(c *fiber.Ctx) string {
	if sid, ok := c.Locals(sessionIDKey).(string); ok {
		return sid
	}
	return ""
}

// StateFrom returns the state snapshot resolved for this request.
func StateFrom(c *fiber.Ctx) domain.SessionState {
	if state, ok := c.Locals(sessionStateKey).(domain.SessionState); ok {
		return state
	}
	return domain.SessionState{}
}
