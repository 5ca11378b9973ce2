package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petcarex/console/internal/api/dto"
	"github.com/petcarex/console/internal/config"
	"github.com/petcarex/console/internal/domain"
	"github.com/petcarex/console/internal/guard"
	"github.com/petcarex/console/internal/service"
)

// AuthHandler serves the entry point: login, logout and session inspection.
type AuthHandler struct {
	sessions *service.SessionService
	cfg      config.SessionConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *service.SessionService, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{sessions: sessions, cfg: cfg}
}

// Entry handles GET /. An authenticated visitor is redirected once to the
// landing route for their role; the redirect is skipped when the landing
// route is the entry point itself.
func (h *AuthHandler) Entry(c *fiber.Ctx) error {
	state := guard.StateFrom(c)
	if state.Authenticated() {
		if landing := guard.LandingRoute(state); landing != guard.RouteEntry {
			return c.Redirect(landing, http.StatusSeeOther)
		}
	}
	return c.JSON(fiber.Map{
		"service": "petcarex-console",
		"login": fiber.Map{
			"customer": "/login/customer",
			"staff":    "/login/staff",
		},
		"session": sessionResponse(state),
	})
}

// LoginCustomer handles POST /login/customer.
func (h *AuthHandler) LoginCustomer(c *fiber.Ctx) error {
	var req dto.CustomerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	result, err := h.sessions.LoginCustomer(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return h.respondLogin(c, result)
}

// LoginStaff handles POST /login/staff.
func (h *AuthHandler) LoginStaff(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StaffID == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "staff_id and password required")
	}

	result, err := h.sessions.LoginStaff(c.UserContext(), req.StaffID, req.Password)
	if err != nil {
		return err
	}
	return h.respondLogin(c, result)
}

// Logout handles POST /logout. Logging out an absent session succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies(h.cfg.CookieName)
	if sid != "" {
		h.sessions.Logout(c.UserContext(), sid)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		MaxAge:   -1,
	})
	return c.JSON(fiber.Map{"notice": "signed out", "redirect": guard.RouteEntry})
}

// Session handles GET /session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(sessionResponse(guard.StateFrom(c)))
}

func (h *AuthHandler) respondLogin(c *fiber.Ctx, result *service.LoginResult) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    result.SessionID,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  time.Now().Add(h.cfg.TTL()),
	})
	return c.JSON(dto.LoginResponse{
		Session: sessionResponse(result.State),
		Landing: result.Landing,
	})
}

func sessionResponse(state domain.SessionState) dto.SessionResponse {
	resp := dto.SessionResponse{
		Authenticated: state.Authenticated(),
		Landing:       guard.LandingRoute(state),
	}
	if state.Claims != nil && state.Authenticated() {
		resp.Subject = state.Claims.Subject
		resp.Role = string(state.Claims.Role)
		resp.BranchCode = state.Claims.BranchCode
		resp.Position = state.Claims.Position
		resp.ExpiresAt = state.Claims.ExpiresAt
	}
	return resp
}
