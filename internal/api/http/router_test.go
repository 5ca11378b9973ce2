package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/petcarex/console/internal/api/dto"
	"github.com/petcarex/console/internal/api/http/handlers"
	"github.com/petcarex/console/internal/config"
	"github.com/petcarex/console/internal/events"
	"github.com/petcarex/console/internal/gateway"
	"github.com/petcarex/console/internal/observability"
	"github.com/petcarex/console/internal/service"
	"github.com/petcarex/console/internal/session"
)

const testCookieName = "petcarex_sid"

// consoleFixture is a full console wired against a scripted upstream.
type consoleFixture struct {
	app      *fiber.App
	sessions *session.Manager
}

// upstreamScript controls what the fake PetCareX API issues and returns.
type upstreamScript struct {
	// loginClaims are minted into the token for any successful login.
	loginClaims jwt.MapClaims
	// rejectBearer makes every non-auth endpoint answer 401.
	rejectBearer bool
}

func newConsole(t *testing.T, script upstreamScript) *consoleFixture {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login", "/auth/staff-login":
			if r.URL.Query().Get("password") != "s3cret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"bad credentials"}`))
				return
			}
			token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, script.loginClaims).
				SignedString([]byte("test-secret"))
			_ = json.NewEncoder(w).Encode(gateway.TokenGrant{AccessToken: token, TokenType: "bearer"})
		default:
			if script.rejectBearer {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"token revoked"}`))
				return
			}
			if r.URL.Path == "/company/revenue/total" {
				_, _ = w.Write([]byte(`{"TongDoanhThu": 1000000}`))
				return
			}
			_, _ = w.Write([]byte(`{"items": []}`))
		}
	}))
	t.Cleanup(upstream.Close)

	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	sessionCfg := config.SessionConfig{CookieName: testCookieName, TTLMinutes: 60}

	sessions := session.NewManager(session.NewMemoryStore(), logger)
	client := gateway.New(config.UpstreamConfig{BaseURL: upstream.URL, TimeoutSeconds: 5}, sessions, logger)

	dispatcher := events.NewInMemoryDispatcher()
	authClient := gateway.NewAuthClient(client)
	companyClient := gateway.NewCompanyClient(client)
	staffClient := gateway.NewStaffClient(client)
	customerClient := gateway.NewCustomerClient(client)

	sessionService := service.NewSessionService(sessions, authClient, dispatcher)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 5*time.Second, sessionService)
	RegisterRoutes(app, RouteConfig{
		Health:     handlers.NewHealthHandler("petcarex-console", "test", nil, client),
		Auth:       handlers.NewAuthHandler(sessionService, sessionCfg),
		Dashboard:  handlers.NewDashboardHandler(service.NewDashboardService(companyClient), companyClient),
		Branch:     handlers.NewBranchHandler(gateway.NewBranchClient(client)),
		Staff:      handlers.NewStaffHandler(service.NewStaffService(staffClient), staffClient),
		Portal:     handlers.NewPortalHandler(service.NewPortalService(customerClient), customerClient),
		SessionCfg: sessionCfg,
		Manager:    sessions,
		Sessions:   sessionService,
	})

	return &consoleFixture{app: app, sessions: sessions}
}

func (f *consoleFixture) request(t *testing.T, method, target, cookie string, body any) *http.Response {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	resp, err := f.app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func (f *consoleFixture) login(t *testing.T, path string, body any) (string, dto.LoginResponse) {
	t.Helper()
	resp := f.request(t, http.MethodPost, path, "", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login dto.LoginResponse
	decodeBody(t, resp, &login)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == testCookieName {
			require.True(t, cookie.HttpOnly)
			return cookie.Value, login
		}
	}
	t.Fatal("login response did not set the session cookie")
	return "", login
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func managerClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  "NV001",
		"role": "branch_manager",
		"maCN": "CN01",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func customerClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  "KH001",
		"role": "customer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func TestEntry_Unauthenticated(t *testing.T) {
	f := newConsole(t, upstreamScript{})

	resp := f.request(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Session dto.SessionResponse `json:"session"`
	}
	decodeBody(t, resp, &body)
	assert.False(t, body.Session.Authenticated)
	assert.Equal(t, "/", body.Session.Landing)
}

func TestLoginStaff_RedirectsEntryToLanding(t *testing.T) {
	f := newConsole(t, upstreamScript{loginClaims: managerClaims()})

	cookie, login := f.login(t, "/login/staff", dto.StaffLoginRequest{StaffID: "NV001", Password: "s3cret"})
	assert.Equal(t, "/dashboard", login.Landing)
	assert.Equal(t, "branch_manager", login.Session.Role)

	resp := f.request(t, http.MethodGet, "/", cookie, nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestGuardedRoute_WithoutSession(t *testing.T) {
	f := newConsole(t, upstreamScript{})

	resp := f.request(t, http.MethodGet, "/dashboard", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "please sign in", body["notice"])
	assert.Equal(t, "/", body["redirect"])
}

func TestGuardedRoute_ForbiddenRole(t *testing.T) {
	f := newConsole(t, upstreamScript{loginClaims: customerClaims()})

	cookie, login := f.login(t, "/login/customer",
		dto.CustomerLoginRequest{Username: "an@example.com", Password: "s3cret"})
	assert.Equal(t, "/portal", login.Landing)

	resp := f.request(t, http.MethodGet, "/dashboard", cookie, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "insufficient privilege", body["notice"])
	assert.Equal(t, "/", body["redirect"])
}

func TestGuardedRoute_AllowedRole(t *testing.T) {
	f := newConsole(t, upstreamScript{loginClaims: managerClaims()})

	cookie, _ := f.login(t, "/login/staff", dto.StaffLoginRequest{StaffID: "NV001", Password: "s3cret"})

	resp := f.request(t, http.MethodGet, "/dashboard/revenue/total", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data gateway.TotalRevenue `json:"data"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 1000000.0, body.Data.Total)
}

func TestBranchViews_RequireBranchManager(t *testing.T) {
	f := newConsole(t, upstreamScript{loginClaims: managerClaims()})

	cookie, _ := f.login(t, "/login/staff", dto.StaffLoginRequest{StaffID: "NV001", Password: "s3cret"})

	resp := f.request(t, http.MethodGet, "/dashboard/branch/inventory/products", cookie, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/dashboard/branch/revenue?granularity=week", cookie, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// generic staff may open the dashboard but not the branch views
	staff := newConsole(t, upstreamScript{loginClaims: jwt.MapClaims{
		"sub":  "NV002",
		"role": "staff",
		"maCN": "CN01",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}})
	staffCookie, _ := staff.login(t, "/login/staff", dto.StaffLoginRequest{StaffID: "NV002", Password: "s3cret"})

	resp = staff.request(t, http.MethodGet, "/dashboard/branch/revenue", staffCookie, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "insufficient privilege", body["notice"])
}

func TestLogin_BadCredentials(t *testing.T) {
	f := newConsole(t, upstreamScript{loginClaims: customerClaims()})

	resp := f.request(t, http.MethodPost, "/login/customer",
		"", dto.CustomerLoginRequest{Username: "an@example.com", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", errBody["code"])
}

func TestExpiredSession_TurnedAwayAtTheGuard(t *testing.T) {
	expired := jwt.MapClaims{
		"sub":  "KH001",
		"role": "customer",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	f := newConsole(t, upstreamScript{loginClaims: expired})

	cookie, login := f.login(t, "/login/customer",
		dto.CustomerLoginRequest{Username: "an@example.com", Password: "s3cret"})
	assert.False(t, login.Session.Authenticated)
	assert.Equal(t, "/", login.Landing)

	resp := f.request(t, http.MethodGet, "/portal", cookie, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "please sign in", body["notice"])
}

func TestUpstreamRevocation_InvalidatesSession(t *testing.T) {
	f := newConsole(t, upstreamScript{loginClaims: managerClaims(), rejectBearer: true})

	cookie, _ := f.login(t, "/login/staff", dto.StaffLoginRequest{StaffID: "NV001", Password: "s3cret"})

	// the guard admits the session, the upstream rejects its token
	resp := f.request(t, http.MethodGet, "/dashboard/revenue/total", cookie, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "please sign in", body["notice"])
	assert.Equal(t, "/", body["redirect"])

	// the token is gone; the next request fails at the guard instead
	var sessionView dto.SessionResponse
	sessionResp := f.request(t, http.MethodGet, "/session", cookie, nil)
	require.Equal(t, http.StatusOK, sessionResp.StatusCode)
	decodeBody(t, sessionResp, &sessionView)
	assert.False(t, sessionView.Authenticated)
}

func TestLogout(t *testing.T) {
	f := newConsole(t, upstreamScript{loginClaims: customerClaims()})

	cookie, _ := f.login(t, "/login/customer",
		dto.CustomerLoginRequest{Username: "an@example.com", Password: "s3cret"})

	resp := f.request(t, http.MethodPost, "/logout", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == testCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout should expire the session cookie")

	entry := f.request(t, http.MethodGet, "/", cookie, nil)
	assert.Equal(t, http.StatusOK, entry.StatusCode)
}

func TestPortal_CustomerFlow(t *testing.T) {
	f := newConsole(t, upstreamScript{loginClaims: customerClaims()})

	cookie, _ := f.login(t, "/login/customer",
		dto.CustomerLoginRequest{Username: "an@example.com", Password: "s3cret"})

	resp := f.request(t, http.MethodGet, "/portal/pets", cookie, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.request(t, http.MethodGet, "/portal", cookie, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthLive(t *testing.T) {
	f := newConsole(t, upstreamScript{})

	resp := f.request(t, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
