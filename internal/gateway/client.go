package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/petcarex/console/internal/config"
	"github.com/petcarex/console/internal/session"
	"github.com/petcarex/console/pkg/util"
)

// ErrUnauthorized signals that the upstream rejected the session's
// credentials. By the time a caller sees it, the session token has already
// been cleared; the error is still propagated so the caller can surface a
// contextual message.
var ErrUnauthorized = errors.New("upstream rejected session credentials")

// Client is the single configured HTTP client shared by all feature code to
// reach the PetCareX API. It attaches the calling session's bearer token to
// every request and invalidates the session on any 401 response.
type Client struct {
	rest     *resty.Client
	sessions *session.Manager
	logger   *zap.Logger
}

// New builds the shared client. Base URL and timeout are immutable once set.
func New(cfg config.UpstreamConfig, sessions *session.Manager, logger *zap.Logger) *Client {
	c := &Client{sessions: sessions, logger: logger}

	rest := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout())

	rest.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		sid, ok := session.IDFromContext(req.Context())
		if !ok {
			return nil
		}
		if token, ok := c.sessions.Token(req.Context(), sid); ok {
			req.SetAuthToken(token)
		}
		return nil
	})

	// The 401 side effect runs before the error reaches the caller.
	// Clearing an already-cleared token is a no-op, so concurrent 401s
	// from parallel in-flight requests are safe.
	rest.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() != http.StatusUnauthorized {
			return nil
		}
		if sid, ok := session.IDFromContext(resp.Request.Context()); ok {
			c.sessions.Clear(resp.Request.Context(), sid)
			c.logger.Info("session invalidated by upstream 401",
				zap.String("path", resp.Request.URL))
		}
		return nil
	})

	c.rest = rest
	return c
}

// R starts a request bound to the caller's context.
func (c *Client) R(ctx context.Context) *resty.Request {
	return c.rest.R().SetContext(ctx)
}

// Ping verifies the upstream API is reachable. Any HTTP response counts;
// readiness only cares about connectivity.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.rest.R().SetContext(ctx).Get("/")
	return err
}

// check folds a resty response into the console error taxonomy. Transport
// failures, timeouts and non-401 statuses pass through unmodified; no
// retries are performed here.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return util.NewUpstreamError(resp.StatusCode(), upstreamDetail(resp.Body()))
}

// upstreamDetail extracts the human-readable message from an upstream error
// body. The API has emitted both FastAPI-style {"detail"} and generic
// {"message"}/{"error"} shapes; the reconciliation happens once, here.
func upstreamDetail(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Detail != "":
		return payload.Detail
	case payload.Message != "":
		return payload.Message
	default:
		return payload.Error
	}
}
