package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/petcarex/console/pkg/util"
)

// TokenGrant is the upstream's response to a successful login.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthClient calls the upstream authentication endpoints. Credentials travel
// as query parameters, which is the contract the API exposes.
type AuthClient struct {
	c *Client
}

// NewAuthClient builds the client.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// LoginCustomer exchanges customer credentials for a session token.
func (a *AuthClient) LoginCustomer(ctx context.Context, username, password string) (*TokenGrant, error) {
	var grant TokenGrant
	resp, err := a.c.R(ctx).
		SetQueryParam("username", username).
		SetQueryParam("password", password).
		SetResult(&grant).
		Post("/auth/login")
	return a.checkedGrant(&grant, resp, err)
}

// LoginStaff exchanges a staff id and password for a session token.
func (a *AuthClient) LoginStaff(ctx context.Context, staffID, password string) (*TokenGrant, error) {
	var grant TokenGrant
	resp, err := a.c.R(ctx).
		SetQueryParam("ma_nv", staffID).
		SetQueryParam("password", password).
		SetResult(&grant).
		Post("/auth/staff-login")
	return a.checkedGrant(&grant, resp, err)
}

func (a *AuthClient) checkedGrant(grant *TokenGrant, resp *resty.Response, err error) (*TokenGrant, error) {
	if cerr := a.c.check(resp, err); cerr != nil {
		// A 401 on a login call means bad credentials, not a revoked
		// session.
		if errors.Is(cerr, ErrUnauthorized) {
			return nil, util.NewUnauthorized("invalid credentials")
		}
		return nil, cerr
	}
	if grant.AccessToken == "" {
		return nil, util.NewUpstreamError(http.StatusBadGateway, "no token returned")
	}
	return grant, nil
}
