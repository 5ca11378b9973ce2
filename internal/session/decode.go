package session

import (
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/petcarex/console/internal/domain"
)

// Decode extracts the claims embedded in a session token without verifying
// its signature. The console only uses claims as routing and display hints
// already certified by the API that issued the token; every protected action
// is re-authorized upstream regardless of what is decoded here.
//
// Returns ok=false for anything that is not three dot-delimited segments
// whose middle segment is base64url-encoded JSON. Failures are swallowed,
// never raised: an undecodable token means "no session".
func Decode(token string) (*domain.Claims, bool) {
	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, raw); err != nil {
		return nil, false
	}

	claims := &domain.Claims{
		Subject:    stringClaim(raw, "sub"),
		Role:       domain.Role(stringClaim(raw, "role")),
		BranchCode: firstStringClaim(raw, "branch_code", "maCN"),
		Position:   firstStringClaim(raw, "position", "chucvu"),
	}

	// exp is optional; a malformed exp is treated as non-expiring rather
	// than rejecting otherwise-usable claims.
	if exp, err := raw.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Unix()
	}

	return claims, true
}

func stringClaim(raw jwt.MapClaims, key string) string {
	if val, ok := raw[key].(string); ok {
		return val
	}
	return ""
}

// firstStringClaim reconciles the modern and legacy claim names the upstream
// has issued over time. The fallback happens exactly once, here at the
// decode boundary.
func firstStringClaim(raw jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if val := stringClaim(raw, key); val != "" {
			return val
		}
	}
	return ""
}
