package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	original := NewUnauthorized("invalid credentials")
	converted := ToDomainError(original)
	assert.Equal(t, "UNAUTHORIZED", converted.Code)
	assert.Equal(t, http.StatusUnauthorized, converted.HTTPStatus)

	// wrapped domain errors are still recognized
	wrapped := fmt.Errorf("login: %w", original)
	assert.Equal(t, "UNAUTHORIZED", ToDomainError(wrapped).Code)

	// anything else becomes an internal error
	generic := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", generic.Code)
	assert.Equal(t, http.StatusInternalServerError, generic.HTTPStatus)
}

func TestNewUpstreamError(t *testing.T) {
	err := NewUpstreamError(http.StatusBadGateway, "upstream exploded")
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UPSTREAM_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusBadGateway, domainErr.HTTPStatus)
	assert.Equal(t, "upstream exploded", domainErr.Message)

	// the status text fills in when the upstream body had no detail
	empty := ToDomainError(NewUpstreamError(http.StatusServiceUnavailable, ""))
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), empty.Message)
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
