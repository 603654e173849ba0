package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowConsumesBurst(t *testing.T) {
	limiter := NewClientLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2})

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// A different client has its own bucket.
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestSetClientLimitOverridesDefaults(t *testing.T) {
	limiter := NewClientLimiterWithDefaults()
	limiter.SetClientLimit("10.0.0.9", 1, 1)

	assert.True(t, limiter.Allow("10.0.0.9"))
	assert.False(t, limiter.Allow("10.0.0.9"))
}

func TestGetLimiterReturnsSameBucket(t *testing.T) {
	limiter := NewClientLimiterWithDefaults()
	assert.Same(t, limiter.GetLimiter("a"), limiter.GetLimiter("a"))
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	limiter := NewClientLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})
	e := echo.New()

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	wrapped := Middleware(limiter)(next)

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/search/validate", nil)
		req.RemoteAddr = "192.0.2.1:4242"
		rec := httptest.NewRecorder()
		require.NoError(t, wrapped(e.NewContext(req, rec)))
		return rec
	}

	assert.Equal(t, http.StatusOK, call().Code)
	assert.Equal(t, http.StatusTooManyRequests, call().Code)
}
