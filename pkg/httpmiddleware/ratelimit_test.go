package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRateLimit_UnderLimit(t *testing.T) {
	handler := RateLimit(RateLimitConfig{Max: 5, Window: time.Minute})(okHandler())

	for i := range 5 {
		w := doRequest(handler, "192.168.1.1:12345")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	handler := RateLimit(RateLimitConfig{Max: 2, Window: time.Minute})(okHandler())

	doRequest(handler, "192.168.1.1:12345")
	doRequest(handler, "192.168.1.1:12345")
	w := doRequest(handler, "192.168.1.1:12345")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"code":429,"message":"rate limit exceeded"}`, w.Body.String())
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	handler := RateLimit(RateLimitConfig{Max: 1, Window: time.Minute})(okHandler())

	require.Equal(t, http.StatusOK, doRequest(handler, "192.168.1.1:1").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(handler, "192.168.1.1:2").Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "192.168.1.2:1").Code)
}

func TestRateLimit_WindowRotation(t *testing.T) {
	rl := newRateLimiter(RateLimitConfig{Max: 1, Window: 10 * time.Millisecond})
	now := time.Now()

	_, _, allowed := rl.allow("k", now)
	require.True(t, allowed)
	_, _, allowed = rl.allow("k", now)
	require.False(t, allowed)

	_, _, allowed = rl.allow("k", now.Add(10*time.Millisecond))
	assert.True(t, allowed, "new window admits requests again")
}

func TestRateLimit_Cleanup(t *testing.T) {
	rl := newRateLimiter(RateLimitConfig{Max: 1, Window: time.Minute})
	now := time.Now()
	rl.allow("k", now)

	rl.cleanup(now.Add(2 * time.Minute))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.entries)
}

func TestDefaultKeyFunc(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:9999"
	assert.Equal(t, "10.0.0.1", defaultKeyFunc(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", defaultKeyFunc(req))
}
