package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	logger := setupTestLogger()
	rl := NewRateLimiter(2, time.Minute, logger)
	defer rl.Stop()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	// Третий запрос в окне не проходит
	assert.False(t, rl.Allow("10.0.0.1"))

	// Другой ключ — свой bucket
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_Refill(t *testing.T) {
	logger := setupTestLogger()
	rl := NewRateLimiter(1, 20*time.Millisecond, logger)
	defer rl.Stop()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	time.Sleep(30 * time.Millisecond)

	// После окна токены пополнились
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	logger := setupTestLogger()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := RateLimitMiddleware(2, time.Minute, logger)(handler)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:4242"
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:4242"
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.10:5555"
	assert.Equal(t, "192.168.1.10:5555", getClientIP(req))

	req.Header.Set("X-Real-IP", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "198.51.100.1, 203.0.113.7")
	assert.Equal(t, "198.51.100.1", getClientIP(req))
}
