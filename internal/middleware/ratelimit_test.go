package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTenantRateLimiter_PerTenantBudget(t *testing.T) {
	limiter := NewTenantRateLimiter(2)
	a, b := uuid.New(), uuid.New()

	assert.True(t, limiter.Allow(a))
	assert.True(t, limiter.Allow(a))
	assert.False(t, limiter.Allow(a), "third request within the burst window is rejected")
	assert.True(t, limiter.Allow(b), "other tenants have their own budget")
}

func TestTenantRateLimiter_Middleware(t *testing.T) {
	limiter := NewTenantRateLimiter(1)
	tenantID := uuid.New()
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(WithTenantID(req.Context(), tenantID))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusNoContent, send().Code)
	rr := send()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
}

func TestTenantRateLimiter_RequiresTenant(t *testing.T) {
	handler := NewTenantRateLimiter(10).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTenantRateLimiter_EvictsIdleTenants(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	limiter := NewTenantRateLimiter(1)
	limiter.now = func() time.Time { return now }

	idle, active := uuid.New(), uuid.New()
	assert.True(t, limiter.Allow(idle))
	assert.False(t, limiter.Allow(idle))
	assert.Equal(t, 1, limiter.size())

	now = now.Add(limiterIdleTTL / 2)
	assert.True(t, limiter.Allow(active))
	assert.Equal(t, 2, limiter.size())

	now = now.Add(limiterIdleTTL / 2)
	assert.True(t, limiter.Allow(active))
	assert.Equal(t, 1, limiter.size(), "idle tenant is evicted")

	assert.True(t, limiter.Allow(idle), "evicted tenant starts with a full bucket")
	assert.False(t, limiter.Allow(idle))
	assert.Equal(t, 2, limiter.size())
}
