package middleware

import (
	"net/http"
	"sync"
	"time"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/webutil"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// limiterIdleTTL を超えて使われていないテナントのリミッタは破棄します。
// バケットは 1 分で満タンに戻るので、破棄しても制限の結果は変わりません。
const limiterIdleTTL = 10 * time.Minute

type tenantLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TenantRateLimiter はテナントごとに rate.Limiter を保持します。
type TenantRateLimiter struct {
	mu        sync.Mutex
	limiters  map[uuid.UUID]*tenantLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewTenantRateLimiter は 1 分あたり perMinute 回まで許可するリミッタを作ります。
func NewTenantRateLimiter(perMinute int) *TenantRateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &TenantRateLimiter{
		limiters: make(map[uuid.UUID]*tenantLimiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		now:      time.Now,
	}
}

func (l *TenantRateLimiter) limiter(tenantID uuid.UUID, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= limiterIdleTTL {
		l.sweep(now)
	}

	entry, ok := l.limiters[tenantID]
	if !ok {
		entry = &tenantLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[tenantID] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep は idle なリミッタを削除します。mu を保持した状態で呼びます。
func (l *TenantRateLimiter) sweep(now time.Time) {
	for id, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= limiterIdleTTL {
			delete(l.limiters, id)
		}
	}
	l.lastSweep = now
}

// Allow は tenantID のリクエストを 1 件消費できるかを返します。
func (l *TenantRateLimiter) Allow(tenantID uuid.UUID) bool {
	now := l.now()
	return l.limiter(tenantID, now).AllowN(now, 1)
}

// size は保持しているリミッタの数を返します。
func (l *TenantRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware は認証済みテナントごとにリクエスト数を制限します。
// 認証ミドルウェアの後ろで使います。
func (l *TenantRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())
		tenantID, err := GetTenantIDFromContext(r.Context())
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		if !l.Allow(tenantID) {
			logger.Warn("rate limit exceeded", "tenant_id", tenantID)
			w.Header().Set("Retry-After", "60")
			webutil.HandleError(w, logger, model.NewAppError("RATE_LIMITED", "リクエストが多すぎます。しばらくしてから再試行してください。", "", model.ErrRateLimited))
			return
		}
		next.ServeHTTP(w, r)
	})
}
