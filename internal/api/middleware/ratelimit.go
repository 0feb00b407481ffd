package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-CabinReservationService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// minLimiterIdle минимальное время простоя, после которого лимитер пользователя удаляется
const minLimiterIdle = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов каждого пользователя
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[int64]*visitor
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter создает лимитер на requestsPerMinute запросов с запасом burst
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	interval := time.Minute / time.Duration(requestsPerMinute)

	// простаивающий лимитер удаляется не раньше, чем восполнится весь burst
	idle := interval * time.Duration(burst)
	if idle < minLimiterIdle {
		idle = minLimiterIdle
	}

	return &RateLimiter{
		visitors: make(map[int64]*visitor),
		limit:    rate.Every(interval),
		burst:    burst,
		idle:     idle,
		now:      time.Now,
	}
}

// Allow проверяет, можно ли выполнить запрос пользователя сейчас
func (l *RateLimiter) Allow(userID int64) bool {
	l.mu.Lock()
	now := l.now()
	l.sweep(now)

	v, ok := l.visitors[userID]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[userID] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// sweep удаляет лимитеры простаивающих пользователей не чаще раза в idle
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for id, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idle {
			delete(l.visitors, id)
		}
	}
}

// Middleware отклоняет запросы сверх лимита с 429; ставится после Auth
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		if ok && !l.Allow(userID) {
			w.Header().Set("Retry-After", "60")
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
