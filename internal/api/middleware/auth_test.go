package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "missing header", headers: map[string]string{}, wantStatus: http.StatusUnauthorized},
		{name: "not a number", headers: map[string]string{HeaderUserID: "abc"}, wantStatus: http.StatusUnauthorized},
		{name: "negative", headers: map[string]string{HeaderUserID: "-1"}, wantStatus: http.StatusUnauthorized},
		{name: "valid", headers: map[string]string{HeaderUserID: "42", HeaderUserName: "Jonas"}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenID int64
			var seenName string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, ok := GetUser(r.Context())
				require.True(t, ok)
				seenID = user.ID
				seenName = user.Name
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, int64(42), seenID)
				assert.Equal(t, "Jonas", seenName)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter(1, 2)

	assert.True(t, l.Allow(1))
	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1), "burst exhausted")
	assert.True(t, l.Allow(2), "limits are per user")

	handler := Auth(l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderUserID, "1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_EvictsIdleUsers(t *testing.T) {
	l := NewRateLimiter(60, 1)
	clock := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	assert.True(t, l.Allow(1))
	assert.True(t, l.Allow(2))
	assert.False(t, l.Allow(1))
	assert.Len(t, l.visitors, 2)

	clock = clock.Add(5 * time.Minute)
	assert.True(t, l.Allow(2))
	assert.Len(t, l.visitors, 2, "nothing is idle yet")

	clock = clock.Add(6 * time.Minute)
	assert.True(t, l.Allow(3))
	assert.Len(t, l.visitors, 2)
	assert.NotContains(t, l.visitors, int64(1))
	assert.Contains(t, l.visitors, int64(2))
	assert.Contains(t, l.visitors, int64(3))
}
