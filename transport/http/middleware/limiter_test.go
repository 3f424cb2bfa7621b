package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"eljardin/config"
	"eljardin/infras/otel/mocks"
	"eljardin/shared/cache"
	cacheMocks "eljardin/shared/cache/mocks"
	"eljardin/transport/http/middleware"
)

func newRateLimiter(t *testing.T, enable bool, maxRequests, windowSecs int) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = windowSecs

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache), redisCache
}

func serveThrough(limiter middleware.AppMiddleware, r *http.Request) (*httptest.ResponseRecorder, bool) {
	called := false

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	limiter.RateLimit(next).ServeHTTP(rec, r)

	return rec, called
}

func TestRateLimit_Disabled(t *testing.T) {
	limiter, _ := newRateLimiter(t, false, 10, 60)

	rec, called := serveThrough(limiter, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_FirstRequest(t *testing.T) {
	limiter, redisCache := newRateLimiter(t, true, 10, 60)

	redisCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	redisCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), 1, 60).
		Return(nil)

	rec, called := serveThrough(limiter, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.True(t, called)
	assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", rec.Header().Get("X-RateLimit-Window"))
}

func TestRateLimit_OverLimit(t *testing.T) {
	limiter, redisCache := newRateLimiter(t, true, 3, 60)

	redisCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ string, value any) error {
			*value.(*int) = 3

			return nil
		})

	rec, called := serveThrough(limiter, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_CacheErrorFailsOpen(t *testing.T) {
	limiter, redisCache := newRateLimiter(t, true, 3, 60)

	redisCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis unavailable"))

	rec, called := serveThrough(limiter, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_KeyedByForwardedClient(t *testing.T) {
	limiter, redisCache := newRateLimiter(t, true, 10, 60)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "curl")

	redisCache.EXPECT().
		Get(gomock.Any(), "limiter:203.0.113.7:curl", gomock.Any()).
		Return(cache.Nil)
	redisCache.EXPECT().
		Save(gomock.Any(), "limiter:203.0.113.7:curl", 1, 60).
		Return(nil)

	_, called := serveThrough(limiter, req)

	assert.True(t, called)
}
