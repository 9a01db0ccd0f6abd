package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tzdate/config"
	"tzdate/infras/otel/mocks"
	"tzdate/shared/cache"
	cacheMocks "tzdate/shared/cache/mocks"
	"tzdate/transport/http/middleware"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	var seen string
	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", given)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, given, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid\r\n")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid\r\n", seen)
}

func TestTracingKeepsStatus(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	handler := mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/time/local-timezone", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://app.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	handler := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil).CORS()(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisabled(t *testing.T) {
	handler := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil).CORS()(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name       string
		setupMock  func(c *cacheMocks.MockRedisCache)
		wantStatus int
		remaining  string
	}{
		{
			name: "first request in window",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "limiter:10.0.0.1:curl", gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), "limiter:10.0.0.1:curl", 1, 60).Return(nil)
			},
			wantStatus: http.StatusOK,
			remaining:  "1",
		},
		{
			name: "limit exceeded",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ string, value any) error {
						*(value.(*int)) = 2

						return nil
					})
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "cache unavailable fails open",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("dial tcp: connection refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			handler := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache).RateLimit()(ok)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("User-Agent", "curl")
			req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}
