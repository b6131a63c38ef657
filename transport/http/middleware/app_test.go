package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomio/config"
	otelMocks "roomio/infras/otel/mocks"
	"roomio/shared/cache"
	cacheMocks "roomio/shared/cache/mocks"
	"roomio/shared/constant"
	"roomio/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestID(t *testing.T) {
	m := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	t.Run("generates an id when missing", func(t *testing.T) {
		var seen string

		handler := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

		recorder := httptest.NewRecorder()
		m.RequestID(http.HandlerFunc(okHandler)).ServeHTTP(recorder, req)

		assert.Equal(t, "abc-123", recorder.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestTracingAndLogger(t *testing.T) {
	m := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	handler := m.Logger(m.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

func TestCORS(t *testing.T) {
	t.Run("disabled passes through", func(t *testing.T) {
		m := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("Origin", "http://example.com")

		recorder := httptest.NewRecorder()
		m.CORS()(http.HandlerFunc(okHandler)).ServeHTTP(recorder, req)

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("enabled sets allow origin", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.CORS.Enable = true
		cfg.App.CORS.AllowedOrigins = []string{"*"}
		cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

		m := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("Origin", "http://example.com")

		recorder := httptest.NewRecorder()
		m.CORS()(http.HandlerFunc(okHandler)).ServeHTTP(recorder, req)

		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	newConfig := func(enable bool) *config.Config {
		cfg := &config.Config{}
		cfg.App.RateLimiter.Enable = enable
		cfg.App.RateLimiter.MaxRequests = 2
		cfg.App.RateLimiter.WindowSeconds = 60

		return cfg
	}

	const key = "limiter:192.0.2.1:unknown"

	tests := []struct {
		name       string
		enable     bool
		setup      func(c *cacheMocks.MockRedisCache)
		wantStatus int
		wantLeft   string
	}{
		{
			name:       "disabled",
			setup:      func(_ *cacheMocks.MockRedisCache) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantLeft:   "1",
		},
		{
			name:   "limit exceeded",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(
					func(_ any, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:   "cache failure lets the request through",
			enable: true,
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cacheMock := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(cacheMock)

			m := middleware.NewAppMiddleware(otelMocks.NewOtel(), newConfig(tt.enable), cacheMock)

			req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			req.Header.Del(constant.RequestHeaderUserAgent)

			recorder := httptest.NewRecorder()
			m.RateLimit()(http.HandlerFunc(okHandler)).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantLeft, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}
