package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/leetbuddy/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                  "3001",
		Environment:           "test",
		BaseURL:               "http://localhost:3001",
		FrontendURL:           "http://localhost:3000",
		JWTSecret:             "test-secret",
		JWTExpiration:         time.Hour,
		SessionSecret:         "test-session",
		LeetCodeAPIURL:        "http://127.0.0.1:1",
		LeetCodeTimeout:       time.Second,
		LeetCodeRatePerSecond: 100,
		RateLimit:             "100-M",
		AllowedOrigins:        []string{"*"},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	srv, err := NewServer(t.Context(), testConfig())
	require.NoError(t, err)
	t.Cleanup(srv.backends.Close)

	return srv
}

func TestNewServer_InMemoryBackends(t *testing.T) {
	srv := newTestServer(t)

	assert.Nil(t, srv.backends.Redis)
	assert.Nil(t, srv.backends.Postgres)
	assert.Empty(t, srv.backends.Probes())
	assert.NotNil(t, srv.services.History)
	assert.NotNil(t, srv.services.Users)
}

func TestNewServer_InvalidRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = "often"

	_, err := NewServer(t.Context(), cfg)
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/auth/health", http.StatusOK},
		{http.MethodGet, "/auth/failure", http.StatusUnauthorized},
		{http.MethodGet, "/auth/user", http.StatusUnauthorized},
		{http.MethodGet, "/api/history", http.StatusUnauthorized},
		{http.MethodPost, "/api/compare", http.StatusUnauthorized},
		{http.MethodGet, "/api/chart-data", http.StatusBadRequest},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRoutes_RateLimitHeaders(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chart-data", nil))

	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))
}

func TestRoutes_RateLimitScope(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path    string
		limited bool
	}{
		{"/health", false},
		{"/auth/health", false},
		{"/auth/failure", true},
		{"/api/history", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.limited {
				assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))
			} else {
				assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
			}
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/history", nil)
	req.Header.Set("Origin", "chrome-extension://abcdef")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORSMiddleware_AllowList(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"https://leetbuddy.dev"}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	allowed := httptest.NewRequest(http.MethodGet, "/ping", nil)
	allowed.Header.Set("Origin", "https://leetbuddy.dev")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, allowed)
	assert.Equal(t, "https://leetbuddy.dev", w.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/ping", nil)
	denied.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, denied)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
