package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(t *testing.T, handler gin.HandlerFunc) (int, ErrorResponse, bool) {
	t.Helper()

	nextRan := false
	router := gin.New()
	router.GET("/", handler, func(c *gin.Context) { nextRan = true })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp, nextRan
}

func TestHelpers(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")

	tests := []struct {
		name    string
		handler gin.HandlerFunc
		status  int
		message string
		code    string
	}{
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "Access token required") }, http.StatusUnauthorized, "Access token required", CodeUnauthorized},
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, "authentication required", CodeUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "Invalid or expired token") }, http.StatusForbidden, "Invalid or expired token", CodeForbidden},
		{"not found", func(c *gin.Context) { NotFound(c, "comparison") }, http.StatusNotFound, "comparison not found", CodeNotFound},
		{"not found default", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, "resource not found", CodeNotFound},
		{"bad request", func(c *gin.Context) { BadRequest(c, "") }, http.StatusBadRequest, "invalid request", CodeBadRequest},
		{"validation", func(c *gin.Context) { ValidationError(c, "Both usernames are required", cause) }, http.StatusBadRequest, "Both usernames are required", CodeValidationError},
		{"upstream", func(c *gin.Context) { UpstreamError(c, "", cause) }, http.StatusInternalServerError, "failed to fetch profiles", CodeUpstreamError},
		{"internal", func(c *gin.Context) { InternalError(c, "failed to save comparison", cause) }, http.StatusInternalServerError, "failed to save comparison", CodeServerError},
		{"too many requests", func(c *gin.Context) { TooManyRequests(c, "") }, http.StatusTooManyRequests, "too many requests", CodeTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp, nextRan := respond(t, tt.handler)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, tt.code, resp.Code)
			assert.False(t, nextRan, "helpers must abort the chain")
		})
	}
}

func TestServerErrorsDoNotLeakCause(t *testing.T) {
	cause := stderrors.New("upstream said: secret-internal-detail")

	for _, handler := range []gin.HandlerFunc{
		func(c *gin.Context) { UpstreamError(c, "Failed to fetch profiles", cause) },
		func(c *gin.Context) { InternalError(c, "", cause) },
	} {
		router := gin.New()
		router.GET("/", handler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotContains(t, w.Body.String(), "secret-internal-detail")
	}
}
