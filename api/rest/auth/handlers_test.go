package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/leetbuddy/users"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/google"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frontendURL = "http://localhost:3000"

func init() {
	gin.SetMode(gin.TestMode)
	goth.UseProviders(google.New("client-id", "client-secret", "http://localhost:3001/auth/google/callback", "email", "profile"))
}

func newTokens() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour)
}

func completeWith(user goth.User, err error) UserAuthCompleter {
	return func(http.ResponseWriter, *http.Request) (goth.User, error) {
		return user, err
	}
}

func callbackRouter(complete UserAuthCompleter, repo users.Repository, tokens *auth.TokenService) *gin.Engine {
	router := gin.New()
	router.GET("/auth/:provider/callback", CallbackHandler(complete, repo, tokens, frontendURL))
	return router
}

func serve(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCallbackHandler_RendersHandshakePage(t *testing.T) {
	repo := users.NewMemoryRepository()
	tokens := newTokens()
	gothUser := goth.User{
		Provider:  "google",
		UserID:    "google-123",
		Email:     "ada@example.com",
		Name:      "Ada",
		AvatarURL: "https://example.com/ada.png",
	}

	w := serve(callbackRouter(completeWith(gothUser, nil), repo, tokens), http.MethodGet, "/auth/google/callback", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "AUTH_SUCCESS")
	assert.Contains(t, body, "window.opener.postMessage")
	assert.Contains(t, body, "ada@example.com")

	user, err := repo.FindByEmail(t.Context(), "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, body, user.ID)

	// the embedded token must validate for the created identity
	token := extractToken(t, body)
	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestCallbackHandler_ReusesExistingIdentity(t *testing.T) {
	repo := users.NewMemoryRepository()
	gothUser := goth.User{Provider: "google", UserID: "google-1", Email: "a@example.com", Name: "A"}
	router := callbackRouter(completeWith(gothUser, nil), repo, newTokens())

	serve(router, http.MethodGet, "/auth/google/callback", "")
	first, err := repo.FindByEmail(t.Context(), "a@example.com")
	require.NoError(t, err)

	serve(router, http.MethodGet, "/auth/google/callback", "")
	second, err := repo.FindByEmail(t.Context(), "a@example.com")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestCallbackHandler_HandshakeFailure(t *testing.T) {
	router := callbackRouter(completeWith(goth.User{}, errors.New("state mismatch")), users.NewMemoryRepository(), newTokens())

	w := serve(router, http.MethodGet, "/auth/google/callback", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/failure", w.Header().Get("Location"))
}

func TestCallbackHandler_MissingEmailRedirectsToFrontend(t *testing.T) {
	gothUser := goth.User{Provider: "google", UserID: "google-2", Name: "NoMail"}
	router := callbackRouter(completeWith(gothUser, nil), users.NewMemoryRepository(), newTokens())

	w := serve(router, http.MethodGet, "/auth/google/callback", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, frontendURL+"?error=auth_failed", w.Header().Get("Location"))
}

func TestCallbackHandler_UnknownProvider(t *testing.T) {
	router := callbackRouter(completeWith(goth.User{}, nil), users.NewMemoryRepository(), newTokens())

	w := serve(router, http.MethodGet, "/auth/myspace/callback", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBeginAuthHandler_UnknownProvider(t *testing.T) {
	router := gin.New()
	router.GET("/auth/:provider", BeginAuthHandler())

	w := serve(router, http.MethodGet, "/auth/myspace", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFailureHandler(t *testing.T) {
	router := gin.New()
	router.GET("/auth/failure", FailureHandler)

	w := serve(router, http.MethodGet, "/auth/failure", "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Authentication failed", body["error"])
}

func TestGetCurrentUserHandler(t *testing.T) {
	tokens := newTokens()
	router := gin.New()
	router.GET("/auth/user", auth.AuthMiddleware(tokens), GetCurrentUserHandler(users.NewMemoryRepository()))

	token, err := tokens.Generate("user-1", "ada@example.com")
	require.NoError(t, err)

	w := serve(router, http.MethodGet, "/auth/user", token)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User struct {
			UserID string `json:"userId"`
			Email  string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body.User.UserID)
	assert.Equal(t, "ada@example.com", body.User.Email)
	assert.NotContains(t, w.Body.String(), `"profile"`)
}

func TestGetCurrentUserHandler_IncludesStoredIdentity(t *testing.T) {
	tokens := newTokens()
	repo := users.NewMemoryRepository()
	user, err := repo.FindOrCreateByProvider(t.Context(), "google", "google-1", "ada@example.com", "Ada", "https://example.com/ada.png")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/auth/user", auth.AuthMiddleware(tokens), GetCurrentUserHandler(repo))

	token, err := tokens.Generate(user.ID, user.Email)
	require.NoError(t, err)

	w := serve(router, http.MethodGet, "/auth/user", token)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Profile struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Picture string `json:"picture"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, user.ID, body.Profile.ID)
	assert.Equal(t, "Ada", body.Profile.Name)
	assert.Equal(t, "https://example.com/ada.png", body.Profile.Picture)
}

func TestGetCurrentUserHandler_NoToken(t *testing.T) {
	router := gin.New()
	router.GET("/auth/user", auth.AuthMiddleware(newTokens()), GetCurrentUserHandler(users.NewMemoryRepository()))

	w := serve(router, http.MethodGet, "/auth/user", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutHandler(t *testing.T) {
	tests := []struct {
		name    string
		logout  LogoutFunc
		status  int
		message string
		key     string
	}{
		{
			name:    "success",
			logout:  func(http.ResponseWriter, *http.Request) error { return nil },
			status:  http.StatusOK,
			key:     "message",
			message: "Logged out successfully",
		},
		{
			name:    "failure",
			logout:  func(http.ResponseWriter, *http.Request) error { return errors.New("cookie store down") },
			status:  http.StatusInternalServerError,
			key:     "error",
			message: "Logout failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/auth/logout", LogoutHandler(tt.logout))

			w := serve(router, http.MethodPost, "/auth/logout", "")

			require.Equal(t, tt.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body[tt.key])
		})
	}
}

func TestHealthHandler(t *testing.T) {
	router := gin.New()
	RegisterRoutes(router, users.NewMemoryRepository(), newTokens(), frontendURL)

	w := serve(router, http.MethodGet, "/auth/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.False(t, body.Timestamp.IsZero())
}

func TestRegisterRoutes_StaticSegmentsBeatProvider(t *testing.T) {
	router := gin.New()
	RegisterRoutes(router, users.NewMemoryRepository(), newTokens(), frontendURL)

	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/auth/failure", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/auth/user", "").Code)
}

func TestFailureURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000?error=auth_failed", failureURL("http://localhost:3000"))
	assert.Equal(t, "https://app.example.com/login?error=auth_failed&from=ext", failureURL("https://app.example.com/login?from=ext"))
}

// pulls the token out of the rendered payload literal
func extractToken(t *testing.T, body string) string {
	t.Helper()

	const marker = `"token":"`
	start := strings.Index(body, marker)
	require.NotEqual(t, -1, start, "token not found in page")

	rest := body[start+len(marker):]
	end := strings.Index(rest, `"`)
	require.NotEqual(t, -1, end)

	return rest[:end]
}
