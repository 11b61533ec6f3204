package auth

import (
	"bytes"
	"net/http"
	"net/url"
	"time"

	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/internal/errors"
	"codeberg.org/leetbuddy/server/internal/logger"
	"codeberg.org/leetbuddy/server/leetbuddy/users"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

const authSuccessMessage = "AUTH_SUCCESS"

// BeginAuthHandler godoc
// @Summary Start OAuth authentication
// @Description Begin OAuth authentication flow with specified provider
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 307 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/{provider} [get]
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !auth.IsValidProvider(provider) {
			errors.BadRequest(c, "invalid provider")
			return
		}

		setProviderQuery(c, provider)
		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description Provider callback. Renders a page that hands the token to the extension popup opener
// @Tags auth
// @Produce html
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 200 {string} string "HTML handshake page"
// @Failure 302 {string} string "Redirect on failure"
// @Router /auth/{provider}/callback [get]
func CallbackHandler(complete UserAuthCompleter, userRepo users.Repository, tokens *auth.TokenService, frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		provider := c.Param("provider")

		if !auth.IsValidProvider(provider) {
			errors.BadRequest(c, "invalid provider")
			return
		}

		setProviderQuery(c, provider)

		gothUser, err := complete(c.Writer, c.Request)
		if err != nil {
			log.Warn("oauth handshake failed", "provider", provider, "error", err)
			c.Redirect(http.StatusFound, "/auth/failure")
			return
		}

		user, err := userRepo.FindOrCreateByProvider(
			ctx,
			gothUser.Provider,
			gothUser.UserID,
			gothUser.Email,
			gothUser.Name,
			gothUser.AvatarURL,
		)
		if err != nil {
			log.Warn("failed to resolve identity", "provider", provider, "error", err)
			c.Redirect(http.StatusFound, failureURL(frontendURL))
			return
		}

		token, err := tokens.Generate(user.ID, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		var page bytes.Buffer
		err = callbackTemplate.Execute(&page, callbackPage{
			Payload: callbackPayload{
				Type:  authSuccessMessage,
				Token: token,
				User:  publicUser(user),
			},
			FrontendURL: frontendURL,
		})
		if err != nil {
			errors.InternalError(c, "failed to render callback page", err)
			return
		}

		log.Info("user authenticated", "user_id", user.ID, "provider", provider)
		c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
	}
}

// FailureHandler godoc
// @Summary OAuth failure
// @Description Landing route when the provider handshake fails
// @Tags auth
// @Produce json
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/failure [get]
func FailureHandler(c *gin.Context) {
	errors.Unauthorized(c, "Authentication failed")
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Returns the decoded token claims of the caller, plus the stored identity when it still exists
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/user [get]
// @Security BearerAuth
func GetCurrentUserHandler(userRepo users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.GetClaims(c)
		if !ok {
			errors.Unauthorized(c, "Not authenticated")
			return
		}

		resp := UserResponse{User: claims}

		// tokens outlive a memory-backed store, so a missing identity is not an error
		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.FromContext(c.Request.Context()).Debug("identity lookup skipped",
				"user_id", claims.UserID,
				"error", err,
			)
		} else {
			profile := publicUser(user)
			resp.Profile = &profile
		}

		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear the provider session. Tokens already issued stay valid until they expire
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func LogoutHandler(logout LogoutFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := logout(c.Writer, c.Request); err != nil {
			errors.InternalError(c, "Logout failed", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}

// HealthHandler godoc
// @Summary Auth health
// @Tags auth
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /auth/health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// gothic reads the provider name from the query string
func setProviderQuery(c *gin.Context, provider string) {
	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()
}

func failureURL(frontendURL string) string {
	u, err := url.Parse(frontendURL)
	if err != nil {
		return frontendURL + "?error=auth_failed"
	}

	q := u.Query()
	q.Set("error", "auth_failed")
	u.RawQuery = q.Encode()
	return u.String()
}

func publicUser(user *users.User) callbackUser {
	return callbackUser{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.AvatarURL,
	}
}
