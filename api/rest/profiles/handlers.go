package profiles

import (
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/leetbuddy/server/internal/errors"
	"codeberg.org/leetbuddy/server/internal/leetcode"
	"github.com/gin-gonic/gin"
)

// GetProfileHandler godoc
// @Summary Get a profile
// @Description Fetch one public profile and return its normalized stats
// @Tags profiles
// @Produce json
// @Param username path string true "Profile username"
// @Success 200 {object} leetcode.Stats
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/profile/{username} [get]
func GetProfileHandler(fetcher leetcode.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := strings.TrimSpace(c.Param("username"))
		if username == "" {
			errors.ValidationError(c, "Username is required", nil)
			return
		}

		stats, err := fetcher.FetchProfile(c.Request.Context(), username)
		if err != nil {
			errors.UpstreamError(c, fmt.Sprintf("Failed to fetch profile for %s", username), err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
