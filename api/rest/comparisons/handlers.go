package comparisons

import (
	"net/http"
	"strings"

	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/internal/errors"
	"codeberg.org/leetbuddy/server/leetbuddy/comparisons"
	"github.com/gin-gonic/gin"
)

// CompareHandler godoc
// @Summary Compare two profiles
// @Description Fetch both profiles concurrently and pick the winner by solved count
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Usernames to compare"
// @Success 200 {object} comparisons.Report
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/compare [post]
// @Security BearerAuth
func CompareHandler(svc *comparisons.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CompareRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, "Both usernames are required", err)
			return
		}

		username1 := strings.TrimSpace(req.Username1)
		username2 := strings.TrimSpace(req.Username2)
		if username1 == "" || username2 == "" {
			errors.ValidationError(c, "Both usernames are required", nil)
			return
		}

		report, err := svc.Compare(c.Request.Context(), username1, username2, auth.GetUserEmail(c))
		if err != nil {
			errors.UpstreamError(c, "Failed to fetch profiles", err)
			return
		}

		c.JSON(http.StatusOK, report)
	}
}

// ChartDataHandler godoc
// @Summary Chart data for two profiles
// @Description Per-difficulty counts, scored metrics and a synthetic monthly series
// @Tags comparisons
// @Produce json
// @Param user1 query string true "First username"
// @Param user2 query string true "Second username"
// @Success 200 {object} ChartResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/chart-data [get]
func ChartDataHandler(svc *comparisons.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user1 := strings.TrimSpace(c.Query("user1"))
		user2 := strings.TrimSpace(c.Query("user2"))

		if user1 == "" || user2 == "" {
			errors.ValidationError(c, "Both user1 and user2 query parameters are required", nil)
			return
		}

		data, err := svc.ChartData(c.Request.Context(), user1, user2)
		if err != nil {
			errors.UpstreamError(c, "Failed to generate chart data", err)
			return
		}

		c.JSON(http.StatusOK, ChartResponse{
			User1:     user1,
			User2:     user2,
			Data:      data,
			Timestamp: svc.Now(),
		})
	}
}
