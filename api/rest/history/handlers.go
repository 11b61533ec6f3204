package history

import (
	"net/http"
	"strings"

	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/internal/errors"
	"codeberg.org/leetbuddy/server/leetbuddy/history"
	"github.com/gin-gonic/gin"
)

// ListHistoryHandler godoc
// @Summary List comparison history
// @Description Caller's saved comparisons, newest first, at most 50
// @Tags history
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/history [get]
// @Security BearerAuth
func ListHistoryHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "Unauthorized")
			return
		}

		entries, err := store.List(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to load history", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{History: entries})
	}
}

// SaveHistoryHandler godoc
// @Summary Save a comparison
// @Description Record a comparison at the head of the caller's history, evicting the oldest past 50
// @Tags history
// @Accept json
// @Produce json
// @Param request body SaveRequest true "Compared usernames"
// @Success 200 {object} SaveResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/history [post]
// @Security BearerAuth
func SaveHistoryHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "Unauthorized")
			return
		}

		var req SaveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, "Both usernames are required", err)
			return
		}

		user1 := strings.TrimSpace(req.User1)
		user2 := strings.TrimSpace(req.User2)
		if user1 == "" || user2 == "" {
			errors.ValidationError(c, "Both usernames are required", nil)
			return
		}

		comparison, err := store.Append(c.Request.Context(), userID, user1, user2, auth.GetUserEmail(c))
		if err != nil {
			errors.InternalError(c, "failed to save comparison", err)
			return
		}

		c.JSON(http.StatusOK, SaveResponse{
			Message:    "Comparison saved to history",
			Comparison: comparison,
		})
	}
}

// DeleteHistoryEntryHandler godoc
// @Summary Delete a comparison
// @Description Remove one comparison by id. Succeeds whether or not the id existed
// @Tags history
// @Produce json
// @Param id path string true "Comparison ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/history/{id} [delete]
// @Security BearerAuth
func DeleteHistoryEntryHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "Unauthorized")
			return
		}

		if err := store.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
			errors.InternalError(c, "failed to delete comparison", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "Comparison deleted from history"})
	}
}

// ClearHistoryHandler godoc
// @Summary Clear comparison history
// @Tags history
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/history [delete]
// @Security BearerAuth
func ClearHistoryHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "Unauthorized")
			return
		}

		if err := store.Clear(c.Request.Context(), userID); err != nil {
			errors.InternalError(c, "failed to clear history", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "All comparison history cleared"})
	}
}
