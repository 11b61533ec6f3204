package history

import (
	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/leetbuddy/history"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRouter, store history.Store, tokens *auth.TokenService) {
	historyGroup := router.Group("/history")
	historyGroup.Use(auth.AuthMiddleware(tokens))
	{
		historyGroup.GET("", ListHistoryHandler(store))
		historyGroup.POST("", SaveHistoryHandler(store))
		historyGroup.DELETE("", ClearHistoryHandler(store))
		historyGroup.DELETE("/:id", DeleteHistoryEntryHandler(store))
	}
}
