package comparisons

import (
	"codeberg.org/leetbuddy/server/internal/auth"
	"codeberg.org/leetbuddy/server/leetbuddy/comparisons"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRouter, svc *comparisons.Service, tokens *auth.TokenService) {
	router.POST("/compare", auth.AuthMiddleware(tokens), CompareHandler(svc))

	// chart data is public; a valid token only adds caller context to logs
	router.GET("/chart-data", auth.OptionalAuthMiddleware(tokens), ChartDataHandler(svc))
}
