package profiles

import (
	"codeberg.org/leetbuddy/server/internal/leetcode"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRouter, fetcher leetcode.Fetcher) {
	router.GET("/profile/:username", GetProfileHandler(fetcher))
}
