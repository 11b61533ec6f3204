package health

import (
	"context"
	"net/http"
	"time"

	"codeberg.org/leetbuddy/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	serviceName  = "leetbuddy"
	probeTimeout = 2 * time.Second
)

// returns the server health status. with no probes configured (in-memory
// backends) the server is healthy whenever it answers.
func Handler(version string, probes ...Probe) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Status:  "healthy",
			Service: serviceName,
			Version: version,
		}

		if len(probes) == 0 {
			c.JSON(http.StatusOK, resp)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
		defer cancel()

		resp.Checks = make(map[string]string, len(probes))
		status := http.StatusOK

		for _, probe := range probes {
			if err := probe.Ping(ctx); err != nil {
				logger.FromContext(ctx).Warn("health probe failed", "probe", probe.Name, "error", err)
				resp.Checks[probe.Name] = "unavailable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[probe.Name] = "ok"
		}

		c.JSON(status, resp)
	}
}
