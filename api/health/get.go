package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/gameshelf-api/api/types"
)

const dbCheckTimeout = 2 * time.Second

// Get handles health check requests
// @Summary      Health check
// @Description  Reports database connectivity and upstream client counters. Returns 503 when a configured database is unreachable.
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), dbCheckTimeout)
		defer cancel()

		response := types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  getDatabaseStatus(ctx, deps),
			Upstreams: getUpstreamMetrics(deps),
		}

		status := http.StatusOK
		if response.Database["status"] == "unhealthy" {
			response.Status = types.StatusError
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(ctx context.Context, deps *types.Dependencies) map[string]string {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]string{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(ctx); err != nil {
		return map[string]string{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]string{"status": "healthy"}
}

func getUpstreamMetrics(deps *types.Dependencies) map[string]map[string]int64 {
	if deps == nil || len(deps.Upstreams) == 0 {
		return nil
	}
	metrics := make(map[string]map[string]int64, len(deps.Upstreams))
	for name, reporter := range deps.Upstreams {
		metrics[name] = reporter.GetMetrics()
	}
	return metrics
}
