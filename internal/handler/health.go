package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// pingFunc probes one dependency.
type pingFunc func(ctx context.Context) error

// dependencyCheck is a probe the /status endpoint runs. A failing
// non-critical check is reported without marking the service unhealthy.
type dependencyCheck struct {
	name     string
	ping     pingFunc
	critical bool
}

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks  []dependencyCheck
	timeout time.Duration
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: 5 * time.Second,
	}

	obs := s.Config.Observability
	if obs == nil {
		return h
	}
	if obs.HealthChecks.Timeout > 0 {
		h.timeout = obs.HealthChecks.Timeout
	}

	if obs.HealthCheckEnabled("database") && s.DB != nil {
		h.checks = append(h.checks, dependencyCheck{name: "database", ping: s.DB.Pool.Ping, critical: true})
	}
	// Only background mail depends on Redis.
	if obs.HealthCheckEnabled("redis") && s.Redis != nil {
		h.checks = append(h.checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error { return s.Redis.Ping(ctx).Err() },
		})
	}
	return h
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth answers 200 when every critical dependency responds, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult, len(h.checks)),
	}

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		result := checkResult{Status: "healthy", ResponseTime: elapsed.String()}
		if err != nil {
			result.Status = "unhealthy"
			result.Error = err.Error()
			if check.critical {
				response.Status = "unhealthy"
			}

			logger.Error().Err(err).Str("check", check.name).Dur("response_time", elapsed).Msg("health check failed")
			h.recordFailure(check.name, elapsed, err)
		}
		response.Checks[check.name] = result
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(check string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
