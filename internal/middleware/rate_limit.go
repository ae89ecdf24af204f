package middleware

import (
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Credential endpoints allow a short burst, then one attempt per second per client IP.
const (
	authRate      = rate.Limit(1)
	authBurst     = 5
	authRateReset = 3 * time.Minute
)

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// LimitAuth throttles the sign-up and login endpoints.
func (r *RateLimitMiddleware) LimitAuth() echo.MiddlewareFunc {
	return r.limit(authRate, authBurst, authRateReset)
}

func (r *RateLimitMiddleware) limit(limit rate.Limit, burst int, expiresIn time.Duration) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     burst,
		ExpiresIn: expiresIn,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewForbiddenError("Unable to identify the client", false)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("endpoint", c.Path()).Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Too many requests, please try again later")
		},
	})
}

// RecordRateLimitHit reports a rejected request to New Relic as a custom event.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
