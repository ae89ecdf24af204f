package middleware

import (
	"strings"
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/labstack/echo/v4"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = "session"

// Authenticator resolves a session token into a user id.
type Authenticator interface {
	Authenticate(token string) (int64, error)
}

type AuthMiddleware struct {
	server *server.Server
	auth   Authenticator
}

func NewAuthMiddleware(s *server.Server, auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
	}
}

// RequireAuth rejects requests without a valid session and stores the
// user id in the echo context under UserIDKey.
//
// The token is read from "Authorization: Bearer <token>" first, then
// from the session cookie.
func (am *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		raw := sessionToken(c)
		if raw == "" {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		userID, err := am.auth.Authenticate(raw)
		if err != nil {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("rejected session token")
			return err
		}

		c.Set(UserIDKey, userID)

		logger := GetLogger(c).With().Int64("user_id", userID).Logger()
		setLogger(c, &logger)

		logger.Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated")

		return next(c)
	}
}

func sessionToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if scheme, raw, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(raw)
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
