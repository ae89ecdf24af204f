// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain and
// every route registered.
func NewRouter(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// The New Relic transaction and request id must exist before the
	// request logger is built.
	router.Use(
		m.Tracing.NewRelicMiddleware(),
		middleware.RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Tracing.EnhanceTracing(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
	)

	registerSystemRoutes(router, h)
	registerUserRoutes(router, h, m)
	registerAPIRoutes(router, h, m)

	return router
}

func registerUserRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	users := r.Group("/users")
	uh := h.User

	users.POST("", handler.Handle(uh.Handler, uh.SignUp, http.StatusCreated, handler.New[handler.SignUpRequest]()),
		m.RateLimit.LimitAuth())
	users.POST("/login", handler.Handle(uh.Handler, uh.Login, http.StatusOK, handler.New[handler.LoginRequest]()),
		m.RateLimit.LimitAuth())
	users.POST("/logout", handler.HandleNoContent(uh.Handler, uh.Logout, http.StatusNoContent, handler.New[handler.EmptyRequest]()))
	users.GET("/me", handler.Handle(uh.Handler, uh.Me, http.StatusOK, handler.New[handler.EmptyRequest]()),
		m.Auth.RequireAuth)
}

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := r.Group("/api")
	ph, rh := h.Property, h.Reservation

	api.GET("/properties", handler.Handle(ph.Handler, ph.ListProperties, http.StatusOK, handler.New[handler.ListPropertiesRequest]()))
	api.POST("/properties", handler.Handle(ph.Handler, ph.CreateProperty, http.StatusCreated, handler.New[handler.CreatePropertyRequest]()),
		m.Auth.RequireAuth)

	api.GET("/reservations", handler.Handle(rh.Handler, rh.ListReservations, http.StatusOK, handler.New[handler.ListReservationsRequest]()),
		m.Auth.RequireAuth)
}
