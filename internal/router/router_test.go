package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/lib/token"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/rs/zerolog"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"http://localhost:3000"}},
		},
		Logger: &logger,
	}

	auth := service.NewAuthService(token.NewManager("0123456789abcdef", time.Hour))
	services := &service.Services{
		Auth:        auth,
		User:        service.NewUserService(nil, auth, nil, &logger),
		Property:    service.NewPropertyService(nil, nil, nil, &logger),
		Reservation: service.NewReservationService(nil),
	}

	return NewRouter(handler.NewHandlers(s, services), middleware.NewMiddlewares(s, services.Auth))
}

func TestRoutesRegistered(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/docs", http.StatusOK},
		{http.MethodGet, "/docs/openapi.json", http.StatusOK},
		{http.MethodGet, "/status", http.StatusOK},
		{http.MethodGet, "/users/me", http.StatusUnauthorized},
		{http.MethodPost, "/api/properties", http.StatusUnauthorized},
		{http.MethodGet, "/api/reservations", http.StatusUnauthorized},
		{http.MethodPost, "/users/logout", http.StatusNoContent},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if rec.Header().Get(middleware.RequestIDHeader) == "" {
				t.Fatal("missing request id header")
			}
		})
	}
}

func TestLoginIsRateLimited(t *testing.T) {
	r := newTestRouter(t)

	var last int
	for range 10 {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/login", nil))
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("status after a burst = %d, want 429", last)
	}
}
