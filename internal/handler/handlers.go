package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

// Handlers groups all HTTP handlers so the router takes a single value.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	User        *UserHandler
	Property    *PropertyHandler
	Reservation *ReservationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		User:        NewUserHandler(s, services.User, services.Auth),
		Property:    NewPropertyHandler(s, services.Property),
		Reservation: NewReservationHandler(s, services.Reservation),
	}
}
