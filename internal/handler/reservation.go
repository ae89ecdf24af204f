package handler

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

type reservationService interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error)
}

type ListReservationsRequest struct {
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

func (r *ListReservationsRequest) Validate() error { return validation.Struct(r) }

type ReservationHandler struct {
	Handler
	reservations reservationService
}

func NewReservationHandler(s *server.Server, reservations reservationService) *ReservationHandler {
	return &ReservationHandler{
		Handler:      NewHandler(s),
		reservations: reservations,
	}
}

// ListReservations returns the session user's past stays. The body is
// null when there are none.
func (h *ReservationHandler) ListReservations(c echo.Context, req *ListReservationsRequest) ([]model.GuestReservation, error) {
	return h.reservations.ListForGuest(c.Request().Context(), middleware.GetUserID(c), req.Limit)
}
