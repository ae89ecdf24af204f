package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
)

type ReservationService struct {
	reservations reservationStore
}

func NewReservationService(reservations reservationStore) *ReservationService {
	return &ReservationService{reservations: reservations}
}

// ListForGuest returns the guest's completed stays, most recent first.
// The result is nil when the guest has none.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	return s.reservations.GetReservationsForGuest(ctx, guestID, limit)
}
