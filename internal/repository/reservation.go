package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

type ReservationRepository struct {
	db  Querier
	log *zerolog.Logger
}

func NewReservationRepository(db Querier, logger *zerolog.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, log: logger}
}

// GetReservationsForGuest returns the guest's completed stays (end date
// strictly before today), most recent start first, at most limit of them.
//
// A guest without completed stays gets a nil slice.
func (r *ReservationRepository) GetReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			reservations.id,
			reservations.start_date,
			reservations.end_date,
			reservations.property_id,
			reservations.guest_id,
			`+propertyColumns("properties")+`,
			`+averageRating+` AS average_rating
		FROM reservations
		JOIN properties ON properties.id = reservations.property_id
		LEFT JOIN property_reviews ON properties.id = property_reviews.property_id
		WHERE reservations.guest_id = $1 AND reservations.end_date < now()::date
		GROUP BY properties.id, reservations.id
		ORDER BY reservations.start_date DESC
		LIMIT $2`,
		guestID, normalizeLimit(limit))
	if err != nil {
		return nil, queryFailed(r.log, "get reservations for guest", err)
	}
	defer rows.Close()

	var reservations []model.GuestReservation
	for rows.Next() {
		var gr model.GuestReservation
		targets := []any{
			&gr.ID,
			&gr.StartDate,
			&gr.EndDate,
			&gr.PropertyID,
			&gr.GuestID,
		}
		targets = append(targets, propertyScanTargets(&gr.Property)...)
		targets = append(targets, &gr.AverageRating)

		if err := rows.Scan(targets...); err != nil {
			return nil, queryFailed(r.log, "get reservations for guest", err)
		}
		reservations = append(reservations, gr)
	}
	if err := rows.Err(); err != nil {
		return nil, queryFailed(r.log, "get reservations for guest", err)
	}

	return reservations, nil
}
