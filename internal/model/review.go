package model

// PropertyReview is a row of the property_reviews table.
// Reviews are only read through the average_rating aggregate.
type PropertyReview struct {
	ID            int64   `json:"id" db:"id"`
	GuestID       int64   `json:"guest_id" db:"guest_id"`
	PropertyID    int64   `json:"property_id" db:"property_id"`
	ReservationID int64   `json:"reservation_id" db:"reservation_id"`
	Rating        int16   `json:"rating" db:"rating"`
	Message       *string `json:"message" db:"message"`
}
