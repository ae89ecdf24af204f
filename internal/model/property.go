package model

import "github.com/shopspring/decimal"

// Property is a row of the properties table.
//
// CostPerNight is in cents.
type Property struct {
	ID                int64   `json:"id" db:"id"`
	OwnerID           int64   `json:"owner_id" db:"owner_id"`
	Title             string  `json:"title" db:"title"`
	Description       *string `json:"description" db:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url" db:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url" db:"cover_photo_url"`
	CostPerNight      int64   `json:"cost_per_night" db:"cost_per_night"`
	ParkingSpaces     int32   `json:"parking_spaces" db:"parking_spaces"`
	NumberOfBathrooms int32   `json:"number_of_bathrooms" db:"number_of_bathrooms"`
	NumberOfBedrooms  int32   `json:"number_of_bedrooms" db:"number_of_bedrooms"`
	Country           string  `json:"country" db:"country"`
	Street            string  `json:"street" db:"street"`
	City              string  `json:"city" db:"city"`
	Province          string  `json:"province" db:"province"`
	PostCode          string  `json:"post_code" db:"post_code"`
	Active            bool    `json:"active" db:"active"`
}

// RatedProperty is a listing row: the property and the average of its review ratings.
// AverageRating is nil for a property nobody reviewed yet.
type RatedProperty struct {
	Property
	AverageRating *float64 `json:"average_rating" db:"average_rating"`
}

// NewProperty is the input of a property insert.
//
// CostPerNight is in whole currency units; it is converted to cents on insert.
type NewProperty struct {
	OwnerID           int64
	Title             string
	Description       *string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      decimal.Decimal
	ParkingSpaces     int32
	NumberOfBathrooms int32
	NumberOfBedrooms  int32
	Country           string
	Street            string
	City              string
	Province          string
	PostCode          string
}

// PropertyFilter is the sparse option bag of a property search.
// Zero values (empty string, nil pointer) mean "not filtered".
//
// Prices are in whole currency units.
type PropertyFilter struct {
	City                 string
	OwnerID              *int64
	MinimumPricePerNight *decimal.Decimal
	MaximumPricePerNight *decimal.Decimal
	MinimumRating        *float64
}
