package handler

import (
	"context"
	"strconv"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type propertyService interface {
	List(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.RatedProperty, error)
	Create(ctx context.Context, ownerID int64, property model.NewProperty) (*model.Property, error)
}

// ListPropertiesRequest holds the search query parameters. Prices are in
// whole currency units; an omitted parameter does not filter.
type ListPropertiesRequest struct {
	City                 string `query:"city" validate:"omitempty,max=255"`
	OwnerID              string `query:"owner_id" validate:"omitempty,number"`
	MinimumPricePerNight string `query:"minimum_price_per_night" validate:"omitempty,money"`
	MaximumPricePerNight string `query:"maximum_price_per_night" validate:"omitempty,money"`
	MinimumRating        string `query:"minimum_rating" validate:"omitempty,numeric"`
	Limit                int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

func (r *ListPropertiesRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	var problems validation.CustomValidationErrors

	if r.OwnerID != "" {
		if _, err := strconv.ParseInt(r.OwnerID, 10, 64); err != nil {
			problems = append(problems, validation.CustomValidationError{
				Field:   "owner_id",
				Message: "must be a valid user id",
			})
		}
	}

	if r.MinimumRating != "" {
		if rating, err := strconv.ParseFloat(r.MinimumRating, 64); err != nil || rating < 0 || rating > 5 {
			problems = append(problems, validation.CustomValidationError{
				Field:   "minimum_rating",
				Message: "must be between 0 and 5",
			})
		}
	}

	if r.MinimumPricePerNight != "" && r.MaximumPricePerNight != "" {
		lo := decimal.RequireFromString(r.MinimumPricePerNight)
		hi := decimal.RequireFromString(r.MaximumPricePerNight)
		if lo.GreaterThan(hi) {
			problems = append(problems, validation.CustomValidationError{
				Field:   "minimum_price_per_night",
				Message: "must not exceed maximum_price_per_night",
			})
		}
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

// Filter converts the validated query into a repository filter. It must
// only be called after Validate has accepted r.
func (r *ListPropertiesRequest) Filter() model.PropertyFilter {
	filter := model.PropertyFilter{City: r.City}

	if r.OwnerID != "" {
		id, _ := strconv.ParseInt(r.OwnerID, 10, 64)
		filter.OwnerID = &id
	}
	if r.MinimumPricePerNight != "" {
		lo := decimal.RequireFromString(r.MinimumPricePerNight)
		filter.MinimumPricePerNight = &lo
	}
	if r.MaximumPricePerNight != "" {
		hi := decimal.RequireFromString(r.MaximumPricePerNight)
		filter.MaximumPricePerNight = &hi
	}
	if r.MinimumRating != "" {
		rating, _ := strconv.ParseFloat(r.MinimumRating, 64)
		filter.MinimumRating = &rating
	}
	return filter
}

// CreatePropertyRequest is the body of a new listing. CostPerNight is in
// whole currency units and accepts a JSON number or string.
type CreatePropertyRequest struct {
	Title             string          `json:"title" validate:"required,max=255"`
	Description       *string         `json:"description" validate:"omitempty,max=5000"`
	ThumbnailPhotoURL string          `json:"thumbnail_photo_url" validate:"required,http_url,max=255"`
	CoverPhotoURL     string          `json:"cover_photo_url" validate:"required,http_url,max=255"`
	CostPerNight      decimal.Decimal `json:"cost_per_night"`
	ParkingSpaces     int32           `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int32           `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int32           `json:"number_of_bedrooms" validate:"gte=0"`
	Country           string          `json:"country" validate:"required,max=255"`
	Street            string          `json:"street" validate:"required,max=255"`
	City              string          `json:"city" validate:"required,max=255"`
	Province          string          `json:"province" validate:"required,max=255"`
	PostCode          string          `json:"post_code" validate:"required,max=255"`
}

func (r *CreatePropertyRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if !r.CostPerNight.IsPositive() || r.CostPerNight.Exponent() < -2 {
		return validation.CustomValidationErrors{{
			Field:   "cost_per_night",
			Message: "must be a positive amount with at most two decimals",
		}}
	}
	if !model.CentsInRange(r.CostPerNight) {
		return validation.CustomValidationErrors{{
			Field:   "cost_per_night",
			Message: "must not exceed " + model.FromCents(model.MaxCents).StringFixed(2),
		}}
	}
	return nil
}

func (r *CreatePropertyRequest) toModel() model.NewProperty {
	return model.NewProperty{
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailPhotoURL: r.ThumbnailPhotoURL,
		CoverPhotoURL:     r.CoverPhotoURL,
		CostPerNight:      r.CostPerNight,
		ParkingSpaces:     r.ParkingSpaces,
		NumberOfBathrooms: r.NumberOfBathrooms,
		NumberOfBedrooms:  r.NumberOfBedrooms,
		Country:           r.Country,
		Street:            r.Street,
		City:              r.City,
		Province:          r.Province,
		PostCode:          r.PostCode,
	}
}

type PropertyHandler struct {
	Handler
	properties propertyService
}

func NewPropertyHandler(s *server.Server, properties propertyService) *PropertyHandler {
	return &PropertyHandler{
		Handler:    NewHandler(s),
		properties: properties,
	}
}

func (h *PropertyHandler) ListProperties(c echo.Context, req *ListPropertiesRequest) ([]model.RatedProperty, error) {
	return h.properties.List(c.Request().Context(), req.Filter(), req.Limit)
}

// CreateProperty lists a property owned by the session user; any owner
// in the body is ignored.
func (h *PropertyHandler) CreateProperty(c echo.Context, req *CreatePropertyRequest) (*model.Property, error) {
	return h.properties.Create(c.Request().Context(), middleware.GetUserID(c), req.toModel())
}
