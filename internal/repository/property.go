package repository

import (
	"context"
	"strings"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

// propertyFields lists the properties columns in scan order.
var propertyFields = []string{
	"id",
	"owner_id",
	"title",
	"description",
	"thumbnail_photo_url",
	"cover_photo_url",
	"cost_per_night",
	"parking_spaces",
	"number_of_bathrooms",
	"number_of_bedrooms",
	"country",
	"street",
	"city",
	"province",
	"post_code",
	"active",
}

// propertyColumns renders propertyFields qualified by table (or bare when table is empty).
func propertyColumns(table string) string {
	if table == "" {
		return strings.Join(propertyFields, ", ")
	}

	qualified := make([]string, len(propertyFields))
	for i, f := range propertyFields {
		qualified[i] = table + "." + f
	}
	return strings.Join(qualified, ", ")
}

// propertyScanTargets returns pointers to p's fields in propertyFields order.
func propertyScanTargets(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Active,
	}
}

type PropertyRepository struct {
	db  Querier
	log *zerolog.Logger
}

func NewPropertyRepository(db Querier, logger *zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, log: logger}
}

// ListProperties returns properties matching filter, cheapest first, with their
// average rating. It returns an empty, non-nil slice when nothing matches.
func (r *PropertyRepository) ListProperties(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.RatedProperty, error) {
	query, args := buildPropertySearch(filter, normalizeLimit(limit))

	r.log.Debug().
		Str("sql", query).
		Interface("args", args).
		Msg("listing properties")

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, queryFailed(r.log, "list properties", err)
	}
	defer rows.Close()

	properties := make([]model.RatedProperty, 0)
	for rows.Next() {
		var p model.RatedProperty
		targets := append(propertyScanTargets(&p.Property), &p.AverageRating)
		if err := rows.Scan(targets...); err != nil {
			return nil, queryFailed(r.log, "list properties", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, queryFailed(r.log, "list properties", err)
	}

	return properties, nil
}

// AddProperty inserts a property and returns the stored row.
//
// CostPerNight arrives in whole currency units and is stored in cents.
// Field presence is not checked here: the table constraints reject incomplete rows.
func (r *PropertyRepository) AddProperty(ctx context.Context, property model.NewProperty) (*model.Property, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO properties (
			title,
			description,
			owner_id,
			cover_photo_url,
			thumbnail_photo_url,
			cost_per_night,
			parking_spaces,
			number_of_bathrooms,
			number_of_bedrooms,
			province,
			city,
			country,
			street,
			post_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+propertyColumns(""),
		property.Title,
		property.Description,
		property.OwnerID,
		property.CoverPhotoURL,
		property.ThumbnailPhotoURL,
		model.ToCents(property.CostPerNight),
		property.ParkingSpaces,
		property.NumberOfBathrooms,
		property.NumberOfBedrooms,
		property.Province,
		property.City,
		property.Country,
		property.Street,
		property.PostCode,
	)

	var p model.Property
	if err := row.Scan(propertyScanTargets(&p)...); err != nil {
		return nil, queryFailed(r.log, "add property", err)
	}
	return &p, nil
}
