package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

type PropertyService struct {
	properties propertyStore
	users      userStore
	jobs       taskEnqueuer
	logger     *zerolog.Logger
}

func NewPropertyService(properties propertyStore, users userStore, jobs taskEnqueuer, logger *zerolog.Logger) *PropertyService {
	return &PropertyService{
		properties: properties,
		users:      users,
		jobs:       jobs,
		logger:     logger,
	}
}

// List returns the listings matching filter, cheapest first.
func (s *PropertyService) List(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.RatedProperty, error) {
	return s.properties.ListProperties(ctx, filter, limit)
}

// Create lists a new property owned by ownerID and notifies the owner.
func (s *PropertyService) Create(ctx context.Context, ownerID int64, property model.NewProperty) (*model.Property, error) {
	property.OwnerID = ownerID

	created, err := s.properties.AddProperty(ctx, property)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("property_id", created.ID).
		Int64("owner_id", ownerID).
		Msg("property listed")

	s.notifyOwner(ctx, created)
	return created, nil
}

func (s *PropertyService) notifyOwner(ctx context.Context, p *model.Property) {
	owner, err := s.users.GetUserByID(ctx, p.OwnerID)
	if err != nil || owner == nil {
		s.logger.Warn().Err(err).Int64("owner_id", p.OwnerID).Msg("skipping listing email, owner not loaded")
		return
	}

	task, err := job.NewPropertyListedEmailTask(job.PropertyListedEmailPayload{
		To:            owner.Email,
		Name:          owner.Name,
		PropertyTitle: p.Title,
		CostPerNight:  model.FromCents(p.CostPerNight).StringFixed(2),
	})
	if err == nil {
		_, err = s.jobs.EnqueueContext(ctx, task)
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("property_id", p.ID).Msg("failed to enqueue listing email")
	}
}
