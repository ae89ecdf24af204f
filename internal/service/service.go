// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/hibiken/asynq"
)

// The services depend on these narrow views of the repositories so they
// can be exercised without a database.

type userStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, user model.NewUser) (*model.User, error)
}

type propertyStore interface {
	ListProperties(ctx context.Context, filter model.PropertyFilter, limit int) ([]model.RatedProperty, error)
	AddProperty(ctx context.Context, property model.NewProperty) (*model.Property, error)
}

type reservationStore interface {
	GetReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error)
}

// taskEnqueuer is satisfied by *asynq.Client.
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
