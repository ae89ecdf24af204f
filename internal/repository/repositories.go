package repository

import (
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	User        *UserRepository
	Property    *PropertyRepository
	Reservation *ReservationRepository
}

// NewRepositories wires every repository to the shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:        NewUserRepository(s.DB.Pool, s.Logger),
		Property:    NewPropertyRepository(s.DB.Pool, s.Logger),
		Reservation: NewReservationRepository(s.DB.Pool, s.Logger),
	}
}
