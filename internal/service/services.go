package service

import (
	"github.com/deppfellow/lightbnb/internal/lib/token"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Auth        *AuthService
	User        *UserService
	Property    *PropertyService
	Reservation *ReservationService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	authService := NewAuthService(token.NewManager(s.Config.Auth.SecretKey, s.Config.Auth.SessionTTL))

	return &Services{
		Auth:        authService,
		User:        NewUserService(repos.User, authService, s.Job.Client, s.Logger),
		Property:    NewPropertyService(repos.Property, repos.User, s.Job.Client, s.Logger),
		Reservation: NewReservationService(repos.Reservation),
	}
}
