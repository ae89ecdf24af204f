package service

import (
	"context"
	"strings"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/lib/utils"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = errs.NewUnauthorizedError("Invalid email or password", true)

type UserService struct {
	users    userStore
	auth     *AuthService
	jobs     taskEnqueuer
	logger   *zerolog.Logger
	hashCost int
}

func NewUserService(users userStore, auth *AuthService, jobs taskEnqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{
		users:    users,
		auth:     auth,
		jobs:     jobs,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register creates an account and queues the welcome email.
// The password is stored as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	email = normalizeEmail(email)

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		code := "USER_ALREADY_EXISTS"
		return nil, errs.NewBadRequestError("A user with this email already exists", true, &code, nil, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, errors.Wrap(err, "hashing password")
	}

	user, err := s.users.AddUser(ctx, model.NewUser{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.enqueueWelcome(ctx, user)

	s.logger.Info().Int64("user_id", user.ID).Str("email", utils.MaskEmail(user.Email)).Msg("user registered")
	return user, nil
}

// enqueueWelcome is best effort: a missing email never fails a sign-up.
func (s *UserService) enqueueWelcome(ctx context.Context, user *model.User) {
	task, err := job.NewWelcomeEmailTask(user.Email, user.Name)
	if err == nil {
		_, err = s.jobs.EnqueueContext(ctx, task)
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
	}
}

// Login checks the credentials and opens a session.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, *Session, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		s.logger.Debug().Str("email", utils.MaskEmail(email)).Msg("login for unknown email")
		return nil, nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Debug().Int64("user_id", user.ID).Msg("login with wrong password")
		return nil, nil, errInvalidCredentials
	}

	session, err := s.auth.IssueSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Me returns the user a session belongs to.
func (s *UserService) Me(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		code := "USER_NOT_FOUND"
		return nil, errs.NewNotFoundError("User not found", true, &code)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
