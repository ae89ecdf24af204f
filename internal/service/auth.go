package service

import (
	"time"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/lib/token"
)

// Session is a signed token handed to a client after login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService issues and verifies session tokens.
type AuthService struct {
	tokens *token.Manager
}

func NewAuthService(tokens *token.Manager) *AuthService {
	return &AuthService{tokens: tokens}
}

// IssueSession signs a new session for userID.
func (s *AuthService) IssueSession(userID int64) (*Session, error) {
	raw, expiresAt, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: raw, ExpiresAt: expiresAt}, nil
}

// Authenticate returns the user id a session token was issued for.
func (s *AuthService) Authenticate(raw string) (int64, error) {
	userID, err := s.tokens.Parse(raw)
	if err != nil {
		return 0, errs.NewUnauthorizedError("Your session is invalid or has expired", true).
			WithAction(&errs.Action{Type: errs.ActionTypeRedirect, Message: "Please log in again", Value: "/users/login"})
	}
	return userID, nil
}
