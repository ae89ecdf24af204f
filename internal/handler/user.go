package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

type userService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, *service.Session, error)
	Me(ctx context.Context, userID int64) (*model.User, error)
}

type sessionIssuer interface {
	IssueSession(userID int64) (*service.Session, error)
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *SignUpRequest) Validate() error { return validation.Struct(r) }

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validation.Struct(r) }

// EmptyRequest is the payload of endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

// SessionResponse is returned by sign-up and login. The token is also set
// as the session cookie.
type SessionResponse struct {
	User    *model.User      `json:"user"`
	Session *service.Session `json:"session"`
}

type UserHandler struct {
	Handler
	users    userService
	sessions sessionIssuer
}

func NewUserHandler(s *server.Server, users userService, sessions sessionIssuer) *UserHandler {
	return &UserHandler{
		Handler:  NewHandler(s),
		users:    users,
		sessions: sessions,
	}
}

func (h *UserHandler) SignUp(c echo.Context, req *SignUpRequest) (*SessionResponse, error) {
	user, err := h.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	session, err := h.sessions.IssueSession(user.ID)
	if err != nil {
		return nil, err
	}

	h.setSessionCookie(c, session.Token, session.ExpiresAt)
	return &SessionResponse{User: user, Session: session}, nil
}

func (h *UserHandler) Login(c echo.Context, req *LoginRequest) (*SessionResponse, error) {
	user, session, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	h.setSessionCookie(c, session.Token, session.ExpiresAt)
	return &SessionResponse{User: user, Session: session}, nil
}

func (h *UserHandler) Logout(c echo.Context, _ *EmptyRequest) error {
	h.setSessionCookie(c, "", time.Unix(0, 0))
	return nil
}

func (h *UserHandler) Me(c echo.Context, _ *EmptyRequest) (*model.User, error) {
	return h.users.Me(c.Request().Context(), middleware.GetUserID(c))
}

// setSessionCookie writes the session cookie; an empty token expires it.
func (h *UserHandler) setSessionCookie(c echo.Context, token string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.server.Config.Primary.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}
