package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/apperr"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/auth"
	"github.com/SuryawanshiKatUHV/ExpenseTracker-sub000/internal/models"
)

// AuthService handles registration and login, issuing JWT session tokens.
type AuthService struct {
	authenticator *auth.PasswordAuthenticator
	jwt           *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(authenticator *auth.PasswordAuthenticator, jwt *auth.JWTManager) *AuthService {
	return &AuthService{authenticator: authenticator, jwt: jwt}
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,min=1,max=50"`
	LastName  string `json:"lastName" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginInput carries the fields of a login request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is a signed session token plus the authenticated user.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a user account and returns a session token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Register(ctx, in.Email, in.FirstName, in.LastName, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return nil, apperr.Conflictf("email already registered")
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, apperr.Validationf("password", "must be at least 8 characters")
		default:
			return nil, err
		}
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID)
	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials and returns a session token.
// Invalid credentials surface as auth.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := checkInput(in); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, err
	}

	slog.Info("user logged in", "user_id", user.ID)
	return &AuthResult{Token: token, User: user}, nil
}
