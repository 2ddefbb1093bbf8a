package auth

import (
	"context"
	"errors"
	"time"

	"bookreviews/internal/user"
)

// TokenTTL is how long a session token stays valid after login.
const TokenTTL = time.Hour

// ErrInvalidCredentials is returned when no account matches a login attempt.
var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	secret string
	users  user.Repository
}

func NewService(secret string, users user.Repository) *Service {
	return &Service{secret: secret, users: users}
}

// Register creates a new account. The repository enforces username
// uniqueness; a taken name surfaces as user.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password string) (user.User, error) {
	u := user.User{Username: username, Password: password}
	if err := s.users.Create(ctx, u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Login verifies credentials against the directory and issues a signed
// token bound to the username with a one-hour expiry.
func (s *Service) Login(ctx context.Context, username, password string) (string, int, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || u.Password != password {
		return "", 0, ErrInvalidCredentials
	}

	token, _, err := GenerateToken(s.secret, u.Username, TokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, int(TokenTTL.Seconds()), nil
}
