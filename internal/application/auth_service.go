package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sarwaraminy/hostapi/internal/domain/entity"
	"github.com/sarwaraminy/hostapi/internal/domain/repository"
	"github.com/sarwaraminy/hostapi/pkg/apperr"
	"github.com/sarwaraminy/hostapi/pkg/helpers"
)

// Client-facing failure messages. Login deliberately reports the same
// message for an unknown email and a wrong password so callers cannot
// probe which emails exist.
var (
	errMissingCredentials = apperr.Validation("Email and password are required")
	errMissingFields      = apperr.Validation("All fields are required")
	errInvalidCredentials = apperr.Auth("Invalid email or password")
	errUserExists         = apperr.Conflict("User already exists")
)

// AuthService verifies and creates identities and issues session tokens.
// It holds no state between calls; every operation is a single
// validate -> lookup -> verify/create -> issue pipeline.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// AuthResult is what a successful signup returns: the session token and
// the public projection of the new user.
type AuthResult struct {
	Token string
	User  entity.PublicUser
}

// serverError logs the underlying failure and returns the uniform
// store-failure error; no internal detail reaches the caller.
func (s *AuthService) serverError(op string, err error) error {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("op", op).Error("auth store failure")
	}
	return apperr.Server("Server Error")
}

// Signup registers a new identity and issues a token bound to it.
// The email existence check and the insert are not one atomic step; the
// unique constraint on users.email is the authoritative guard, and a lost
// race surfaces as the same conflict as a plain duplicate.
func (s *AuthService) Signup(ctx context.Context, email, password, firstName, lastName string) (*AuthResult, error) {
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return nil, errMissingFields
	}

	_, err := s.Users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errUserExists
	case !errors.Is(err, repository.ErrNotFound):
		return nil, s.serverError("signup lookup", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, s.serverError("signup hash", err)
	}

	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errUserExists
		}
		return nil, s.serverError("signup insert", err)
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return nil, s.serverError("signup token", err)
	}
	return &AuthResult{Token: token, User: u.Public()}, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errMissingCredentials
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", errInvalidCredentials
		}
		return "", s.serverError("login lookup", err)
	}

	if !helpers.CheckPassword(u.PasswordHash, password) {
		return "", errInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID)
	if err != nil {
		return "", s.serverError("login token", err)
	}
	return token, nil
}

// UserByID loads the public projection for an authenticated user id.
func (s *AuthService) UserByID(ctx context.Context, id string) (*entity.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, s.serverError("user lookup", err)
	}
	pub := u.Public()
	return &pub, nil
}
