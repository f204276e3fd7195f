package user

import (
	"context"
	"errors"
	"time"

	"gamelib/internal/auth"
)

const tokenTTL = 24 * time.Hour

type Service struct {
	repo   Repository
	secret string
}

func NewService(repo Repository, secret string) *Service {
	return &Service{repo: repo, secret: secret}
}

// Register creates a new account. A duplicate email yields ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return User{}, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	newUser := &User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		return User{}, err
	}
	return *newUser, nil
}

// Login verifies credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", User{}, ErrInvalidCredentials
		}
		return "", User{}, err
	}
	if !auth.VerifyPassword(u.Password, password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.secret, u.ID, tokenTTL)
	if err != nil {
		return "", User{}, err
	}
	return token, u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}
