package auth

import (
	"context"
	"errors"
)

// Repository defines the contract for user storage.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, u *User) error
}

// Service performs the credential check. Authentication here is a plain
// yes/no answer; sessions and tokens are the presentation layer's problem.
type Service struct {
	repo Repository
}

// NewService creates a new auth service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Check verifies a username/password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Check(ctx context.Context, username, password string) (User, bool, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, false, nil
		}
		return User{}, false, err
	}
	if !VerifyPassword(u.PasswordHash, password) {
		return User{}, false, nil
	}
	return u, true, nil
}

// Register creates an account with a hashed password.
func (s *Service) Register(ctx context.Context, username, password, fullName string, role Role) (User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}
	u := User{Username: username, PasswordHash: hash, FullName: fullName, Role: role}
	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}
