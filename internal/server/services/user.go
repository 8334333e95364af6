// Package services contains the application services sitting between the
// HTTP layer and the repositories. Services own validation and the error
// taxonomy; they never expose raw database errors.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/akarpov87/taskkeep/internal/common"
	"github.com/akarpov87/taskkeep/internal/server/auth"
	"github.com/akarpov87/taskkeep/internal/server/config"
	"github.com/akarpov87/taskkeep/internal/server/models"
	"github.com/akarpov87/taskkeep/internal/server/repositories/users"
)

// AuthResult is what a successful login yields: a signed token plus the
// public user attributes.
type AuthResult struct {
	Token string
	User  *models.User
}

type UserService struct {
	repo          users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. The plaintext password only exists long
// enough to be hashed. Duplicate emails surface as common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password produce the same common.ErrorUnauthorized, so callers cannot probe
// which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}
