// Package service provides business logic for authentication and
// owner-scoped book management, delegating persistence to repository
// interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/bookshelf/internal/auth"
	"github.com/atinyakov/bookshelf/internal/common"
	"github.com/atinyakov/bookshelf/internal/models"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 12

// dummyHash is a valid bcrypt hash compared against when the login handle is
// unknown, so that the unknown-handle and wrong-password paths take the same
// time. Its result is always discarded.
var dummyHash = []byte("$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW")

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// CreateUser creates a new user record.
	CreateUser(ctx context.Context, user *models.User) error
	// FindUserByEmail returns the user with the given email,
	// or common.ErrNotFound if no such user exists.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService implements registration and login, issuing signed
// bearer tokens on success.
type AuthService struct {
	// repo performs the data-layer operations.
	repo UserRepository
	// secret signs issued tokens.
	secret []byte
	// tokenTTL is the validity duration of issued tokens.
	tokenTTL time.Duration
}

// NewAuthService constructs a new AuthService using the provided repository,
// signing secret, and token TTL.
func NewAuthService(repo UserRepository, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a user with a bcrypt-hashed password and returns a signed
// token for the new identity. The email is lower-cased before storage.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
}

// Login checks the credentials and returns a signed token on success.
// An unknown email and a wrong password both fail with
// common.ErrUnauthorized; the caller cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", common.ErrUnauthorized
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", common.ErrUnauthorized
	}

	return auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
}
