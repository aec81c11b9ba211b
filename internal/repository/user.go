// Package repository provides persistence implementations for user and book
// storage using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/bookshelf/internal/common"
	"github.com/atinyakov/bookshelf/internal/models"
)

// PostgresUserRepository implements user persistence against a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// CreateUser inserts a new user record.
// Returns common.ErrValidation if the email is already taken.
func (s *PostgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.DB.ExecContext(
		ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
		user.ID, user.Email, user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", common.ErrValidation)
		}
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}

// FindUserByEmail looks up a user by their (lower-cased) email.
// Returns common.ErrNotFound if no such user exists.
func (s *PostgresUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT id, email, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("FindUserByEmail: %w", err)
	}
	return &user, nil
}
