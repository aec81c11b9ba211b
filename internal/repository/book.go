package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atinyakov/bookshelf/internal/common"
	"github.com/atinyakov/bookshelf/internal/models"
)

// PostgresBookRepository implements book persistence against a PostgreSQL database.
//
// Every statement that addresses a book by id also filters by owner_id, so a
// record owned by someone else is indistinguishable from a missing one.
// Deletion is a soft delete; all reads exclude deleted rows.
type PostgresBookRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresBookRepository creates a new PostgresBookRepository using the provided *sql.DB.
// db must be a valid connection to a PostgreSQL instance.
func NewPostgresBookRepository(db *sql.DB) *PostgresBookRepository {
	return &PostgresBookRepository{DB: db}
}

// Insert persists a new book record and returns it.
//
//	ctx:  context for cancellation and deadlines
//	book: record to insert; ID and OwnerID must already be set
func (s *PostgresBookRepository) Insert(ctx context.Context, book *models.Book) (*models.Book, error) {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO books (id, owner_id, title, author, description, deleted)
		VALUES ($1, $2, $3, $4, $5, false)
	`, book.ID, book.OwnerID, book.Title, book.Author, book.Description)
	if err != nil {
		return nil, fmt.Errorf("Insert: %w", err)
	}
	return book, nil
}

// ListByOwner fetches all non-deleted books belonging to the given owner.
//
//	ctx:     context for cancellation and deadlines
//	ownerID: identifier of the owning user
//
// Returns a slice of models.Book or an error if the query or scanning fails.
func (s *PostgresBookRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Book, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, title, author, description, owner_id FROM books WHERE owner_id = $1 AND deleted = false
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Description, &b.OwnerID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return books, nil
}

// UpdateOwned applies a partial field change to the book matching both id and
// owner in a single statement. Nil fields keep their stored values, so an
// empty change set rewrites the row with itself and returns it unchanged.
//
// Returns common.ErrNotFound when no row matches the compound predicate.
func (s *PostgresBookRepository) UpdateOwned(ctx context.Context, ownerID, id string, changes models.BookUpdate) (*models.Book, error) {
	var book models.Book
	err := s.DB.QueryRowContext(ctx, `
		UPDATE books SET
			title = COALESCE($3, title),
			author = COALESCE($4, author),
			description = COALESCE($5, description)
		WHERE id = $1 AND owner_id = $2 AND deleted = false
		RETURNING id, title, author, description, owner_id
	`, id, ownerID, changes.Title, changes.Author, changes.Description).
		Scan(&book.ID, &book.Title, &book.Author, &book.Description, &book.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("UpdateOwned: %w", err)
	}
	return &book, nil
}

// DeleteOwned soft-deletes the book matching both id and owner.
// The row is purged later by the cleaner once past retention.
//
// Returns common.ErrNotFound when no row matches the compound predicate.
func (s *PostgresBookRepository) DeleteOwned(ctx context.Context, ownerID, id string) error {
	var deleted string
	err := s.DB.QueryRowContext(ctx, `
		UPDATE books SET deleted = true, deleted_at = $3
		WHERE id = $1 AND owner_id = $2 AND deleted = false
		RETURNING id
	`, id, ownerID, time.Now().Unix()).Scan(&deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrNotFound
		}
		return fmt.Errorf("DeleteOwned: %w", err)
	}
	return nil
}
