package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/atinyakov/bookshelf/internal/common"
	"github.com/atinyakov/bookshelf/internal/models"
)

// BookRepository defines the persistence operations needed by the BookService.
// Every id-addressed operation filters by both id and owner.
type BookRepository interface {
	// Insert persists a new book record and returns it.
	Insert(ctx context.Context, book *models.Book) (*models.Book, error)
	// ListByOwner retrieves all books belonging to the specified owner.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Book, error)
	// UpdateOwned applies a partial change to the book matching both id and
	// owner, returning common.ErrNotFound when no row matches.
	UpdateOwned(ctx context.Context, ownerID, id string, changes models.BookUpdate) (*models.Book, error)
	// DeleteOwned removes the book matching both id and owner,
	// returning common.ErrNotFound when no row matches.
	DeleteOwned(ctx context.Context, ownerID, id string) error
}

// BookService implements owner-scoped book management. Every operation takes
// the verified user id as an explicit argument; the owner of a record is set
// exactly once, at creation, from that identity.
type BookService struct {
	// repo is the underlying persistence repository.
	repo BookRepository
}

// NewBookService constructs a BookService with the provided BookRepository.
func NewBookService(repo BookRepository) *BookService {
	return &BookService{repo: repo}
}

// List returns all books owned by the user, in store order.
// The result is never nil so it encodes as a JSON array.
func (s *BookService) List(ctx context.Context, userID string) ([]models.Book, error) {
	books, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

// Create validates the input, stamps the authenticated user as owner, and
// persists the new record. Any owner supplied by the client is ignored.
func (s *BookService) Create(ctx context.Context, userID, title, author, description string) (*models.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" {
		return nil, fmt.Errorf("%w: title and author are required", common.ErrValidation)
	}

	book := &models.Book{
		ID:          uuid.NewString(),
		Title:       title,
		Author:      author,
		Description: description,
		OwnerID:     userID,
	}
	return s.repo.Insert(ctx, book)
}

// Update applies a partial field change to the user's book with the given id.
// Supplied fields must remain non-empty for title and author; omitted fields
// are left unchanged. An empty change set returns the stored record as is.
func (s *BookService) Update(ctx context.Context, userID, id string, changes models.BookUpdate) (*models.Book, error) {
	if changes.Title != nil && strings.TrimSpace(*changes.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", common.ErrValidation)
	}
	if changes.Author != nil && strings.TrimSpace(*changes.Author) == "" {
		return nil, fmt.Errorf("%w: author cannot be empty", common.ErrValidation)
	}
	return s.repo.UpdateOwned(ctx, userID, id, changes)
}

// Delete removes the user's book with the given id.
func (s *BookService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteOwned(ctx, userID, id)
}
