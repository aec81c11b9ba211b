package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/bookshelf/internal/common"
	"github.com/atinyakov/bookshelf/internal/middleware"
	"github.com/atinyakov/bookshelf/internal/models"
)

// BookService defines the interface for owner-scoped book operations
// required by the BookHandler. Every method takes the verified user id.
type BookService interface {
	// List returns all books owned by the user.
	List(ctx context.Context, userID string) ([]models.Book, error)
	// Create persists a new book owned by the user.
	Create(ctx context.Context, userID, title, author, description string) (*models.Book, error)
	// Update applies a partial change to the user's book with the given id.
	Update(ctx context.Context, userID, id string, changes models.BookUpdate) (*models.Book, error)
	// Delete removes the user's book with the given id.
	Delete(ctx context.Context, userID, id string) error
}

// BookHandler handles HTTP requests for book management.
// All routes are mounted behind the bearer-auth middleware, which places the
// authenticated user id in the request context.
type BookHandler struct {
	BookService BookService
}

// createBookRequest is the JSON payload for creating a book. It carries no
// owner field; the owner is always the authenticated user.
type createBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// List handles GET /api/books requests.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)
	if userID == "" {
		writeError(w, common.ErrUnauthorized)
		return
	}

	books, err := h.BookService.List(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, books)
}

// Create handles POST /api/books requests.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)
	if userID == "" {
		writeError(w, common.ErrUnauthorized)
		return
	}

	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	book, err := h.BookService.Create(ctx, userID, req.Title, req.Author, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, book)
}

// Update handles PUT /api/books/{id} requests. The body is a partial field
// set; omitted fields keep their stored values.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)
	if userID == "" {
		writeError(w, common.ErrUnauthorized)
		return
	}

	var changes models.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	book, err := h.BookService.Update(ctx, userID, chi.URLParam(r, "id"), changes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, book)
}

// Delete handles DELETE /api/books/{id} requests.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)
	if userID == "" {
		writeError(w, common.ErrUnauthorized)
		return
	}

	if err := h.BookService.Delete(ctx, userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"message": "book deleted"})
}
