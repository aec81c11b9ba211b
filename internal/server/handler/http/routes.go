package http

import (
	"net/http"

	"github.com/atinyakov/bookshelf/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the bookshelf API. It applies JSON content-type enforcement and
// request logging, and mounts the auth endpoints publicly and the
// book endpoints behind bearer-token authentication.
//
// Parameters:
//
//	authHandler - handler for registration and login endpoints
//	bookHandler - handler for book CRUD endpoints
//	secret      - key used to verify bearer tokens
//	logger      - structured logger for request logging middleware
//
// Routes:
//
//	POST   /api/auth/register → authHandler.Register
//	POST   /api/auth/login    → authHandler.Login
//	GET    /api/books         → bookHandler.List   (protected)
//	POST   /api/books         → bookHandler.Create (protected)
//	PUT    /api/books/{id}    → bookHandler.Update (protected)
//	DELETE /api/books/{id}    → bookHandler.Delete (protected)
func NewRouter(
	authHandler *AuthHandler,
	bookHandler *BookHandler,
	secret []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Protected group: requires a valid bearer token
		r.Route("/books", func(r chi.Router) {
			r.Use(middleware.BearerAuth(secret))
			r.Get("/", bookHandler.List)
			r.Post("/", bookHandler.Create)
			r.Put("/{id}", bookHandler.Update)
			r.Delete("/{id}", bookHandler.Delete)
		})
	})

	return r
}
