// Package main initializes and starts the bookshelf HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services, handlers, and routing.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/bookshelf/internal/config"
	"github.com/atinyakov/bookshelf/internal/db"
	"github.com/atinyakov/bookshelf/internal/logger"
	"github.com/atinyakov/bookshelf/internal/repository"
	"github.com/atinyakov/bookshelf/internal/server/handler/http"
	"github.com/atinyakov/bookshelf/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	dbName := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// The signing secret is process-wide configuration, loaded once.
	if options.JWTSecret == "" {
		zapLogger.Fatal("token signing secret is required (-s flag or JWT_SECRET)")
	}
	secret := []byte(options.JWTSecret)

	// Initialize PostgreSQL connection.
	postgressDB, err := db.InitPostgres(dbName)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Purge soft-deleted books in the background.
	db.StartSoftDeleteCleaner(context.Background(), postgressDB,
		time.Hour,       // interval
		30*24*time.Hour, // retention: 30 days
		zapLogger,
	)

	// Initialize repositories for users and books.
	userRepo := repository.NewPostgresUserRepository(postgressDB)
	bookRepo := repository.NewPostgresBookRepository(postgressDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, secret, options.TokenTTL)
	bookService := service.NewBookService(bookRepo)

	// Create HTTP handlers for auth and book endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	bookHandler := &http.BookHandler{BookService: bookService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, bookHandler, secret, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
