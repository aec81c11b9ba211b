// Package http provides the HTTP handlers and routing for the bookshelf API.
package http

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user and returns a signed bearer token.
	Register(ctx context.Context, email, password string) (string, error)
	// Login checks the credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the JSON payload returned on successful authentication.
type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/auth/register requests.
// It expects a JSON body with "email" and "password" and responds
// with a token for the newly created user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, tokenResponse{Token: token})
}

// Login handles POST /api/auth/login requests.
// It expects a JSON body with "email" and "password" and responds with a
// token on success. Bad credentials always yield 401 with the same body,
// whether the email is unknown or the password is wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, tokenResponse{Token: token})
}
