package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atinyakov/bookshelf/internal/auth"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

var testSecret = []byte("test-secret")

func TestBearerAuth_NoHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/books", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called without Authorization header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_BadScheme(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called with non-Bearer scheme")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called with an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_ExpiredToken(t *testing.T) {
	tok, err := auth.GenerateToken("u1", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called with an expired token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	tok, err := auth.GenerateToken("u42", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	dummy := &dummyHandler{}
	h := BearerAuth(testSecret)(dummy)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/books", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
	if got := GetUserIDFromContext(dummy.ctx); got != "u42" {
		t.Errorf("expected user id %q in context, got %q", "u42", got)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if got := GetUserIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty user id, got %q", got)
	}
}
