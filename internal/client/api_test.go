package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/bookshelf/internal/models"
)

func TestClient_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@x.com", creds["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Login("a@x.com", "p1"))
	assert.True(t, c.Authenticated())
}

func TestClient_LoginFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Login("a@x.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
	assert.False(t, c.Authenticated())
}

func TestClient_BooksSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-2"})
		case "/api/books":
			require.Equal(t, "Bearer tok-2", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode([]models.Book{{ID: "b1", Title: "Dune", Author: "Herbert", OwnerID: "u1"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Login("a@x.com", "p1"))

	books, err := c.Books()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestClient_AddUpdateDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/books":
			var in map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			_ = json.NewEncoder(w).Encode(models.Book{ID: "b1", Title: in["title"], Author: in["author"], OwnerID: "u1"})
		case r.Method == http.MethodPut && r.URL.Path == "/api/books/b1":
			var changes models.BookUpdate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&changes))
			require.NotNil(t, changes.Title)
			_ = json.NewEncoder(w).Encode(models.Book{ID: "b1", Title: *changes.Title, Author: "Herbert", OwnerID: "u1"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/books/b1":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "book deleted"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	book, err := c.AddBook("Dune", "Herbert", "")
	require.NoError(t, err)
	assert.Equal(t, "b1", book.ID)

	title := "Dune Messiah"
	updated, err := c.UpdateBook("b1", models.BookUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	require.NoError(t, c.DeleteBook("b1"))
}

func TestClient_DeleteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteBook("ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPromptForBook(t *testing.T) {
	title, author, description := PromptForBook(strings.NewReader("Dune\nHerbert\nsand planet\n"))
	assert.Equal(t, "Dune", title)
	assert.Equal(t, "Herbert", author)
	assert.Equal(t, "sand planet", description)
}

func TestPromptBookUpdate_BlankKeepsFields(t *testing.T) {
	changes := PromptBookUpdate(strings.NewReader("\nLem\n\n"))
	assert.Nil(t, changes.Title)
	require.NotNil(t, changes.Author)
	assert.Equal(t, "Lem", *changes.Author)
	assert.Nil(t, changes.Description)
}
