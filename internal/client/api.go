// Package client implements a typed HTTP client for the bookshelf API,
// used by the interactive command-line client.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/atinyakov/bookshelf/internal/models"
)

// Client talks to the bookshelf API, attaching the bearer token obtained at
// login to every protected request.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

// New creates an API client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{http: &http.Client{}, baseURL: baseURL}
}

// Authenticated reports whether a login or registration has succeeded.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// apiError decodes the server's generic failure payload.
func apiError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Message == "" {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return fmt.Errorf("server: %s", payload.Message)
}

func (c *Client) do(method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) authenticate(path, email, password string) error {
	var payload struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, path, credentials{Email: email, Password: password}, &payload); err != nil {
		return err
	}
	c.token = payload.Token
	return nil
}

// Login obtains and stores a bearer token for the given credentials.
func (c *Client) Login(email, password string) error {
	return c.authenticate("/api/auth/login", email, password)
}

// Register creates an account and stores the returned bearer token.
func (c *Client) Register(email, password string) error {
	return c.authenticate("/api/auth/register", email, password)
}

// Books lists the caller's book records.
func (c *Client) Books() ([]models.Book, error) {
	var books []models.Book
	if err := c.do(http.MethodGet, "/api/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// AddBook creates a book record and returns the stored record.
func (c *Client) AddBook(title, author, description string) (*models.Book, error) {
	in := map[string]string{"title": title, "author": author, "description": description}
	var book models.Book
	if err := c.do(http.MethodPost, "/api/books", in, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook applies a partial change to the book with the given id.
func (c *Client) UpdateBook(id string, changes models.BookUpdate) (*models.Book, error) {
	var book models.Book
	if err := c.do(http.MethodPut, "/api/books/"+id, changes, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes the book with the given id.
func (c *Client) DeleteBook(id string) error {
	return c.do(http.MethodDelete, "/api/books/"+id, nil, nil)
}
