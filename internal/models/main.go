// Package models defines the core data structures for users and books.
package models

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Email is the login handle, stored lower-cased.
	Email string
	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized into any response payload.
	PasswordHash []byte
}

// Book represents a single book record belonging to one user.
type Book struct {
	// ID is the unique identifier for the book.
	ID string `json:"id"`
	// Title of the book.
	Title string `json:"title"`
	// Author of the book.
	Author string `json:"author"`
	// Description holds optional free-form notes.
	Description string `json:"description,omitempty"`
	// OwnerID is the id of the user who created the record.
	// Set once at creation from the authenticated identity.
	OwnerID string `json:"owner"`
}

// BookUpdate carries a partial set of field changes for a book.
// Nil fields are left unchanged.
type BookUpdate struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
}
