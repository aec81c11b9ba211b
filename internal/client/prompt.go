package client

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atinyakov/bookshelf/internal/models"
)

// readLine prints the label and reads one trimmed line.
func readLine(r *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimSpace(line)
}

// PromptCredentials reads an email and password from in.
func PromptCredentials(in io.Reader) (email, password string) {
	r := bufio.NewReader(in)
	email = readLine(r, "Email: ")
	password = readLine(r, "Password: ")
	return email, password
}

// PromptForBook reads the fields of a new book from in.
func PromptForBook(in io.Reader) (title, author, description string) {
	r := bufio.NewReader(in)
	title = readLine(r, "Title: ")
	author = readLine(r, "Author: ")
	description = readLine(r, "Description (optional): ")
	return title, author, description
}

// PromptBookUpdate reads a partial field set from in.
// Empty answers leave the corresponding field unchanged.
func PromptBookUpdate(in io.Reader) models.BookUpdate {
	r := bufio.NewReader(in)
	var changes models.BookUpdate
	if v := readLine(r, "New title (blank to keep): "); v != "" {
		changes.Title = &v
	}
	if v := readLine(r, "New author (blank to keep): "); v != "" {
		changes.Author = &v
	}
	if v := readLine(r, "New description (blank to keep): "); v != "" {
		changes.Description = &v
	}
	return changes
}
