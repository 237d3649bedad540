package library

import (
	"errors"
	"fmt"
	"strings"
)

// Book is a single catalog entry. Every field is populated before the record
// enters the catalog; partial records never exist.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// Validate ensures the text fields are non-empty. Year deliberately accepts
// any integer.
func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if strings.TrimSpace(b.Author) == "" {
		return errors.New("author cannot be empty")
	}
	if strings.TrimSpace(b.Genre) == "" {
		return errors.New("genre cannot be empty")
	}
	return nil
}

// ReadStatus reports the read flag as display text.
func (b Book) ReadStatus() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// Summary renders the one-line form shared by the search and list operations.
func (b Book) Summary(position int) string {
	return fmt.Sprintf("%d. %s by %s (%d) - %s - %s", position, b.Title, b.Author, b.Year, b.Genre, b.ReadStatus())
}
