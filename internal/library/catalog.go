package library

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchField selects which Book field a search inspects.
type SearchField int

const (
	SearchByTitle SearchField = iota + 1
	SearchByAuthor
)

// foldString case-folds for matching so comparisons work beyond ASCII. A
// cases.Caser is stateful, so construct one per call rather than sharing.
func foldString(s string) string {
	return cases.Fold().String(s)
}

// Match pairs a book with its 1-based catalog position at match time.
type Match struct {
	Position int
	Book     Book
}

// Catalog is the ordered in-memory collection for one session.
type Catalog struct {
	books []Book
}

// New builds a catalog over the provided records, preserving their order.
// The slice is adopted, not copied; callers hand over ownership.
func New(books []Book) *Catalog {
	return &Catalog{books: books}
}

// Add appends a record. Duplicate titles are permitted.
func (c *Catalog) Add(b Book) {
	c.books = append(c.books, b)
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	return len(c.books)
}

// IsEmpty reports whether the catalog holds no records.
func (c *Catalog) IsEmpty() bool {
	return len(c.books) == 0
}

// Books returns a copy of the records in catalog order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// FindTitle returns every record whose title equals the given title under
// case folding, in catalog order. Used by removal, which needs exact matches.
func (c *Catalog) FindTitle(title string) []Match {
	folded := foldString(title)
	var matches []Match
	for i, b := range c.books {
		if foldString(b.Title) == folded {
			matches = append(matches, Match{Position: i + 1, Book: b})
		}
	}
	return matches
}

// Search returns every record whose selected field contains the term under
// case folding, in catalog order.
func (c *Catalog) Search(field SearchField, term string) []Match {
	folded := foldString(term)
	var matches []Match
	for i, b := range c.books {
		value := b.Title
		if field == SearchByAuthor {
			value = b.Author
		}
		if strings.Contains(foldString(value), folded) {
			matches = append(matches, Match{Position: i + 1, Book: b})
		}
	}
	return matches
}

// RemoveAt deletes the record at the given 1-based position and returns it.
// Positions outside [1, Len] leave the catalog untouched.
func (c *Catalog) RemoveAt(position int) (Book, bool) {
	if position < 1 || position > len(c.books) {
		return Book{}, false
	}
	removed := c.books[position-1]
	c.books = append(c.books[:position-1], c.books[position:]...)
	return removed, true
}
