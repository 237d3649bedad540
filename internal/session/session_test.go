package session_test

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"bookshelf/internal/library"
	"bookshelf/internal/session"
	"bookshelf/internal/store"
)

func runScript(t *testing.T, books []library.Book, script string) (*library.Catalog, *store.Store, string, error) {
	t.Helper()

	st := store.New(filepath.Join(t.TempDir(), "library.json"), nil)
	catalog := library.New(books)
	var out bytes.Buffer

	s := session.New(catalog, st, strings.NewReader(script), &out, nil, session.Options{})
	err := s.Run()
	return catalog, st, out.String(), err
}

func seedBooks() []library.Book {
	return []library.Book{
		{Title: "Harry Potter", Author: "J.K. Rowling", Year: 1997, Genre: "Fantasy", Read: true},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: 1937, Genre: "Fantasy", Read: false},
	}
}

func TestAddThenExitPersists(t *testing.T) {
	// add, five fields, acknowledge, exit
	script := strings.Join([]string{
		"1",
		"Dune",
		"Frank Herbert",
		"1965",
		"Sci-Fi",
		"no",
		"",
		"6",
	}, "\n") + "\n"

	catalog, st, out, err := runScript(t, nil, script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("catalog length = %d, want 1", catalog.Len())
	}
	if !strings.Contains(out, "Book added successfully!") {
		t.Errorf("missing add confirmation: %q", out)
	}
	if !strings.Contains(out, "Library saved to file. Goodbye!") {
		t.Errorf("missing farewell: %q", out)
	}

	saved, err := st.Load()
	if err != nil {
		t.Fatalf("Load after exit: %v", err)
	}
	want := library.Book{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Sci-Fi", Read: false}
	if len(saved) != 1 || saved[0] != want {
		t.Errorf("persisted records = %+v, want [%+v]", saved, want)
	}
}

func TestRemoveSingleMatch(t *testing.T) {
	script := "2\nthe hobbit\n\n6\n"

	catalog, _, out, err := runScript(t, seedBooks(), script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("catalog length = %d, want 1", catalog.Len())
	}
	if catalog.Books()[0].Title != "Harry Potter" {
		t.Errorf("wrong record removed, remaining: %q", catalog.Books()[0].Title)
	}
	if !strings.Contains(out, "Book removed successfully!") {
		t.Errorf("missing remove confirmation: %q", out)
	}
}

func TestRemoveNoMatchLeavesCatalogIntact(t *testing.T) {
	script := "2\nNonexistent\n\n6\n"

	catalog, _, out, err := runScript(t, seedBooks(), script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if catalog.Len() != 2 {
		t.Errorf("catalog mutated: length = %d, want 2", catalog.Len())
	}
	if !strings.Contains(out, "No book found with title 'Nonexistent'") {
		t.Errorf("missing lookup message: %q", out)
	}
}

func TestRemoveDisambiguatesDuplicates(t *testing.T) {
	books := append(seedBooks(),
		library.Book{Title: "harry potter", Author: "Someone Else", Year: 2001, Genre: "Parody", Read: false})
	// Two case-insensitive matches; pick the second listed one.
	script := "2\nHarry Potter\n2\n\n6\n"

	catalog, _, out, err := runScript(t, books, script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Multiple books found with that title:") {
		t.Fatalf("missing disambiguation listing: %q", out)
	}
	if catalog.Len() != 2 {
		t.Fatalf("catalog length = %d, want 2", catalog.Len())
	}
	for _, b := range catalog.Books() {
		if b.Author == "Someone Else" {
			t.Error("selected duplicate not removed")
		}
	}
}

func TestRemoveOnEmptyLibrary(t *testing.T) {
	script := "2\n\n6\n"

	_, _, out, err := runScript(t, nil, script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Your library is empty!") {
		t.Errorf("missing empty message: %q", out)
	}
}

func TestSearchByTitleSubstring(t *testing.T) {
	script := "3\n1\nhar\n\n6\n"

	_, _, out, err := runScript(t, seedBooks(), script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Found 1 matching book(s):") {
		t.Errorf("missing match count: %q", out)
	}
	if !strings.Contains(out, "1. Harry Potter by J.K. Rowling (1997) - Fantasy - Read") {
		t.Errorf("missing summary line: %q", out)
	}
	if strings.Contains(out, "The Hobbit by") {
		t.Errorf("non-matching record listed: %q", out)
	}
}

func TestSearchNoMatches(t *testing.T) {
	script := "3\n2\nAsimov\n\n6\n"

	_, _, out, err := runScript(t, seedBooks(), script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "No matching books found.") {
		t.Errorf("missing no-match message: %q", out)
	}
}

func TestListAllBooks(t *testing.T) {
	script := "4\n\n6\n"

	_, _, out, err := runScript(t, seedBooks(), script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Your Library") {
		t.Errorf("missing list banner: %q", out)
	}
	if !strings.Contains(out, "1. Harry Potter by J.K. Rowling (1997) - Fantasy - Read") ||
		!strings.Contains(out, "2. The Hobbit by J.R.R. Tolkien (1937) - Fantasy - Unread") {
		t.Errorf("missing summaries: %q", out)
	}
}

func TestStatisticsOutput(t *testing.T) {
	books := []library.Book{
		{Title: "A", Author: "W", Year: 1, Genre: "g", Read: true},
		{Title: "B", Author: "X", Year: 2, Genre: "g"},
		{Title: "C", Author: "Y", Year: 3, Genre: "h"},
		{Title: "D", Author: "Z", Year: 4, Genre: "h"},
	}
	script := "5\n\n6\n"

	_, _, out, err := runScript(t, books, script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Total books: 4") {
		t.Errorf("missing total: %q", out)
	}
	if !strings.Contains(out, "Percentage read: 25.0%") {
		t.Errorf("missing percentage: %q", out)
	}
	if !strings.Contains(out, "- g: 2") || !strings.Contains(out, "- h: 2") {
		t.Errorf("missing genre buckets: %q", out)
	}
}

func TestStatisticsOnEmptyLibrary(t *testing.T) {
	script := "5\n\n6\n"

	_, _, out, err := runScript(t, nil, script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "Your library is empty!") {
		t.Errorf("missing empty message: %q", out)
	}
	if strings.Contains(out, "Percentage read:") {
		t.Errorf("percentage computed for empty library: %q", out)
	}
}

func TestMenuRejectsInvalidChoices(t *testing.T) {
	script := "9\nabc\n4\n\n6\n"

	_, _, out, err := runScript(t, seedBooks(), script)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := strings.Count(out, "Invalid input:"); n != 2 {
		t.Errorf("got %d rejections, want 2: %q", n, out)
	}
	if !strings.Contains(out, "Your Library") {
		t.Errorf("valid choice after rejections not dispatched: %q", out)
	}
}

func TestEOFEndsSessionWithoutSaving(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "library.json"), nil)
	catalog := library.New(seedBooks())
	var out bytes.Buffer

	s := session.New(catalog, st, strings.NewReader(""), &out, nil, session.Options{})
	if err := s.Run(); !errors.Is(err, io.EOF) {
		t.Fatalf("Run returned %v, want io.EOF", err)
	}

	if books, err := st.Load(); err != nil || len(books) != 0 {
		t.Errorf("store written on abnormal termination: books=%d err=%v", len(books), err)
	}
}
