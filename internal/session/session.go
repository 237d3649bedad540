package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bookshelf/internal/library"
	"bookshelf/internal/logging"
	"bookshelf/internal/prompt"
	"bookshelf/internal/store"
)

// Options controls session presentation.
type Options struct {
	// ClearScreen redraws from a blank terminal before each menu display.
	ClearScreen bool
	// Colorize enables ANSI colors in banners and status lines.
	Colorize bool
}

// Session is the interactive menu loop over one catalog.
type Session struct {
	catalog *library.Catalog
	store   *store.Store
	prompt  *prompt.Reader
	out     io.Writer
	logger  *slog.Logger
	opts    Options
}

// New assembles a session. The catalog is owned by the session until Run
// returns; the store is only touched on exit.
func New(catalog *library.Catalog, st *store.Store, in io.Reader, out io.Writer, logger *slog.Logger, opts Options) *Session {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{
		catalog: catalog,
		store:   st,
		prompt:  prompt.New(in, out),
		out:     out,
		logger:  logging.WithComponent(logger, "session"),
		opts:    opts,
	}
}

// Run executes the menu loop until the user exits or input ends. An input
// stream ending mid-session returns io.EOF without saving; unsaved changes
// are deliberately lost.
func (s *Session) Run() error {
	for {
		s.clearScreen()
		s.renderMenu()

		choice, err := s.prompt.IntInRange("\nEnter your choice: ", 1, 6)
		if err != nil {
			return s.interrupted(err)
		}

		if choice == choiceExit {
			s.saveAndFarewell()
			return nil
		}

		switch choice {
		case choiceAdd:
			err = s.addBook()
		case choiceRemove:
			err = s.removeBook()
		case choiceSearch:
			err = s.searchBooks()
		case choiceList:
			s.listBooks()
		case choiceStats:
			s.showStatistics()
		}
		if err != nil {
			return s.interrupted(err)
		}

		if err := s.prompt.Acknowledge("\nPress Enter to continue..."); err != nil {
			return s.interrupted(err)
		}
	}
}

const (
	choiceAdd = iota + 1
	choiceRemove
	choiceSearch
	choiceList
	choiceStats
	choiceExit
)

func (s *Session) interrupted(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Warn("input ended before exit, unsaved changes lost",
			logging.Int("book_count", s.catalog.Len()))
	}
	return err
}

func (s *Session) saveAndFarewell() {
	if err := s.store.Save(s.catalog.Books()); err != nil {
		fmt.Fprintf(s.out, "\nError saving library: %v\n", err)
		fmt.Fprintln(s.out, "Changes were not persisted. Goodbye!")
		s.logger.Error("save on exit failed", logging.Error(err))
		return
	}
	fmt.Fprintln(s.out, "\nLibrary saved to file. Goodbye!")
	s.logger.Info("library saved on exit", logging.Int("book_count", s.catalog.Len()))
}

func (s *Session) addBook() error {
	s.banner("Add a New Book")

	title, err := s.prompt.Text("Enter the book title: ")
	if err != nil {
		return err
	}
	author, err := s.prompt.Text("Enter the author: ")
	if err != nil {
		return err
	}
	year, err := s.prompt.Int("Enter the publication year: ")
	if err != nil {
		return err
	}
	genre, err := s.prompt.Text("Enter the genre: ")
	if err != nil {
		return err
	}
	read, err := s.prompt.YesNo("Have you read this book? (yes/no): ")
	if err != nil {
		return err
	}

	s.catalog.Add(library.Book{Title: title, Author: author, Year: year, Genre: genre, Read: read})
	fmt.Fprintln(s.out, "\nBook added successfully!")
	s.logger.Info("book added",
		logging.String("title", title),
		logging.Int("book_count", s.catalog.Len()))
	return nil
}

func (s *Session) removeBook() error {
	if s.catalog.IsEmpty() {
		fmt.Fprintln(s.out, "\nYour library is empty!")
		return nil
	}

	s.banner("Remove a Book")

	title, err := s.prompt.Text("Enter the title of the book to remove: ")
	if err != nil {
		return err
	}

	matches := s.catalog.FindTitle(title)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "\nNo book found with title '%s'\n", title)
		return nil
	}

	target := matches[0]
	if len(matches) > 1 {
		fmt.Fprintln(s.out, "\nMultiple books found with that title:")
		for i, match := range matches {
			fmt.Fprintf(s.out, "%d. %s by %s (%d)\n", i+1, match.Book.Title, match.Book.Author, match.Book.Year)
		}
		choice, err := s.prompt.IntInRange("Enter the number of the book to remove: ", 1, len(matches))
		if err != nil {
			return err
		}
		target = matches[choice-1]
	}

	if _, ok := s.catalog.RemoveAt(target.Position); !ok {
		return fmt.Errorf("remove position %d out of range", target.Position)
	}
	fmt.Fprintln(s.out, "\nBook removed successfully!")
	s.logger.Info("book removed",
		logging.String("title", target.Book.Title),
		logging.Int("book_count", s.catalog.Len()))
	return nil
}

func (s *Session) searchBooks() error {
	if s.catalog.IsEmpty() {
		fmt.Fprintln(s.out, "\nYour library is empty!")
		return nil
	}

	s.banner("Search for a Book")
	fmt.Fprintln(s.out, "Search by:")
	fmt.Fprintln(s.out, "1. Title")
	fmt.Fprintln(s.out, "2. Author")

	choice, err := s.prompt.IntInRange("Enter your choice: ", 1, 2)
	if err != nil {
		return err
	}

	field := library.SearchByTitle
	termPrompt := "Enter the search term: "
	if choice == 2 {
		field = library.SearchByAuthor
		termPrompt = "Enter the author's name: "
	}
	term, err := s.prompt.Text(termPrompt)
	if err != nil {
		return err
	}

	matches := s.catalog.Search(field, term)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "\nNo matching books found.")
		return nil
	}

	fmt.Fprintf(s.out, "\nFound %d matching book(s):\n", len(matches))
	for i, match := range matches {
		fmt.Fprintln(s.out, match.Book.Summary(i+1))
	}
	s.logger.Debug("search complete",
		logging.String("term", term),
		logging.Int("match_count", len(matches)))
	return nil
}

func (s *Session) listBooks() {
	if s.catalog.IsEmpty() {
		fmt.Fprintln(s.out, "\nYour library is empty!")
		return
	}

	s.banner("Your Library")
	for i, b := range s.catalog.Books() {
		fmt.Fprintln(s.out, b.Summary(i+1))
	}
}

func (s *Session) showStatistics() {
	if s.catalog.IsEmpty() {
		fmt.Fprintln(s.out, "\nYour library is empty!")
		return
	}

	stats := s.catalog.Stats()

	s.banner("Library Statistics")
	fmt.Fprintf(s.out, "Total books: %d\n", stats.Total)
	fmt.Fprintf(s.out, "Percentage read: %.1f%%\n", stats.PercentRead())

	fmt.Fprintln(s.out, "\nBooks by genre:")
	for _, bucket := range stats.ByGenre {
		fmt.Fprintf(s.out, "- %s: %d\n", bucket.Value, bucket.Count)
	}
	fmt.Fprintln(s.out, "\nBooks by author:")
	for _, bucket := range stats.ByAuthor {
		fmt.Fprintf(s.out, "- %s: %d\n", bucket.Value, bucket.Count)
	}
}
