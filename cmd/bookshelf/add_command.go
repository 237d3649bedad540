package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookshelf/internal/library"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var book library.Book

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a book to the library",
		Example: `  bookshelf add --title "The Hobbit" --author "J.R.R. Tolkien" --year 1937 --genre Fantasy --read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := book.Validate(); err != nil {
				return err
			}

			catalog, st, err := ctx.loadCatalog()
			if err != nil {
				return err
			}
			catalog.Add(book)
			if err := st.Save(catalog.Books()); err != nil {
				return fmt.Errorf("save library: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%d books in library)\n", book.Title, catalog.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&book.Title, "title", "", "Book title")
	cmd.Flags().StringVar(&book.Author, "author", "", "Author name")
	cmd.Flags().IntVar(&book.Year, "year", 0, "Publication year")
	cmd.Flags().StringVar(&book.Genre, "genre", "", "Genre")
	cmd.Flags().BoolVar(&book.Read, "read", false, "Mark the book as read")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("genre")

	return cmd
}
