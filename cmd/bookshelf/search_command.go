package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookshelf/internal/library"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var byAuthor bool

	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search books by title or author substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if catalog.IsEmpty() {
				fmt.Fprintln(out, "Your library is empty!")
				return nil
			}

			field := library.SearchByTitle
			if byAuthor {
				field = library.SearchByAuthor
			}
			matches := catalog.Search(field, args[0])
			if len(matches) == 0 {
				fmt.Fprintln(out, "No matching books found.")
				return nil
			}

			fmt.Fprintf(out, "Found %d matching book(s):\n", len(matches))
			fmt.Fprintln(out, renderBookTable(matches))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byAuthor, "author", false, "Match against the author field instead of the title")

	return cmd
}
