package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "remove TITLE",
		Short: "Remove one book by exact title",
		Long:  "Remove matches titles by exact case-insensitive equality.\nWhen several books share the title, pass --index to pick one from the match list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			if title == "" {
				return fmt.Errorf("title cannot be empty")
			}

			catalog, st, err := ctx.loadCatalog()
			if err != nil {
				return err
			}
			if catalog.IsEmpty() {
				return fmt.Errorf("library is empty")
			}

			matches := catalog.FindTitle(title)
			switch {
			case len(matches) == 0:
				return fmt.Errorf("no book found with title %q", title)
			case len(matches) > 1 && index == 0:
				var sb strings.Builder
				fmt.Fprintf(&sb, "%d books share that title; rerun with --index N:\n", len(matches))
				for i, match := range matches {
					fmt.Fprintf(&sb, "  %d. %s by %s (%d)\n", i+1, match.Book.Title, match.Book.Author, match.Book.Year)
				}
				return fmt.Errorf("%s", strings.TrimRight(sb.String(), "\n"))
			case index < 0 || index > len(matches):
				return fmt.Errorf("--index must be between 1 and %d", len(matches))
			}

			target := matches[0]
			if index > 0 {
				target = matches[index-1]
			}
			removed, ok := catalog.RemoveAt(target.Position)
			if !ok {
				return fmt.Errorf("remove position %d out of range", target.Position)
			}
			if err := st.Save(catalog.Books()); err != nil {
				return fmt.Errorf("save library: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q by %s (%d books remain)\n", removed.Title, removed.Author, catalog.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "1-based position in the match list when titles are duplicated")

	return cmd
}
