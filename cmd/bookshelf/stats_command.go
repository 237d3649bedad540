package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show library statistics",
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

			stats := catalog.Stats()
			fmt.Fprintf(out, "Total books: %d\n", stats.Total)
			fmt.Fprintf(out, "Percentage read: %s\n", formatPercent(stats.PercentRead()))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderCountTable("Genre", stats.ByGenre))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderCountTable("Author", stats.ByAuthor))
			return nil
		},
	}
}
