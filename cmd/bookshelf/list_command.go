package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every book in catalog order",
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

			fmt.Fprintln(out, renderBookTable(allMatches(catalog)))
			return nil
		},
	}
}
