package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles, URLs, notes, and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibraryRead(func(lib *library) error {
				hits := lib.store.Search(args[0])
				if jsonFlag {
					return writeJSON(cmd, hits)
				}
				if len(hits) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No matches found.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderVideoTable(hits))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit matches as JSON")
	return cmd
}
