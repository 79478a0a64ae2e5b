package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every video in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibraryRead(func(lib *library) error {
				videos := lib.store.List()
				if jsonFlag {
					return writeJSON(cmd, videos)
				}
				if len(videos) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Library is empty. Add a video with 'vidvault add'.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderVideoTable(videos))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit records as JSON")
	return cmd
}
