package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidvault/internal/store"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	var byFlag string
	var descFlag bool
	var saveFlag bool
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Show the library sorted; --save rewrites the stored order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := store.ParseSortKey(byFlag)
			if err != nil {
				return err
			}

			run := func(lib *library) error {
				if saveFlag {
					if err := lib.store.Reorder(key, !descFlag); err != nil {
						return err
					}
				}
				videos, err := lib.store.SortedBy(key, !descFlag)
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, videos)
				}
				if len(videos) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Library is empty.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderVideoTable(videos))
				if saveFlag {
					fmt.Fprintf(cmd.OutOrStdout(), "Stored order now sorted by %s.\n", key)
				}
				return nil
			}

			if saveFlag {
				return ctx.withLibrary(run)
			}
			return ctx.withLibraryRead(run)
		},
	}

	cmd.Flags().StringVar(&byFlag, "by", "title", "Sort key: id, title, duration, or added")
	cmd.Flags().BoolVar(&descFlag, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "Persist the sorted order to the library file")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit records as JSON")
	return cmd
}
