package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidvault/internal/store"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var tagsFlag string
	var durationFlag string
	var notesFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "add <title> <url>",
		Short: "Add a video to the library",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(lib *library) error {
				video, err := lib.store.Add(args[0], args[1], store.AddOptions{
					Duration: durationFlag,
					Notes:    notesFlag,
					Tags:     splitTags(tagsFlag),
				})
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, video)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added video #%d (%s)\n", video.ID, video.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tagsFlag, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&durationFlag, "duration", "", "Duration, e.g. 5:34")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the added record as JSON")
	return cmd
}
