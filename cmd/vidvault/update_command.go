package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidvault/internal/store"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var titleFlag string
	var urlFlag string
	var tagsFlag string
	var durationFlag string
	var notesFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a video; only supplied flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var fields store.Fields
			flags := cmd.Flags()
			if flags.Changed("title") {
				fields.Title = &titleFlag
			}
			if flags.Changed("url") {
				fields.URL = &urlFlag
			}
			if flags.Changed("duration") {
				fields.Duration = &durationFlag
			}
			if flags.Changed("notes") {
				fields.Notes = &notesFlag
			}
			if flags.Changed("tags") {
				tags := splitTags(tagsFlag)
				fields.Tags = &tags
			}
			if fields == (store.Fields{}) {
				return fmt.Errorf("nothing to update: pass at least one of --title, --url, --duration, --notes, --tags")
			}

			return ctx.withLibrary(func(lib *library) error {
				video, err := lib.store.Update(id, fields)
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, video)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated video #%d (%s)\n", video.ID, video.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "New title")
	cmd.Flags().StringVar(&urlFlag, "url", "", "New URL")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "Comma-separated tags (replaces existing)")
	cmd.Flags().StringVar(&durationFlag, "duration", "", "New duration")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "New notes")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the updated record as JSON")
	return cmd
}
