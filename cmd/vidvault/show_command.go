package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one video in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withLibraryRead(func(lib *library) error {
				video, err := lib.store.Get(id)
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, video)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "ID:       %d\n", video.ID)
				fmt.Fprintf(out, "Title:    %s\n", video.Title)
				fmt.Fprintf(out, "URL:      %s\n", video.URL)
				if video.Duration != "" {
					fmt.Fprintf(out, "Duration: %s\n", video.Duration)
				}
				if len(video.Tags) > 0 {
					fmt.Fprintf(out, "Tags:     %s\n", strings.Join(video.Tags, ", "))
				}
				if video.Notes != "" {
					fmt.Fprintf(out, "Notes:    %s\n", video.Notes)
				}
				if !video.AddedAt.IsZero() {
					fmt.Fprintf(out, "Added:    %s\n", video.AddedAt.Format(time.RFC3339))
				}
				if !video.UpdatedAt.IsZero() {
					fmt.Fprintf(out, "Updated:  %s\n", video.UpdatedAt.Format(time.RFC3339))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the record as JSON")
	return cmd
}
