package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid video id %q: expected a positive integer", raw)
	}
	return id, nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// confirm asks the user to type "yes" on interactive terminals. On
// non-interactive input it refuses, so scripts must pass --yes explicitly.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	if file, ok := cmd.InOrStdin().(*os.File); !ok || !isatty.IsTerminal(file.Fd()) {
		return false, fmt.Errorf("refusing to prompt on non-interactive input; pass --yes to confirm")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}
