package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"horario/internal/config"
)

// readListing loads the raw listing text from the given source: a file path
// or "-" for the command's stdin.
func readListing(cmd *cobra.Command, source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	path, err := config.ExpandPath(source)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read listing %q: %w", source, err)
	}
	return string(data), nil
}
