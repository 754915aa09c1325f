package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShadwDrgn/d2skit/save"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List characters in the save directory",
		Long: `The list command prints every character with a .d2s file in --dir
(default: $D2S_SAVE_DIR or the game's save folder).

Example:
  d2sctl list
  d2sctl list --dir ./backups --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	dir := saveDir
	if dir == "" {
		d, err := save.DefaultDir()
		if err != nil {
			return err
		}
		dir = d
	}
	names, err := save.List(dir)
	if err != nil {
		return fmt.Errorf("failed to list saves: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"dir": dir, "characters": names})
	}
	printInfo("Characters in %s:\n", dir)
	for _, n := range names {
		printInfo("  %s\n", n)
	}
	return nil
}
