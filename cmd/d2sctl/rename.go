package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShadwDrgn/d2skit/save"
)

var renameRemoveOld bool

func init() {
	cmd := newRenameCmd()
	cmd.Flags().BoolVar(&renameRemoveOld, "remove-old", false, "Delete the save under the old name")
	rootCmd.AddCommand(cmd)
}

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <save> <new-name>",
		Short: "Rename a character",
		Long: `The rename command writes the new name into the header and saves the
character as <new-name>.d2s in the same directory. The game refuses saves
whose file name differs from the stored name, so both always change together.

Example:
  d2sctl rename Hero Tempest
  d2sctl rename Hero Tempest --remove-old`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(args)
		},
	}
}

func runRename(args []string) error {
	path, d, err := openSave(args[0])
	if err != nil {
		return err
	}
	oldName := d.Name()
	if err := d.SetName(args[1]); err != nil {
		return fmt.Errorf("failed to rename: %w", err)
	}
	target := siblingPath(path, d)
	if _, err := os.Stat(target); err == nil && target != path {
		return fmt.Errorf("failed to rename: %s already exists", target)
	}
	if err := save.Write(target, d, &save.WriteOptions{}); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	removed := false
	if renameRemoveOld && target != path {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove old save: %w", err)
		}
		removed = true
	}

	if jsonOut {
		return printJSON(map[string]any{
			"old":     oldName,
			"new":     d.Name(),
			"save":    target,
			"removed": removed,
		})
	}
	printInfo("\n✓ Renamed %s to %s\n", oldName, d.Name())
	printInfo("  Saved as: %s\n", target)
	return nil
}
