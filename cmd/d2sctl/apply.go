package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShadwDrgn/d2skit/save"
)

var (
	applyBackup bool
	applyDryRun bool
)

func init() {
	cmd := newApplyCmd()
	cmd.Flags().BoolVar(&applyBackup, "backup", true, "Create backup")
	cmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Apply the plan in memory only")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <save> <plan.yaml>",
		Short: "Apply a YAML edit plan to a save",
		Long: `The apply command reads a YAML plan and applies it in one pass:

  name: Tempest          # optional, writes <name>.d2s next to the original
  class: Sorceress       # optional
  level: 30              # optional, header level byte
  attributes:            # optional, displayed values
    Strength: 80
    MaxMana: 120

Example:
  d2sctl apply Hero plan.yaml
  d2sctl apply Hero plan.yaml --dry-run --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
}

func runApply(args []string) error {
	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("failed to open plan: %w", err)
	}
	defer f.Close()
	edits, err := save.ParseEdits(f)
	if err != nil {
		return err
	}

	path, d, err := openSave(args[0])
	if err != nil {
		return err
	}
	if err := edits.Apply(d); err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	target := siblingPath(path, d)
	if !applyDryRun {
		if err := save.Write(target, d, &save.WriteOptions{CreateBackup: applyBackup}); err != nil {
			return fmt.Errorf("failed to write save: %w", err)
		}
	}

	if jsonOut {
		return printJSON(map[string]any{
			"save":       target,
			"attributes": d.Attributes().Named(),
			"written":    !applyDryRun,
		})
	}

	printInfo("\nApplied %s to %s\n", args[1], path)
	if target != path {
		printInfo("  Saved as: %s\n", target)
	}
	printAttributes(d)
	if applyDryRun {
		printInfo("\nDry run: nothing written\n")
	}
	return nil
}
