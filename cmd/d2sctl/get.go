package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <save> <attribute>",
		Short: "Print one attribute value",
		Long: `The get command prints the displayed value of a single attribute.
Attribute names are matched case-insensitively. HP, mana and stamina are
shown in whole points.

Example:
  d2sctl get Hero Strength
  d2sctl get Hero maxhp --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	path, d, err := openSave(args[0])
	if err != nil {
		return err
	}
	value, err := d.Get(args[1])
	if err != nil {
		return fmt.Errorf("failed to get attribute: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"save":      path,
			"attribute": args[1],
			"value":     value,
		})
	}
	printInfo("%d\n", value)
	return nil
}
