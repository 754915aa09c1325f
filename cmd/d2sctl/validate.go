package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShadwDrgn/d2skit/save"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <save>",
		Short: "Check the attribute section and checksum",
		Long: `The validate command parses the attribute section, checks that the
skill section is present and compares the stored checksum with the computed
one. It also checks that the stored name matches the file name.

Example:
  d2sctl validate Hero
  d2sctl validate ./Hero.d2s --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
	path, err := resolveSave(args[0])
	if err != nil {
		return err
	}
	printVerbose("Validating save: %s\n", path)

	result := map[string]any{"file": path}
	checkErr := validate(path, result)
	result["valid"] = checkErr == nil
	if checkErr != nil {
		result["error"] = checkErr.Error()
	}

	if jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
		return checkErr
	}

	printInfo("\nValidating %s...\n\n", path)
	if checkErr != nil {
		printInfo("  ✗ %v\n", checkErr)
		printInfo("\nResult: ✗ INVALID\n")
		return checkErr
	}
	printInfo("  ✓ Attribute section valid\n")
	printInfo("  ✓ Checksum matches\n")
	printInfo("  ✓ Name matches file name\n")
	printInfo("\nResult: ✓ VALID\n")
	return nil
}

func validate(path string, result map[string]any) error {
	d, err := save.Open(path)
	if err != nil {
		return err
	}
	result["stored_checksum"] = d.StoredChecksum()
	result["computed_checksum"] = d.ComputedChecksum()
	if !d.ChecksumOK() {
		return fmt.Errorf("checksum mismatch: stored=0x%08X computed=0x%08X",
			uint32(d.StoredChecksum()), uint32(d.ComputedChecksum()))
	}
	if d.Name() != d.Identity() {
		return fmt.Errorf("stored name %q does not match file name %q", d.Name(), d.Identity())
	}
	return nil
}
