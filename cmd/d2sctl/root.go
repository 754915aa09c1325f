package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ShadwDrgn/d2skit/internal/format"
	"github.com/ShadwDrgn/d2skit/internal/logger"
	"github.com/ShadwDrgn/d2skit/save"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	saveDir string
	logDir  string
)

var rootCmd = &cobra.Command{
	Use:   "d2sctl",
	Short: "Inspect and edit character save files",
	Long: `d2sctl reads character save files, reports their header fields and
attributes, and rewrites attribute values in place while preserving every
skill, item and stash byte. Saves are re-checksummed on write.

A <save> argument is either a path to a .d2s file or a bare character name,
which is looked up in --dir (default: $D2S_SAVE_DIR or the game's save folder).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{
			Enabled: verbose || logDir != "",
			LogDir:  logDir,
			Level:   slog.LevelDebug,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&saveDir, "dir", "", "Save directory for bare character names")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Append JSON debug logs to a dated file in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveSave turns a <save> argument into a file path.
func resolveSave(arg string) (string, error) {
	if strings.HasSuffix(arg, format.FileExt) || strings.ContainsAny(arg, `/\`) {
		return arg, nil
	}
	dir := saveDir
	if dir == "" {
		d, err := save.DefaultDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	return save.PathFor(dir, arg), nil
}

// openSave resolves and opens a <save> argument.
func openSave(arg string) (string, *save.Document, error) {
	path, err := resolveSave(arg)
	if err != nil {
		return "", nil, err
	}
	printVerbose("Opening save: %s\n", path)
	d, err := save.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open save: %w", err)
	}
	return path, d, nil
}

// siblingPath is where d is written when it lives next to path.
func siblingPath(path string, d *save.Document) string {
	return filepath.Join(filepath.Dir(path), d.Filename())
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(msg string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, msg, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(msg string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, msg, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
