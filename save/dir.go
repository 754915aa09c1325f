package save

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/ShadwDrgn/d2skit/internal/format"
)

// EnvSaveDir overrides DefaultDir when set.
const EnvSaveDir = "D2S_SAVE_DIR"

// DefaultDir resolves the directory the game keeps its saves in.
func DefaultDir() (string, error) {
	if dir := os.Getenv(EnvSaveDir); dir != "" {
		return dir, nil
	}
	if runtime.GOOS == "windows" {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "Saved Games", "Diablo II"), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("save: cannot resolve save directory; set " + EnvSaveDir)
	}
	return filepath.Join(home, "Saved Games", "Diablo II"), nil
}

// PathFor returns the save file path for a character name in dir.
func PathFor(dir, name string) string {
	return filepath.Join(dir, name+format.FileExt)
}

// List returns the character names with a save file in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), format.FileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), format.FileExt))
	}
	slices.Sort(names)
	return names, nil
}
