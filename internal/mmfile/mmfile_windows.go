//go:build windows

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole file; save files are small enough that mapping buys nothing here.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.Size() > MaxSize {
		return nil, nil, fmt.Errorf("mmfile: %s is %d bytes, larger than %d", path, info.Size(), MaxSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
