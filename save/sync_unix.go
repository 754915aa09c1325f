//go:build linux || freebsd

package save

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to disk. fdatasync skips the metadata flush,
// which the following rename takes care of.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
