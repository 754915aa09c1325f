//go:build !linux && !freebsd && !darwin

package save

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
