package save

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShadwDrgn/d2skit/internal/format"
	"github.com/ShadwDrgn/d2skit/internal/logger"
	"github.com/ShadwDrgn/d2skit/internal/mmfile"
	"github.com/ShadwDrgn/d2skit/pkg/types"
)

// WriteOptions controls how Write persists a document.
type WriteOptions struct {
	// CreateBackup copies the existing file to <path>.bak before replacing it.
	CreateBackup bool

	// NoSync skips flushing the temporary file to stable storage before the
	// rename. Only useful for tests and scratch directories.
	NoSync bool
}

// Load returns a private copy of the file at path.
func Load(path string) ([]byte, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("save: load %s: %w", path, err)
	}
	defer release()

	logger.L.Debug("loaded save", "path", path, "bytes", len(data))
	return bytes.Clone(data), nil
}

// Open loads and parses the save at path. The file name (without the
// extension) becomes the document identity.
func Open(path string) (*Document, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.identity = stem(path)
	return d, nil
}

// Write finalizes d and atomically replaces the file at path. The base name
// of path must match the document identity; on mismatch nothing is written.
func Write(path string, d *Document, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}
	if s := stem(path); s != d.identity {
		return fmt.Errorf("save: write %s as %q: %w", path, d.identity, types.ErrNameMismatch)
	}
	data, err := d.FinalizeForSave()
	if err != nil {
		return err
	}

	if opts.CreateBackup && isRegular(path) {
		backupPath := path + ".bak"
		if err := backupSave(path, backupPath); err != nil {
			return err
		}
		logger.L.Debug("created backup", "path", backupPath)
	}

	tempPath := path + ".tmp"
	if err := writeFile(tempPath, data, !opts.NoSync); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("save: write temporary file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("save: replace %s: %w", path, err)
	}

	logger.L.Debug("wrote save", "path", path, "bytes", len(data), "checksum", d.StoredChecksum())
	return nil
}

// Save writes d into dir under its Filename and returns the path written.
func Save(dir string, d *Document, opts *WriteOptions) (string, error) {
	path := filepath.Join(dir, d.Filename())
	return path, Write(path, d, opts)
}

func writeFile(path string, data []byte, durable bool) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if durable {
		if err := syncFile(f); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), format.FileExt)
}

// backupSave copies the save at path to dst, keeping its permissions.
func backupSave(path, dst string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("save: open %s: %w", path, err)
	}
	defer src.Close()
	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("save: stat %s: %w", path, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("save: create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("save: copy %s to %s: %w", path, dst, err)
	}
	return out.Close()
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
