package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInputNotFound = errors.New("input file not found")
	ErrBadExtension  = errors.New("input file has wrong extension")
)

// CheckInput verifies that path is an existing regular file whose extension
// matches ext, ignoring case.
func CheckInput(path, ext string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ext) {
		return fmt.Errorf("%w: %s (want %s)", ErrBadExtension, path, ext)
	}
	return nil
}

// Path returns the output path for input: its stem plus suffix, inside dir.
func Path(input, dir, suffix string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+suffix)
}

// WriteFile creates the parent directory of path when needed and writes
// data atomically.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return writeFileAtomic(path, data, 0644)
}
