// internal/fileio/files.go
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"liftprep/internal/diag"
)

// Modes for written files and directories.
const (
	PermFile os.FileMode = 0o644
	PermDir  os.FileMode = 0o755
	PermExec os.FileMode = 0o755
)

// Create opens path for writing, truncating any existing file.
func Create(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, PermFile)
	return f, diag.WrapIO(err)
}

// OpenAppend opens path for appending, creating it if absent.
func OpenAppend(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, PermFile)
	return f, diag.WrapIO(err)
}

// WriteFile writes data to path (truncating) with perm, and applies perm
// even when the file already existed.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return diag.WrapIO(err)
	}
	return diag.WrapIO(os.Chmod(path, perm))
}

// EnsureDir creates dir (and parents) if missing. created reports whether
// anything was made; an existing directory is not an error.
func EnsureDir(dir string) (created bool, err error) {
	st, err := os.Stat(dir)
	switch {
	case err == nil && st.IsDir():
		return false, nil
	case err == nil:
		return false, diag.WrapIO(fmt.Errorf("%s exists and is not a directory", dir))
	case !errors.Is(err, fs.ErrNotExist):
		return false, diag.WrapIO(err)
	}
	if err := os.MkdirAll(dir, PermDir); err != nil {
		return false, diag.WrapIO(err)
	}
	return true, nil
}

// RequireDir fails with an I/O error unless dir is an existing directory.
func RequireDir(dir string) error {
	st, err := os.Stat(dir)
	if err != nil {
		return diag.WrapIO(err)
	}
	if !st.IsDir() {
		return diag.WrapIO(fmt.Errorf("%s is not a directory", dir))
	}
	return nil
}
