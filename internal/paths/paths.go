// Package paths locates the database file inside the application data directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/julianstephens/growthbook/internal/constants"
	"github.com/julianstephens/growthbook/internal/errors"
)

// Resolver derives the database location. The zero value uses the platform's
// per-application data directory; BaseDir replaces that directory outright.
type Resolver struct {
	BaseDir string
}

// Dir returns the data directory, creating it and any missing parents.
func (r Resolver) Dir() (string, error) {
	dir := r.BaseDir
	if dir == "" {
		base, err := platformDataDir()
		if err != nil {
			return "", errors.Wrap(errors.ErrIO, "failed to get app data dir", err)
		}
		dir = filepath.Join(base, constants.AppIdentifier)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrIO, "failed to get app data dir", err)
	}

	if err := os.MkdirAll(abs, 0700); err != nil {
		return "", errors.Wrap(errors.ErrIO, "failed to create app data dir", err)
	}
	return abs, nil
}

// Resolve returns the absolute path of the database file. Safe to call repeatedly.
func (r Resolver) Resolve() (string, error) {
	dir, err := r.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.DBFileName), nil
}

// platformDataDir mirrors the conventional per-user data location:
// XDG_DATA_HOME (or ~/.local/share) on Unix, Application Support on macOS
// and %AppData% on Windows.
func platformDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "plan9":
		return os.UserConfigDir()
	}

	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		if !filepath.IsAbs(dir) {
			return "", fmt.Errorf("path in $XDG_DATA_HOME is relative")
		}
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}
