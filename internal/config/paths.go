package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds resolved absolute directories
type Paths struct {
	OutputDir string
	LogsDir   string
}

// ResolvePaths makes the configured directories absolute against base.
// An empty base means the working directory.
func (c *Config) ResolvePaths(base string) (*Paths, error) {
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}
	return &Paths{
		OutputDir: resolve(base, c.Paths.OutputDir),
		LogsDir:   resolve(base, c.Paths.LogsDir),
	}, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// EnsureDirectories creates every directory that does not exist yet
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// OutputPath returns the location of a result file
func (p *Paths) OutputPath(name string) string {
	return filepath.Join(p.OutputDir, name)
}

// FileExists reports whether path exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
