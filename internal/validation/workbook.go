package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator checks local input and output locations before a run
type PathValidator struct {
	logger *slog.Logger
}

// NewPathValidator creates a validator; a nil logger means slog.Default
func NewPathValidator(logger *slog.Logger) *PathValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &PathValidator{logger: logger.With(slog.String("component", "path_validator"))}
}

// ValidateWorkbook checks that path names a readable, non-empty .xlsx file
// that is not an Office lock file
func (v *PathValidator) ValidateWorkbook(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Workbook does not exist", slog.String("file", path))
		return fmt.Errorf("workbook %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat workbook %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a workbook", path)
	}

	// Legacy .xls is a different container format.
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".xlsx" {
		v.logger.Error("Not an XLSX workbook",
			slog.String("file", path),
			slog.String("extension", ext))
		return fmt.Errorf("%s is not an .xlsx workbook (extension %q)", path, ext)
	}
	if strings.HasPrefix(filepath.Base(path), "~$") {
		return fmt.Errorf("%s is an Excel lock file", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("workbook %s is empty", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("workbook %s is not readable: %w", path, err)
	}
	f.Close()

	v.logger.Debug("Workbook validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputDirectory creates dir when missing and proves it writable
func (v *PathValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".write_test_*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
