package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"acctfilter/internal/config"
	apierrors "acctfilter/internal/errors"
	"acctfilter/internal/table"
)

// Encoder serializes a table to a stream
type Encoder interface {
	Encode(w io.Writer, t *table.Table) error
}

// EncoderFor returns the encoder of a format
func EncoderFor(f Format) (Encoder, error) {
	switch f {
	case FormatXLSX, "":
		return XLSXEncoder{}, nil
	case FormatCSV:
		return CSVEncoder{}, nil
	case FormatParquet:
		return ParquetEncoder{}, nil
	}
	return nil, fmt.Errorf("unsupported export format %q", f)
}

// Result describes a saved file
type Result struct {
	Name   string
	Path   string
	Format Format
	Rows   int
	Bytes  int64
}

// Exporter saves results into the output directory
type Exporter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// New creates an exporter writing below paths.OutputDir
func New(paths *config.Paths, logger *slog.Logger) *Exporter {
	return &Exporter{
		paths:  paths,
		logger: logger.With(slog.String("component", "exporter")),
	}
}

// FileName builds "<base>_<uuid hex>.<ext>"
func FileName(base string, f Format) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s.%s", base, id, f.Extension())
}

// Save writes t to a freshly named file in the output directory. A partial
// file is removed when encoding fails.
func (e *Exporter) Save(ctx context.Context, base string, format Format, t *table.Table) (*Result, error) {
	enc, err := EncoderFor(format)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = FormatXLSX
	}

	if err := os.MkdirAll(e.paths.OutputDir, 0o755); err != nil {
		return nil, apierrors.NewStorageError("failed to create output directory", err).
			WithContext("dir", e.paths.OutputDir)
	}

	name := FileName(base, format)
	path := e.paths.OutputPath(name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, apierrors.NewStorageError("failed to create "+name, err).WithContext("path", path)
	}

	cw := &countingWriter{w: file}
	if err := enc.Encode(cw, t); err != nil {
		file.Close()
		os.Remove(path)
		return nil, apierrors.NewExportError("failed to encode "+name, err).WithContext("rows", t.Len())
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return nil, apierrors.NewStorageError("failed to close "+name, err).WithContext("path", path)
	}

	e.logger.InfoContext(ctx, "result saved",
		slog.String("file", name),
		slog.String("format", string(format)),
		slog.Int("rows", t.Len()),
		slog.Int64("bytes", cw.n))

	return &Result{
		Name:   name,
		Path:   path,
		Format: format,
		Rows:   t.Len(),
		Bytes:  cw.n,
	}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
