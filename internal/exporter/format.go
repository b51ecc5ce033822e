package exporter

import (
	"fmt"
	"strings"
)

// Format selects the file type of an exported result
type Format string

// Supported formats
const (
	FormatXLSX    Format = "xlsx"
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// ParseFormat reads a format name. The empty string selects XLSX.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatParquet:
		return FormatParquet, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Extension returns the file extension without the dot
func (f Format) Extension() string { return string(f) }

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatParquet:
		return "application/vnd.apache.parquet"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
