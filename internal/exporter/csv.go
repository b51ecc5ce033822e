package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"acctfilter/internal/table"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVEncoder writes a table as comma separated text
type CSVEncoder struct {
	// NoBOM omits the UTF-8 byte order mark
	NoBOM bool
}

// Encode writes a header record followed by one record per row. Temporal
// cells are written as "2006-01-02", or with a time of day when they have one.
func (e CSVEncoder) Encode(w io.Writer, t *table.Table) error {
	if !e.NoBOM {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns()); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	record := make([]string, t.Width())
	for i, row := range t.Rows() {
		for c, v := range row {
			if v.IsNonFinite() {
				record[c] = ""
				continue
			}
			record[c] = v.String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
