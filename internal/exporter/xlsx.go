package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"acctfilter/internal/table"
)

// SheetName is the worksheet every XLSX result is written to
const SheetName = "Sheet1"

// XLSXEncoder writes a table as a single-sheet workbook
type XLSXEncoder struct{}

// Encode writes t to w. Rows are streamed through excelize's StreamWriter,
// so memory use is bounded by the table itself rather than by the sheet XML.
func (XLSXEncoder) Encode(w io.Writer, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	header := make([]interface{}, t.Width())
	for i, name := range t.Columns() {
		header[i] = name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range t.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, rowValues(row)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// rowValues converts a row to the plain values excelize understands.
// Missing and non-finite cells are left empty.
func rowValues(r table.Row) []interface{} {
	out := make([]interface{}, len(r))
	for i, v := range r {
		if v.IsNonFinite() {
			continue
		}
		out[i] = v.Interface()
	}
	return out
}
