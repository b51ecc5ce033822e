package testutil

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Workbook renders rows into an XLSX document held in memory. The first row
// is the header; nil cells are left empty.
func Workbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, r := range rows {
		for c, v := range r {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

// WorkbookReader is Workbook wrapped in a reader
func WorkbookReader(t *testing.T, rows ...[]interface{}) *bytes.Reader {
	t.Helper()
	return bytes.NewReader(Workbook(t, rows...))
}

// Day returns midnight UTC of the given date
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LoanBookHeader is the header used by LoanBookRows
var LoanBookHeader = []interface{}{
	"CIF_ID", "ACCOUNT_NO", "DISBURSEMENT_DATE", "MATURITY_DATE", "CLOSURE_DATE",
	"WRITEOFF_DATE", "NPA_DATE", "BALANCE", "INT_RATE",
}

// LoanBookRows returns a small loan register, header included, that
// exercises every screening rule:
//
//	A1  C1  disbursed March 2024 and closed the same day, zero rate
//	A2  C1  written off, NPA, matured with a balance
//	A3  C2  matured with no balance
func LoanBookRows() [][]interface{} {
	return [][]interface{}{
		LoanBookHeader,
		{"C1", "A1", time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), Day(2026, 3, 10), time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC),
			nil, nil, 1200.5, 0},
		{"C1", "A2", Day(2022, 7, 1), Day(2023, 12, 31), nil,
			Day(2023, 11, 30), Day(2023, 9, 30), 830, 11.5},
		{"C2", "A3", Day(2024, 4, 2), Day(2023, 6, 30), nil,
			nil, nil, 0, 9.25},
	}
}
