package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"acctfilter/internal/shared/testutil"
)

func TestLoad(t *testing.T) {
	disbursed := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	closed := time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC)

	r := testutil.WorkbookReader(t,
		[]interface{}{"acct", "balance", "active", "disbursed", "closed", "note"},
		[]interface{}{"A1", 1500.5, true, disbursed, closed, "2024-03-05"},
		[]interface{}{"A2", 0, false, nil, nil},
	)

	tbl, err := Load(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"acct", "balance", "active", "disbursed", "closed", "note"}, tbl.Columns())
	require.Equal(t, 2, tbl.Len())

	row := tbl.Row(0)
	assert.Equal(t, Text("A1"), row[0])
	assert.Equal(t, Number(1500.5), row[1])
	assert.Equal(t, Bool(true), row[2])

	at, ok := row[3].Instant()
	require.True(t, ok, "date-styled numbers load as instants")
	assert.True(t, disbursed.Equal(at), "got %v", at)

	at, ok = row[4].Instant()
	require.True(t, ok)
	assert.True(t, closed.Equal(at.Round(time.Second)), "got %v", at)

	assert.Equal(t, Text("2024-03-05"), row[5], "text stays text until coerced")

	second := tbl.Row(1)
	assert.Equal(t, Number(0), second[1])
	assert.Equal(t, Bool(false), second[2])
	assert.True(t, second[3].IsMissing())
	assert.True(t, second[5].IsMissing(), "short rows are padded")
}

func TestLoadHeaderLabels(t *testing.T) {
	r := testutil.WorkbookReader(t,
		[]interface{}{"id", nil, "id", "id"},
		[]interface{}{"a", "b", "c", "d"},
	)

	tbl, err := Load(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "Unnamed: 1", "id.1", "id.2"}, tbl.Columns())
}

func TestLoadHeaderOnly(t *testing.T) {
	tbl, err := Load(testutil.WorkbookReader(t, []interface{}{"a", "b"}))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
}

func TestLoadCustomDateFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	format := "dd/mm/yyyy"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	require.NoError(t, err)
	amountFormat := `#,##0.00" d"`
	amount, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFormat})
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"maturity", "amount"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{45293, 45293}))
	require.NoError(t, f.SetCellStyle(sheet, "A2", "A2", style))
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B2", amount))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tbl, err := Load(&buf)
	require.NoError(t, err)

	at, ok := tbl.Row(0)[0].Instant()
	require.True(t, ok)
	assert.True(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Equal(at))
	assert.Equal(t, Number(45293), tbl.Row(0)[1], "quoted literals are not date tokens")
}

func TestLoadRejectsNonWorkbook(t *testing.T) {
	_, err := Load(strings.NewReader("acct,balance\nA1,100\n"))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "load spreadsheet")
}

func TestIsDateFormatCode(t *testing.T) {
	assert.True(t, isDateFormatCode("yyyy-mm-dd"))
	assert.True(t, isDateFormatCode("[$-409]d-mmm-yy;@"))
	assert.True(t, isDateFormatCode("hh:mm"))
	assert.False(t, isDateFormatCode("0.00"))
	assert.False(t, isDateFormatCode(`#,##0" days"`))
	assert.False(t, isDateFormatCode("[Red]0.00"))
	assert.False(t, isDateFormatCode(`0\d`))
}

func TestColumnLabels(t *testing.T) {
	assert.Equal(t, []string{"a", "Unnamed: 1", "Unnamed: 2"}, columnLabels([]string{"a"}, 3))
	assert.Equal(t, []string{"a", "a.1", "a.1.1"}, columnLabels([]string{"a", "a", "a.1"}, 3))
}
