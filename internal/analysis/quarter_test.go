package analysis

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctfilter/internal/shared/testutil"
	"acctfilter/internal/table"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuarterEnd(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2024, 1, 1), date(2024, 3, 31)},
		{date(2024, 2, 29), date(2024, 3, 31)},
		{date(2024, 4, 1), date(2024, 6, 30)},
		{date(2024, 6, 15), date(2024, 6, 30)},
		{date(2024, 6, 30), date(2024, 6, 30)},
		{date(2024, 8, 2), date(2024, 9, 30)},
		{date(2024, 12, 31), date(2024, 12, 31)},
		{time.Date(2024, 11, 3, 14, 30, 0, 0, time.UTC), time.Date(2024, 12, 31, 14, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in.Format(time.RFC3339), func(t *testing.T) {
			assert.Equal(t, tt.want, QuarterEnd(tt.in))
		})
	}
}

func TestQuarterCutoff(t *testing.T) {
	assert.Equal(t, date(2024, 4, 1), QuarterCutoff(date(2024, 6, 15)))
	assert.Equal(t, date(2024, 1, 1), QuarterCutoff(date(2024, 3, 1)), "leap year")
	assert.Equal(t, date(2022, 12, 31), QuarterCutoff(date(2023, 2, 10)))
}

func TestFilterByQuarter(t *testing.T) {
	tbl := table.MustNew([]string{"acct", "opened"},
		table.Row{table.Text("A1"), table.Text("2024-04-01")},
		table.Row{table.Text("A2"), table.Text("2024-03-31")},
		table.Row{table.Text("A3"), table.Time(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC))},
		table.Row{table.Text("A4"), table.Text("not a date")},
		table.Row{table.Text("A5"), table.Missing()},
		table.Row{table.Text("A6"), table.Text("2024-09-01")},
	)

	out, err := FilterByQuarter(tbl, "opened", "2024-06-15")
	require.NoError(t, err)

	assert.Equal(t, []string{"acct", "opened"}, out.Columns())
	assert.Equal(t, []string{"A1", "A6"}, accounts(t, out, "acct"))

	at, ok := out.Row(0)[1].Instant()
	require.True(t, ok, "the date column is returned coerced")
	assert.Equal(t, date(2024, 4, 1), at)
}

func TestParseQuarter(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024Q2", date(2024, 4, 1)},
		{"2024-Q2", date(2024, 4, 1)},
		{"2024q4", date(2024, 10, 1)},
		{" 2023 Q1 ", date(2023, 1, 1)},
		{"2024-06", date(2024, 6, 1)},
		{"June 2024", date(2024, 6, 1)},
		{"2024-06-15", date(2024, 6, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuarter(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestFilterByQuarterDesignators(t *testing.T) {
	for _, quarter := range []string{"2024Q2", "2024-Q2", "2024-06", "June 2024"} {
		t.Run(quarter, func(t *testing.T) {
			tbl := table.MustNew([]string{"acct", "opened"},
				table.Row{table.Text("A1"), table.Text("2024-04-01")},
				table.Row{table.Text("A2"), table.Text("2024-03-31")},
				table.Row{table.Text("A3"), table.Text("2024-09-01")},
			)

			out, err := FilterByQuarter(tbl, "opened", quarter)
			require.NoError(t, err)
			assert.Equal(t, []string{"A1", "A3"}, accounts(t, out, "acct"))
		})
	}
}

func TestFilterByQuarterErrors(t *testing.T) {
	tbl := table.MustNew([]string{"opened"}, table.Row{table.Text("2024-04-01")})

	_, err := FilterByQuarter(tbl, "missing", "2024-06-15")
	var colErr *table.ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "date_column", colErr.Parameter)

	for _, bad := range []string{"Q2", "2024Q5", "2024-Q0", "next quarter"} {
		_, err = FilterByQuarter(tbl, "opened", bad)
		var paramErr *table.ParameterError
		require.True(t, errors.As(err, &paramErr), bad)
		assert.Equal(t, "quarter_str", paramErr.Parameter)
	}
}

func TestLoadAndFilterByQuarter(t *testing.T) {
	r := testutil.WorkbookReader(t,
		[]interface{}{"acct", "opened"},
		[]interface{}{"A1", date(2024, 4, 1)},
		[]interface{}{"A2", date(2024, 3, 31)},
	)

	out, err := LoadAndFilterByQuarter(r, "opened", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, accounts(t, out, "acct"))
}

func TestLoadAndFilterByQuarterBadStream(t *testing.T) {
	_, err := LoadAndFilterByQuarter(bytes.NewReader([]byte("plain text")), "opened", "2024-06-15")
	var loadErr *table.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

// accounts returns the string form of one column, row by row
func accounts(t *testing.T, tbl *table.Table, column string) []string {
	t.Helper()
	col, err := tbl.Column(column)
	require.NoError(t, err)
	out := make([]string, len(col))
	for i, v := range col {
		out[i] = v.String()
	}
	return out
}
