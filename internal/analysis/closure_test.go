package analysis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctfilter/internal/shared/testutil"
	"acctfilter/internal/table"
)

func TestSameDayClosure(t *testing.T) {
	tbl := table.MustNew([]string{"acct", "disbursed", "closed"},
		table.Row{table.Text("A1"), table.Text("2024-05-01T09:00"), table.Text("2024-05-01T17:00")},
		table.Row{table.Text("A2"), table.Text("2024-05-01"), table.Text("2024-05-02")},
		table.Row{table.Text("A3"), table.Text("2024-05-01"), table.Missing()},
		table.Row{table.Text("A4"), table.Text("bad"), table.Text("2024-05-01")},
		table.Row{table.Text("A5"),
			table.Time(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)),
			table.Text("06/03/2024 23:59")},
	)

	out, err := SameDayClosure(tbl, "disbursed", "closed")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A5"}, accounts(t, out, "acct"))
}

func TestSameDayClosureUnknownColumn(t *testing.T) {
	tbl := table.MustNew([]string{"disbursed", "closed"})

	_, err := SameDayClosure(tbl, "disbursed", "closure")
	var colErr *table.ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "closure_date", colErr.Parameter)
}

func TestGetSameDayClosureDisbursement(t *testing.T) {
	r := testutil.WorkbookReader(t,
		[]interface{}{"acct", "disbursed", "closed"},
		[]interface{}{"A1", time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)},
		[]interface{}{"A2", date(2024, 5, 1), date(2024, 5, 2)},
	)

	out, err := GetSameDayClosureDisbursement(r, "disbursed", "closed")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, accounts(t, out, "acct"))
}
