package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctfilter/internal/shared/testutil"
	"acctfilter/internal/table"
)

func TestMaturedWithBalance(t *testing.T) {
	tbl := table.MustNew([]string{"acct", "maturity", "balance"},
		table.Row{table.Text("A1"), table.Text("2023-12-31"), table.Number(0)},
		table.Row{table.Text("A2"), table.Text("2023-12-31"), table.Number(100)},
		table.Row{table.Text("A3"), table.Text("unknown"), table.Number(500)},
		table.Row{table.Text("A4"), table.Text("2024-01-01"), table.Text("2,500.00")},
		table.Row{table.Text("A5"), table.Text("2024-01-02"), table.Number(900)},
		table.Row{table.Text("A6"), table.Text("2023-06-30"), table.Number(math.NaN())},
		table.Row{table.Text("A7"), table.Text("2023-06-30"), table.Missing()},
		table.Row{table.Text("A8"), table.Text("2023-06-30"), table.Number(-10)},
		table.Row{table.Text("A9"), table.Text("2023-06-30"), table.Text("n/a")},
	)

	out, err := MaturedWithBalance(tbl, "maturity", "balance", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, []string{"A2", "A4"}, accounts(t, out, "acct"))
	assert.Equal(t, table.Number(2500), out.Row(1)[2], "balances are returned as numbers")
}

func TestMaturedWithBalanceDropsUnparseableMaturity(t *testing.T) {
	tbl := table.MustNew([]string{"maturity", "balance"},
		table.Row{table.Text("??"), table.Number(1e9)},
		table.Row{table.Bool(true), table.Number(1e9)},
	)

	out, err := MaturedWithBalance(tbl, "maturity", "balance", "2030-01-01")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, []string{"maturity", "balance"}, out.Columns())
}

func TestMaturedWithBalanceErrors(t *testing.T) {
	tbl := table.MustNew([]string{"maturity", "balance"})

	_, err := MaturedWithBalance(tbl, "maturity", "bal", "2024-01-01")
	var colErr *table.ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "balance_col", colErr.Parameter)

	_, err = MaturedWithBalance(tbl, "maturity", "balance", "end of year")
	var paramErr *table.ParameterError
	require.True(t, errors.As(err, &paramErr))
	assert.Equal(t, "cutoff_date", paramErr.Parameter)
}

func TestGetMaturedWithBalance(t *testing.T) {
	r := testutil.WorkbookReader(t,
		[]interface{}{"acct", "maturity", "balance"},
		[]interface{}{"A1", date(2023, 12, 31), 0},
		[]interface{}{"A2", date(2023, 12, 31), 100},
		[]interface{}{"A3", "pending", 100},
	)

	out, err := GetMaturedWithBalance(r, "maturity", "balance", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"A2"}, accounts(t, out, "acct"))
}
