package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInnerJoin(t *testing.T) {
	left := MustNew([]string{"cif", "acct", "branch"},
		Row{Text("C1"), Text("A1"), Text("north")},
		Row{Text("C2"), Text("A3"), Text("south")},
		Row{Missing(), Text("A9"), Text("east")},
	)
	right := MustNew([]string{"acct", "cif", "writeoff"},
		Row{Text("A2"), Text("C1"), Text("2024-02-01")},
		Row{Text("A4"), Text("C1"), Text("2024-03-01")},
		Row{Text("A8"), Missing(), Text("2024-04-01")},
	)

	out, err := InnerJoin(left, right, "cif")
	require.NoError(t, err)

	assert.Equal(t, []string{"cif", "acct_x", "branch", "acct_y", "writeoff"}, out.Columns())
	require.Equal(t, 2, out.Len(), "missing keys never pair and C2 has no partner")

	assert.Equal(t, "C1", out.Row(0)[0].String())
	assert.Equal(t, "A1", out.Row(0)[1].String())
	assert.Equal(t, "A2", out.Row(0)[3].String())
	assert.Equal(t, "A4", out.Row(1)[3].String(), "right order is kept per left row")
}

func TestInnerJoinCrossProduct(t *testing.T) {
	left := MustNew([]string{"k", "v"}, Row{Number(1), Text("l1")}, Row{Number(1), Text("l2")})
	right := MustNew([]string{"k", "v"}, Row{Number(1), Text("r1")}, Row{Number(1), Text("r2")})

	out, err := InnerJoin(left, right, "k")
	require.NoError(t, err)
	require.Equal(t, 4, out.Len())

	var pairs []string
	for _, r := range out.Rows() {
		pairs = append(pairs, r[1].String()+"/"+r[2].String())
	}
	assert.Equal(t, []string{"l1/r1", "l1/r2", "l2/r1", "l2/r2"}, pairs)
}

func TestInnerJoinUnknownKey(t *testing.T) {
	left := MustNew([]string{"a"})
	right := MustNew([]string{"b"})

	_, err := InnerJoin(left, right, "a")
	var colErr *ColumnError
	assert.ErrorAs(t, err, &colErr)
}
