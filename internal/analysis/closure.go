package analysis

import (
	"io"

	"acctfilter/internal/table"
)

// SameDayClosure keeps accounts whose disbursement and closure fall on the
// same calendar date. Rows where either date does not parse are dropped.
func SameDayClosure(t *table.Table, disbursementColumn, closureColumn string) (*table.Table, error) {
	idx, err := t.Lookup(
		table.Ref("disbursement_column", disbursementColumn),
		table.Ref("closure_date", closureColumn),
	)
	if err != nil {
		return nil, err
	}
	disbursed, closed := idx[0], idx[1]

	t.CoerceTime(disbursed)
	t.CoerceTime(closed)
	t = t.DropMissing(disbursed, closed)
	t.Sanitize()

	return t.Filter(func(r table.Row) bool {
		d, _ := r[disbursed].Instant()
		c, _ := r[closed].Instant()
		return table.SameDate(d, c)
	}), nil
}

// GetSameDayClosureDisbursement loads a workbook and applies SameDayClosure
func GetSameDayClosureDisbursement(r io.Reader, disbursementColumn, closureColumn string) (*table.Table, error) {
	t, err := table.Load(r)
	if err != nil {
		return nil, err
	}
	return SameDayClosure(t, disbursementColumn, closureColumn)
}
