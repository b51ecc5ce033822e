package analysis

import (
	"io"

	"acctfilter/internal/table"
)

// ZeroInterest keeps the rows whose rate column is exactly zero.
func ZeroInterest(t *table.Table, rateColumn string) (*table.Table, error) {
	idx, err := t.Lookup(table.Ref("int_rate_col", rateColumn))
	if err != nil {
		return nil, err
	}
	rate := idx[0]

	t.CoerceNumber(rate)
	t.Sanitize()
	return t.Filter(func(r table.Row) bool {
		v, ok := r[rate].Float()
		return ok && v == 0
	}), nil
}

// GetZeroInterestAccounts loads a workbook and applies ZeroInterest
func GetZeroInterestAccounts(r io.Reader, rateColumn string) (*table.Table, error) {
	t, err := table.Load(r)
	if err != nil {
		return nil, err
	}
	return ZeroInterest(t, rateColumn)
}
