package analysis

import (
	"io"

	"acctfilter/internal/table"
)

// MaturedWithBalance keeps accounts that matured on or before cutoff and
// still hold a balance strictly greater than zero. Rows whose maturity date
// does not parse are removed before anything else is considered; a missing
// or non-numeric balance never qualifies.
func MaturedWithBalance(t *table.Table, maturityColumn, balanceColumn, cutoff string) (*table.Table, error) {
	idx, err := t.Lookup(
		table.Ref("maturity_col", maturityColumn),
		table.Ref("balance_col", balanceColumn),
	)
	if err != nil {
		return nil, err
	}
	limit, err := parseDateParam("cutoff_date", cutoff)
	if err != nil {
		return nil, err
	}
	maturity, balance := idx[0], idx[1]

	t.CoerceTime(maturity)
	t = t.DropMissing(maturity)
	t.CoerceNumber(balance)
	t.Sanitize()

	return t.Filter(func(r table.Row) bool {
		at, ok := r[maturity].Instant()
		if !ok || at.After(limit) {
			return false
		}
		amount, ok := r[balance].Float()
		return ok && amount > 0
	}), nil
}

// GetMaturedWithBalance loads a workbook and applies MaturedWithBalance
func GetMaturedWithBalance(r io.Reader, maturityColumn, balanceColumn, cutoff string) (*table.Table, error) {
	t, err := table.Load(r)
	if err != nil {
		return nil, err
	}
	return MaturedWithBalance(t, maturityColumn, balanceColumn, cutoff)
}
