package analysis

import (
	"io"
	"time"

	"acctfilter/internal/table"
)

// CrossRefColumns names the columns used by CrossReference
type CrossRefColumns struct {
	Disbursement string
	// Event is the writeoff or NPA date column.
	Event    string
	Account  string
	Customer string
	// EventParameter is the request parameter that supplied Event, used in errors.
	EventParameter string
}

// CrossReference pairs accounts disbursed in one of months with other
// accounts of the same customer that carry an event date (writeoff or NPA).
//
// The disbursed side and the event side are both drawn from t and joined on
// the customer column. Pairs of an account with itself are removed, then
// every column that is missing a value in any remaining row is dropped.
func CrossReference(t *table.Table, cols CrossRefColumns, months []int) (*table.Table, error) {
	eventParam := cols.EventParameter
	if eventParam == "" {
		eventParam = "event_column"
	}
	idx, err := t.Lookup(
		table.Ref("disbursement_column", cols.Disbursement),
		table.Ref(eventParam, cols.Event),
		table.Ref("account_number_column", cols.Account),
		table.Ref("cif_id_column", cols.Customer),
	)
	if err != nil {
		return nil, err
	}
	if cols.Account == cols.Customer {
		// The account column would be consumed by the join key.
		return nil, &table.ColumnError{
			Column:    cols.Account + table.LeftSuffix,
			Parameter: "account_number_column",
			Available: t.Columns(),
		}
	}
	disbursed, event := idx[0], idx[1]

	t.CoerceTime(disbursed)
	t.CoerceTime(event)
	t.Sanitize()

	wanted := monthSet(months)
	left := t.Filter(func(r table.Row) bool {
		at, ok := r[disbursed].Instant()
		return ok && wanted[at.Month()]
	})
	right := t.Filter(func(r table.Row) bool {
		return !r[event].IsMissing()
	})

	joined, err := table.InnerJoin(left, right, cols.Customer)
	if err != nil {
		return nil, err
	}
	ax, err := joined.ColumnIndex(cols.Account + table.LeftSuffix)
	if err != nil {
		return nil, err
	}
	ay, err := joined.ColumnIndex(cols.Account + table.RightSuffix)
	if err != nil {
		return nil, err
	}

	paired := joined.Filter(func(r table.Row) bool {
		return !r[ax].Equal(r[ay])
	})
	return paired.DropIncompleteColumns().Sanitize(), nil
}

// DisbursementAndWriteoff loads a workbook and cross references accounts
// disbursed in months against written-off accounts of the same customer.
func DisbursementAndWriteoff(r io.Reader, disbursementColumn, writeoffColumn, accountColumn, customerColumn string, months []int) (*table.Table, error) {
	t, err := table.Load(r)
	if err != nil {
		return nil, err
	}
	return CrossReference(t, CrossRefColumns{
		Disbursement:   disbursementColumn,
		Event:          writeoffColumn,
		Account:        accountColumn,
		Customer:       customerColumn,
		EventParameter: "writeoff_column",
	}, months)
}

// DisbursementAndNPA loads a workbook and cross references accounts
// disbursed in months against NPA-classified accounts of the same customer.
func DisbursementAndNPA(r io.Reader, disbursementColumn, npaColumn, accountColumn, customerColumn string, months []int) (*table.Table, error) {
	t, err := table.Load(r)
	if err != nil {
		return nil, err
	}
	return CrossReference(t, CrossRefColumns{
		Disbursement:   disbursementColumn,
		Event:          npaColumn,
		Account:        accountColumn,
		Customer:       customerColumn,
		EventParameter: "npa_column",
	}, months)
}

func monthSet(months []int) map[time.Month]bool {
	set := make(map[time.Month]bool, len(months))
	for _, m := range months {
		if m >= 1 && m <= 12 {
			set[time.Month(m)] = true
		}
	}
	return set
}
