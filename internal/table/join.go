package table

import "fmt"

// Default suffixes applied to overlapping column labels by InnerJoin
const (
	LeftSuffix  = "_x"
	RightSuffix = "_y"
)

// InnerJoin pairs every left row with every right row holding an equal value
// in the key column. The output carries the key column once, at its left
// position, followed by the remaining left columns and then the remaining
// right columns. Labels present on both sides are suffixed with LeftSuffix
// and RightSuffix. Rows come out in left order, and for each left row in
// right order. Missing keys never match.
func InnerJoin(left, right *Table, on string) (*Table, error) {
	lk, err := left.ColumnIndex(on)
	if err != nil {
		return nil, err
	}
	rk, err := right.ColumnIndex(on)
	if err != nil {
		return nil, err
	}

	columns, rightCols := joinedColumns(left, right, lk, rk)

	// Build phase over the right side.
	index := make(map[joinKey][]int, right.Len())
	for i, r := range right.rows {
		if k, ok := r[rk].key(); ok {
			index[k] = append(index[k], i)
		}
	}

	// Probe phase in left order.
	var rows []Row
	for _, lr := range left.rows {
		k, ok := lr[lk].key()
		if !ok {
			continue
		}
		for _, ri := range index[k] {
			rr := right.rows[ri]
			out := make(Row, 0, len(columns))
			out = append(out, lr...)
			for _, c := range rightCols {
				out = append(out, rr[c])
			}
			rows = append(rows, out)
		}
	}

	t, err := New(columns, rows)
	if err != nil {
		return nil, fmt.Errorf("join on %q: %w", on, err)
	}
	return t, nil
}

// joinedColumns computes the output labels of a join and the right-side
// column positions that follow the left columns.
func joinedColumns(left, right *Table, lk, rk int) ([]string, []int) {
	rightCols := make([]int, 0, right.Width())
	for c := range right.columns {
		if c != rk {
			rightCols = append(rightCols, c)
		}
	}

	overlap := make(map[string]bool)
	for c, name := range left.columns {
		if c == lk {
			continue
		}
		if i, ok := right.index[name]; ok && i != rk {
			overlap[name] = true
		}
	}

	columns := make([]string, 0, left.Width()+len(rightCols))
	for c, name := range left.columns {
		if c != lk && overlap[name] {
			name += LeftSuffix
		}
		columns = append(columns, name)
	}
	for _, c := range rightCols {
		name := right.columns[c]
		if overlap[name] {
			name += RightSuffix
		}
		columns = append(columns, name)
	}
	return columns, rightCols
}
