package table

import (
	"fmt"
)

// Row is one positional record of a Table
type Row []Value

// Table is an in-memory sheet: ordered column labels and rows aligned with them.
// Tables are built per operation and are not safe for concurrent mutation.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// New builds a table from column labels and rows. Rows shorter than the
// header are padded with missing cells; longer rows are an error.
func New(columns []string, rows []Row) (*Table, error) {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([]Row, 0, len(rows)),
	}
	for i, name := range t.columns {
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		t.index[name] = i
	}
	for i, r := range rows {
		if len(r) > len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, table has %d columns", i, len(r), len(columns))
		}
		t.rows = append(t.rows, t.pad(r))
	}
	return t, nil
}

// MustNew is New for fixtures and literals; it panics on error.
func MustNew(columns []string, rows ...Row) *Table {
	t, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) pad(r Row) Row {
	out := make(Row, len(t.columns))
	copy(out, r)
	return out
}

// Columns returns a copy of the column labels in order
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows
func (t *Table) Len() int { return len(t.rows) }

// Width returns the number of columns
func (t *Table) Width() int { return len(t.columns) }

// Row returns row i. The returned slice aliases table storage.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Rows returns all rows. The returned slices alias table storage.
func (t *Table) Rows() []Row { return t.rows }

// HasColumn reports whether a column with the given label exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex resolves a column label to its position
func (t *Table) ColumnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return -1, &ColumnError{Column: name, Available: t.Columns()}
	}
	return i, nil
}

// Lookup resolves several column references at once, tagging a failure with
// the parameter that named the column.
func (t *Table) Lookup(refs ...ColumnRef) ([]int, error) {
	idx := make([]int, len(refs))
	for i, ref := range refs {
		pos, ok := t.index[ref.Name]
		if !ok {
			return nil, &ColumnError{Column: ref.Name, Parameter: ref.Parameter, Available: t.Columns()}
		}
		idx[i] = pos
	}
	return idx, nil
}

// ColumnRef names a column together with the parameter that supplied it
type ColumnRef struct {
	Parameter string
	Name      string
}

// Ref is shorthand for building a ColumnRef
func Ref(parameter, name string) ColumnRef {
	return ColumnRef{Parameter: parameter, Name: name}
}

// Column returns a copy of the cells of one column
func (t *Table) Column(name string) ([]Value, error) {
	i, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, nil
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = append(Row(nil), r...)
	}
	return &Table{columns: t.Columns(), index: t.copyIndex(), rows: rows}
}

func (t *Table) copyIndex() map[string]int {
	m := make(map[string]int, len(t.index))
	for k, v := range t.index {
		m[k] = v
	}
	return m
}

// Filter returns a new table holding the rows for which keep returns true,
// in their original order. Kept rows share storage with t.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{columns: t.Columns(), index: t.copyIndex()}
	for _, r := range t.rows {
		if keep(r) {
			out.rows = append(out.rows, r)
		}
	}
	return out
}

// MapColumn replaces every cell of column i with fn(cell), in place.
func (t *Table) MapColumn(i int, fn func(Value) Value) {
	for _, r := range t.rows {
		r[i] = fn(r[i])
	}
}

// DropMissing returns a new table without the rows that are missing a
// value in any of the given column positions.
func (t *Table) DropMissing(cols ...int) *Table {
	return t.Filter(func(r Row) bool {
		for _, c := range cols {
			if r[c].IsMissing() {
				return false
			}
		}
		return true
	})
}

// DropIncompleteColumns returns a new table keeping only the columns that
// have a value in every row. A table with no rows keeps all of its columns.
func (t *Table) DropIncompleteColumns() *Table {
	keep := make([]int, 0, len(t.columns))
	for c := range t.columns {
		complete := true
		for _, r := range t.rows {
			if r[c].IsMissing() {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, c)
		}
	}
	return t.project(keep)
}

// Select returns a new table holding only the named columns, in the given order
func (t *Table) Select(names ...string) (*Table, error) {
	keep := make([]int, len(names))
	for i, n := range names {
		c, err := t.ColumnIndex(n)
		if err != nil {
			return nil, err
		}
		keep[i] = c
	}
	return t.project(keep), nil
}

func (t *Table) project(keep []int) *Table {
	out := &Table{
		columns: make([]string, len(keep)),
		index:   make(map[string]int, len(keep)),
		rows:    make([]Row, len(t.rows)),
	}
	for i, c := range keep {
		out.columns[i] = t.columns[c]
		out.index[t.columns[c]] = i
	}
	for r, row := range t.rows {
		nr := make(Row, len(keep))
		for i, c := range keep {
			nr[i] = row[c]
		}
		out.rows[r] = nr
	}
	return out
}
