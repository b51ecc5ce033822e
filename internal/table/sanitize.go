package table

// Sanitize replaces every NaN, +Inf and -Inf number cell with a missing
// cell, in place, and returns the table. Text, bool, time and finite number
// cells are left untouched, so sanitizing twice is the same as once.
func (t *Table) Sanitize() *Table {
	for _, r := range t.rows {
		for c, v := range r {
			if v.IsNonFinite() {
				r[c] = Missing()
			}
		}
	}
	return t
}

// NonFiniteCount returns the number of cells Sanitize would replace
func (t *Table) NonFiniteCount() int {
	n := 0
	for _, r := range t.rows {
		for _, v := range r {
			if v.IsNonFinite() {
				n++
			}
		}
	}
	return n
}
