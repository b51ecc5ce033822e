package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// timeLayouts are tried in order by ParseTime. Slashed dates are read
// month first. Month-only layouts resolve to the first of the month.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"01-02-2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"02 Jan 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"20060102T150405",
	"20060102",
	"2006-01",
	"2006/01",
	"January 2006",
	"Jan 2006",
}

// ParseTime interprets text as an instant using the layouts above.
// Surrounding whitespace is ignored.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToTime coerces a cell to a temporal cell. Text is parsed, numbers are read
// as spreadsheet serial dates, and anything that cannot be interpreted
// becomes missing.
func ToTime(v Value) Value {
	switch v.kind {
	case KindTime:
		return v
	case KindText:
		if t, ok := ParseTime(v.text); ok {
			return Time(t)
		}
	case KindNumber:
		if v.IsNonFinite() {
			return Missing()
		}
		if t, err := excelize.ExcelDateToTime(v.num, false); err == nil {
			return Time(t)
		}
	}
	return Missing()
}

// ToNumber coerces a cell to a number cell. Text is parsed after removing
// thousands separators; anything that cannot be interpreted becomes missing.
func ToNumber(v Value) Value {
	switch v.kind {
	case KindNumber:
		return v
	case KindText:
		s := strings.ReplaceAll(strings.TrimSpace(v.text), ",", "")
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return Number(n)
		}
	}
	return Missing()
}

// CoerceTime converts column i to temporal cells in place
func (t *Table) CoerceTime(i int) {
	t.MapColumn(i, ToTime)
}

// CoerceNumber converts column i to number cells in place
func (t *Table) CoerceNumber(i int) {
	t.MapColumn(i, ToNumber)
}

// SameDate reports whether two instants fall on the same calendar day,
// ignoring time of day. Each instant is read in its own location.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
