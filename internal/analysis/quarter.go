package analysis

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"acctfilter/internal/table"
)

// QuarterLookback is the span before the quarter end that FilterByQuarter keeps
const QuarterLookback = 90 * 24 * time.Hour

// QuarterEnd returns the last calendar day of the calendar quarter holding t.
// The time of day and location of t are kept.
func QuarterEnd(t time.Time) time.Time {
	endMonth := ((int(t.Month())-1)/3 + 1) * 3
	// Day 0 of the following month is the last day of endMonth.
	return time.Date(t.Year(), time.Month(endMonth+1), 0,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// QuarterCutoff returns the earliest instant kept by FilterByQuarter for the
// quarter holding t.
func QuarterCutoff(t time.Time) time.Time {
	return QuarterEnd(t).Add(-QuarterLookback)
}

// quarterDesignator matches "2024Q2", "2024-Q2" and "2024 q2"
var quarterDesignator = regexp.MustCompile(`^(\d{4})[- ]?[Qq]([1-4])$`)

// ParseQuarter reads a quarter argument. A quarter designator resolves to
// the first day of that quarter; anything else is parsed as a date.
func ParseQuarter(value string) (time.Time, error) {
	if m := quarterDesignator.FindStringSubmatch(strings.TrimSpace(value)); m != nil {
		year, _ := strconv.Atoi(m[1])
		q, _ := strconv.Atoi(m[2])
		return time.Date(year, time.Month((q-1)*3+1), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return parseDateParam("quarter_str", value)
}

// FilterByQuarter keeps the rows whose dateColumn falls on or after the
// cutoff of the quarter named by quarter. Cells that do not parse as dates
// become missing and are never kept.
func FilterByQuarter(t *table.Table, dateColumn, quarter string) (*table.Table, error) {
	idx, err := t.Lookup(table.Ref("date_column", dateColumn))
	if err != nil {
		return nil, err
	}
	anchor, err := ParseQuarter(quarter)
	if err != nil {
		return nil, err
	}
	cutoff := QuarterCutoff(anchor)

	col := idx[0]
	t.CoerceTime(col)
	t.Sanitize()
	return t.Filter(func(r table.Row) bool {
		at, ok := r[col].Instant()
		return ok && !at.Before(cutoff)
	}), nil
}

// LoadAndFilterByQuarter loads a workbook and applies FilterByQuarter
func LoadAndFilterByQuarter(r io.Reader, dateColumn, quarter string) (*table.Table, error) {
	t, err := table.Load(r)
	if err != nil {
		return nil, err
	}
	return FilterByQuarter(t, dateColumn, quarter)
}

// parseDateParam parses a date given as an operation argument
func parseDateParam(name, value string) (time.Time, error) {
	at, ok := table.ParseTime(value)
	if !ok {
		return time.Time{}, &table.ParameterError{Parameter: name, Value: value, Reason: "not a recognised date"}
	}
	return at, nil
}
