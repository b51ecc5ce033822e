package table

import (
	"math"
	"strconv"
	"time"
)

// Kind identifies the logical type held by a Value
type Kind uint8

const (
	KindMissing Kind = iota
	KindText
	KindNumber
	KindBool
	KindTime
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is a single table cell. The zero Value is missing.
type Value struct {
	kind Kind
	text string
	num  float64
	flag bool
	at   time.Time
}

// Missing returns the explicit missing marker
func Missing() Value { return Value{} }

// Text returns a text cell
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric cell. NaN and infinities are stored as given;
// Sanitize turns them into missing cells.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean cell
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Time returns a temporal cell
func Time(t time.Time) Value { return Value{kind: KindTime, at: t} }

// Kind reports the kind of the cell
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell holds no value
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// IsNonFinite reports whether the cell is a number holding NaN or an infinity
func (v Value) IsNonFinite() bool {
	return v.kind == KindNumber && (math.IsNaN(v.num) || math.IsInf(v.num, 0))
}

// Float returns the numeric content of a number cell
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Instant returns the content of a temporal cell
func (v Value) Instant() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.at, true
}

// Str returns the content of a text cell
func (v Value) Str() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Boolean returns the content of a bool cell
func (v Value) Boolean() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// Equal reports whether two present cells hold the same kind and value.
// Missing cells and NaN are never equal to anything, themselves included.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.flag == o.flag
	case KindTime:
		return v.at.Equal(o.at)
	default:
		return false
	}
}

// String renders the cell for logs and CSV output. Missing renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.flag {
			return "TRUE"
		}
		return "FALSE"
	case KindTime:
		if v.at.Hour() == 0 && v.at.Minute() == 0 && v.at.Second() == 0 && v.at.Nanosecond() == 0 {
			return v.at.Format("2006-01-02")
		}
		return v.at.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Interface returns the cell as a plain Go value (nil when missing),
// suitable for spreadsheet writers.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindTime:
		return v.at
	default:
		return nil
	}
}

// joinKey is the hashable identity of a cell used by InnerJoin.
type joinKey struct {
	kind Kind
	text string
	num  float64
	flag bool
	sec  int64
	nsec int
}

// key returns the join key for a present, comparable cell
func (v Value) key() (joinKey, bool) {
	switch v.kind {
	case KindText:
		return joinKey{kind: KindText, text: v.text}, true
	case KindNumber:
		if math.IsNaN(v.num) {
			return joinKey{}, false
		}
		n := v.num
		if n == 0 {
			n = 0 // fold -0 into +0
		}
		return joinKey{kind: KindNumber, num: n}, true
	case KindBool:
		return joinKey{kind: KindBool, flag: v.flag}, true
	case KindTime:
		return joinKey{kind: KindTime, sec: v.at.Unix(), nsec: v.at.Nanosecond()}, true
	default:
		return joinKey{}, false
	}
}
