package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads the first worksheet of an XLSX workbook. The first row supplies
// the column labels; every following row becomes a table row. Cell kinds are
// taken from the workbook: strings become text, booleans bool, error cells
// missing, and numbers either numbers or instants depending on whether the
// cell carries a date number format.
func Load(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Reason: "not a readable workbook", Cause: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, &LoadError{Reason: "workbook has no sheets"}
	}

	l := &sheetLoader{f: f, sheet: sheet, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		l.date1904 = *props.Date1904
	}
	return l.load()
}

type sheetLoader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (l *sheetLoader) load() (*Table, error) {
	rows, err := l.f.Rows(l.sheet)
	if err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("cannot read sheet %q", l.sheet), Cause: err}
	}
	defer rows.Close()

	var (
		header []string
		data   []Row
		width  int
		rowNum int
	)
	for rows.Next() {
		rowNum++
		raw, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, &LoadError{Reason: fmt.Sprintf("cannot read row %d", rowNum), Cause: err}
		}
		if header == nil {
			header = append([]string{}, raw...)
			continue
		}
		row := make(Row, len(raw))
		for c, s := range raw {
			v, err := l.cell(c, rowNum, s)
			if err != nil {
				return nil, err
			}
			row[c] = v
		}
		data = append(data, row)
	}
	if err := rows.Error(); err != nil {
		return nil, &LoadError{Reason: "cannot iterate rows", Cause: err}
	}

	// Trailing rows without a single value are formatting residue.
	for len(data) > 0 && blank(data[len(data)-1]) {
		data = data[:len(data)-1]
	}
	for _, r := range data {
		if len(r) > width {
			width = len(r)
		}
	}

	t, err := New(columnLabels(header, width), data)
	if err != nil {
		return nil, &LoadError{Reason: "inconsistent sheet shape", Cause: err}
	}
	return t, nil
}

// cell converts one raw cell value into a Value
func (l *sheetLoader) cell(col, row int, raw string) (Value, error) {
	if raw == "" {
		return Missing(), nil
	}
	ref, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return Missing(), &LoadError{Reason: "bad cell coordinates", Cause: err}
	}
	typ, err := l.f.GetCellType(l.sheet, ref)
	if err != nil {
		return Missing(), &LoadError{Reason: fmt.Sprintf("cannot read cell %s", ref), Cause: err}
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return Text(raw), nil
	case excelize.CellTypeBool:
		return Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeError:
		return Missing(), nil
	case excelize.CellTypeDate:
		if t, ok := ParseTime(raw); ok {
			return Time(t), nil
		}
		return Text(raw), nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Text(raw), nil
	}
	if l.isDateCell(ref) {
		if t, err := excelize.ExcelDateToTime(n, l.date1904); err == nil {
			return Time(t), nil
		}
	}
	return Number(n), nil
}

// isDateCell reports whether the cell's style applies a date or time format
func (l *sheetLoader) isDateCell(ref string) bool {
	idx, err := l.f.GetCellStyle(l.sheet, ref)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, seen := l.dateStyles[idx]; seen {
		return isDate
	}
	isDate := false
	if style, err := l.f.GetStyle(idx); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = isBuiltinDateFormat(style.NumFmt)
		}
	}
	l.dateStyles[idx] = isDate
	return isDate
}

// isBuiltinDateFormat reports whether a built-in number format id renders dates or times
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date or
// time tokens outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case ch == '\\':
			i++
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		default:
			switch ch {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}

// columnLabels derives unique labels the way spreadsheet readers commonly do:
// blank headers become "Unnamed: <i>" and repeats gain ".1", ".2" suffixes.
func columnLabels(header []string, width int) []string {
	if len(header) > width {
		width = len(header)
	}
	labels := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			candidate := fmt.Sprintf("%s.%d", name, n)
			for {
				if _, taken := seen[candidate]; !taken {
					break
				}
				n++
				candidate = fmt.Sprintf("%s.%d", name, n)
			}
			seen[name] = n + 1
			name = candidate
		}
		seen[name] = 1
		labels[i] = name
	}
	return labels
}

func blank(r Row) bool {
	for _, v := range r {
		if !v.IsMissing() {
			return false
		}
	}
	return true
}
