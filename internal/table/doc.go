// Package table provides the in-memory sheet model used by the screening
// operations: typed cells, column lookup, coercion to instants and numbers,
// sanitizing of non-finite numbers, row filters and an inner join.
//
// # Loading
//
// Load reads the first worksheet of an XLSX workbook from any io.Reader:
//
//	t, err := table.Load(bytes.NewReader(upload))
//	if err != nil {
//	    // *table.LoadError
//	}
//
// # Missing values
//
// A missing cell is an explicit marker, never a zero value of another kind.
// Comparisons against missing cells are false, Equal never matches them,
// and InnerJoin never pairs rows on them.
//
// # Errors
//
//   - LoadError: the stream is not a readable workbook
//   - ColumnError: a column label does not resolve
//   - ParameterError: an argument such as a cutoff date does not parse
package table
