// Package shared holds helpers used by more than one layer of the service.
//
// The testutil subpackage provides a capturing slog handler and in-memory
// workbook fixtures built with excelize:
//
//	logger, logs := testutil.NewTestLogger(t)
//	upload := testutil.Workbook(t, testutil.LoanBookRows()...)
//
// Nothing here is imported by production code.
package shared
