// Package exporter writes screening results to disk or to any io.Writer.
//
// XLSX is the default format and mirrors a plain spreadsheet dump: one
// header row of column labels, one row per record, temporal cells styled as
// date-times and missing cells left empty. CSV output carries a UTF-8 BOM so
// spreadsheet applications detect the encoding.
//
// Saved files are named <base>_<32 hex digits>.<ext> inside the output
// directory, so concurrent requests never collide:
//
//	exp := exporter.New(paths, logger)
//	res, err := exp.Save(ctx, "zero_interest_accounts", exporter.FormatXLSX, result)
package exporter
