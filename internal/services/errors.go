package services

import "errors"

// Screening service errors
var (
	// Request errors
	ErrUnknownOperation = errors.New("unknown operation")
	ErrMissingInput     = errors.New("no spreadsheet supplied")

	// Output errors
	ErrExportFailed = errors.New("result could not be exported")

	// General errors
	ErrCanceled = errors.New("screening canceled")
)
