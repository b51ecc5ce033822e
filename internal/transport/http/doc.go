// Package http implements the HTTP handlers of the screening service. It is
// a thin layer: handlers parse and validate requests, call the service layer
// and format responses.
//
// # Screening endpoints
//
// Every screening operation is a multipart POST carrying the workbook in the
// "file" field plus the column and date arguments as form fields. The
// Endpoints table lists them and drives both routing and the index page at
// /access_all_apis. A successful call answers with the saved result as an
// attachment:
//
//	Content-Type: application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	Content-Disposition: attachment; filename=zero_interest_accounts_<hex>.xlsx
//	X-Result-Rows: 42
//
// Adding ?format=csv or ?format=parquet switches the download format.
//
// # Error Handling
//
// Failures are RFC 7807 problem documents rendered by internal/errors:
//
//	{
//	    "type": "/errors/workbook/unknown-column",
//	    "title": "Unknown Column",
//	    "status": 400,
//	    "detail": "column \"RATE\" (int_rate_col) not found in table",
//	    "instance": "/zero_interest_accounts/",
//	    "parameter": "int_rate_col",
//	    "available_columns": ["CIF_ID", "ACCOUNT_NO"]
//	}
//
// Unreadable workbooks map to 422, unknown columns, bad arguments and form
// validation failures to 400, uploads over the configured limit to 413.
//
// # Testing
//
// Handlers are tested with httptest against a testify mock of
// ScreeningServiceInterface.
package http
