package http

import "acctfilter/internal/analysis"

// Field describes one form field of a screening endpoint
type Field struct {
	Name        string
	Label       string
	Placeholder string
}

// Endpoint describes one screening route. The table drives both routing and
// the endpoint index page.
type Endpoint struct {
	Path        string
	Operation   analysis.Operation
	Title       string
	Description string
	Fields      []Field
}

// Endpoints lists every screening route in display order
var Endpoints = []Endpoint{
	{
		Path:        "/zero_interest_accounts/",
		Operation:   analysis.OpZeroInterest,
		Title:       "Zero interest accounts",
		Description: "Accounts whose interest rate is exactly zero.",
		Fields: []Field{
			{Name: "int_rate_col", Label: "Interest rate column", Placeholder: "INT_RATE"},
		},
	},
	{
		Path:        "/get_matured_with_balance/",
		Operation:   analysis.OpMaturedWithBalance,
		Title:       "Matured with balance",
		Description: "Accounts matured on or before the cutoff that still carry a positive balance.",
		Fields: []Field{
			{Name: "maturity_col", Label: "Maturity date column", Placeholder: "MATURITY_DATE"},
			{Name: "balance_col", Label: "Balance column", Placeholder: "BALANCE"},
			{Name: "cutoff_date", Label: "Cutoff date", Placeholder: "2024-12-31"},
		},
	},
	{
		Path:        "/disbursement_and_writeoff/",
		Operation:   analysis.OpDisbursementWriteoff,
		Title:       "Disbursement and write-off",
		Description: "Loans disbursed in the given months to customers holding another written-off account.",
		Fields: []Field{
			{Name: "disbursement_column", Label: "Disbursement date column", Placeholder: "DISBURSEMENT_DATE"},
			{Name: "writeoff_column", Label: "Write-off date column", Placeholder: "WRITEOFF_DATE"},
			{Name: "account_number_column", Label: "Account number column", Placeholder: "ACCOUNT_NO"},
			{Name: "cif_id_column", Label: "Customer ID column", Placeholder: "CIF_ID"},
			{Name: "disbursement_months", Label: "Disbursement months", Placeholder: "10,11,12"},
		},
	},
	{
		Path:        "/disbursement_and_npa/",
		Operation:   analysis.OpDisbursementNPA,
		Title:       "Disbursement and NPA",
		Description: "Loans disbursed in the given months to customers holding another non-performing account.",
		Fields: []Field{
			{Name: "disbursement_column", Label: "Disbursement date column", Placeholder: "DISBURSEMENT_DATE"},
			{Name: "npa_column", Label: "NPA date column", Placeholder: "NPA_DATE"},
			{Name: "account_number_column", Label: "Account number column", Placeholder: "ACCOUNT_NO"},
			{Name: "cif_id_column", Label: "Customer ID column", Placeholder: "CIF_ID"},
			{Name: "disbursement_months", Label: "Disbursement months", Placeholder: "10,11,12"},
		},
	},
	{
		Path:        "/same_day_closure_disbursement/",
		Operation:   analysis.OpSameDayClosure,
		Title:       "Same day closure",
		Description: "Accounts closed on the calendar day they were disbursed.",
		Fields: []Field{
			{Name: "disbursement_column", Label: "Disbursement date column", Placeholder: "DISBURSEMENT_DATE"},
			{Name: "closure_date", Label: "Closure date column", Placeholder: "CLOSURE_DATE"},
		},
	},
	{
		Path:        "/filter_by_quarter/",
		Operation:   analysis.OpFilterByQuarter,
		Title:       "Filter by quarter",
		Description: "Rows dated within 90 days before the end of the quarter containing the given date.",
		Fields: []Field{
			{Name: "date_column", Label: "Date column", Placeholder: "DISBURSEMENT_DATE"},
			{Name: "quarter_str", Label: "Any date in the quarter", Placeholder: "2024-12-31"},
		},
	},
}
