package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctfilter/internal/analysis"
	"acctfilter/internal/exporter"
)

func parsedRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()
	body, contentType := multipartBody(t, []byte("xlsx"), fields)
	r := httptest.NewRequest(http.MethodPost, target, body)
	r.Header.Set("Content-Type", contentType)
	require.NoError(t, r.ParseMultipartForm(1<<16))
	t.Cleanup(func() { r.MultipartForm.RemoveAll() })
	return r
}

func TestDecodeForm(t *testing.T) {
	r := parsedRequest(t, "/disbursement_and_writeoff/?format=csv", map[string]string{
		"disbursement_column":   "DISBURSEMENT_DATE",
		"writeoff_column":       "WRITEOFF_DATE",
		"account_number_column": "ACCOUNT_NO",
		"cif_id_column":         "CIF_ID",
		"disbursement_months":   "3,4",
		"comment":               "fields the form does not name are ignored",
	})

	f := newForm(analysis.OpDisbursementWriteoff)
	require.NoError(t, decodeForm(r, f))

	assert.Equal(t, &writeoffForm{
		DisbursementColumn: "DISBURSEMENT_DATE",
		WriteoffColumn:     "WRITEOFF_DATE",
		AccountColumn:      "ACCOUNT_NO",
		CustomerColumn:     "CIF_ID",
		Months:             "3,4",
		OutputOptions:      OutputOptions{Format: "csv"},
	}, f)

	req, err := f.request()
	require.NoError(t, err)
	assert.Equal(t, exporter.FormatCSV, req.Format)
	assert.Equal(t, []int{3, 4}, req.Months)
}

func TestDecodeFormEveryOperation(t *testing.T) {
	fields := map[string]string{
		"date_column":           "OPENED",
		"quarter_str":           "2024Q2",
		"maturity_col":          "MATURITY_DATE",
		"balance_col":           "BALANCE",
		"cutoff_date":           "2024-12-31",
		"int_rate_col":          "INT_RATE",
		"disbursement_column":   "DISBURSEMENT_DATE",
		"writeoff_column":       "WRITEOFF_DATE",
		"npa_column":            "NPA_DATE",
		"account_number_column": "ACCOUNT_NO",
		"cif_id_column":         "CIF_ID",
		"disbursement_months":   "1",
		"closure_date":          "CLOSURE_DATE",
	}

	for _, op := range analysis.Operations() {
		t.Run(string(op), func(t *testing.T) {
			f := newForm(op)
			require.NoError(t, decodeForm(parsedRequest(t, "/", fields), f))

			req, err := f.request()
			require.NoError(t, err)
			assert.Equal(t, op, req.Operation)
			assert.Equal(t, exporter.FormatXLSX, req.Format)
		})
	}
}
