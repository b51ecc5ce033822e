package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "acctfilter/internal/errors"
	"acctfilter/internal/shared/testutil"
)

type crossRefForm struct {
	Disbursement string `form:"disbursement_column" validate:"required,column"`
	Account      string `form:"account_number_column" validate:"required,column"`
	Customer     string `form:"cif_id_column" validate:"required,column,nefield=Account"`
	Months       string `form:"disbursement_months" validate:"required,monthlist"`
	Format       string `form:"format" validate:"reportformat"`
}

func TestParseMonthList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr string
	}{
		{in: "1,2,3", want: []int{1, 2, 3}},
		{in: " 10 , 11,12 ", want: []int{10, 11, 12}},
		{in: "7", want: []int{7}},
		{in: "3,3", want: []int{3, 3}},
		{in: "", wantErr: "empty"},
		{in: "1,,2", wantErr: "not an integer"},
		{in: "jan", wantErr: "not an integer"},
		{in: "0", wantErr: "outside 1-12"},
		{in: "1,13", wantErr: "outside 1-12"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonthList(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatorValidateStruct(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	v := NewValidator(logger)

	valid := crossRefForm{
		Disbursement: "DISBURSEMENT_DATE",
		Account:      "ACCOUNT_NO",
		Customer:     "CIF_ID",
		Months:       "10,11,12",
		Format:       "csv",
	}
	assert.NoError(t, v.ValidateStruct(valid))
	valid.Format = "parquet"
	assert.NoError(t, v.ValidateStruct(valid))

	bad := crossRefForm{
		Disbursement: "  ",
		Account:      "ACCOUNT_NO",
		Customer:     "ACCOUNT_NO",
		Months:       "0,4",
		Format:       "pdf",
	}
	err := v.ValidateStruct(bad)
	require.Error(t, err)

	apiErr, ok := err.(*apierrors.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.ErrorCode)

	details, ok := apiErr.Details.(apierrors.ValidationErrors)
	require.True(t, ok)
	fields := map[string]string{}
	for _, fe := range details.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "disbursement_column")
	assert.Contains(t, fields["cif_id_column"], "must differ")
	assert.Contains(t, fields["disbursement_months"], "between 1 and 12")
	assert.Contains(t, fields["format"], "xlsx, csv or parquet")
	assert.NotContains(t, fields, "account_number_column")
}

func TestContentTypeValidator(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	h := ContentTypeValidator(apierrors.NewErrorHandler(logger, false), "multipart/form-data")(okHandler())

	tests := []struct {
		name        string
		method      string
		contentType string
		want        int
	}{
		{"get passes", http.MethodGet, "", http.StatusOK},
		{"multipart", http.MethodPost, "multipart/form-data; boundary=x", http.StatusOK},
		{"missing", http.MethodPost, "", http.StatusBadRequest},
		{"json", http.MethodPost, "application/json", http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/filter_by_quarter/", strings.NewReader(""))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
