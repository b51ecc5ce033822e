package http

import (
	"net/http"

	"github.com/ajg/form"

	"acctfilter/internal/analysis"
	"acctfilter/internal/exporter"
	"acctfilter/internal/middleware"
	"acctfilter/internal/services"
)

// screeningForm is a decoded and validated multipart form
type screeningForm interface {
	request() (services.Request, error)
}

// OutputOptions selects the download format. It is read from the query
// string or the form body.
type OutputOptions struct {
	Format string `form:"format" validate:"reportformat"`
}

func (o OutputOptions) format() (exporter.Format, error) {
	return exporter.ParseFormat(o.Format)
}

type zeroInterestForm struct {
	RateColumn string `form:"int_rate_col" validate:"required,column"`
	OutputOptions
}

func (f *zeroInterestForm) request() (services.Request, error) {
	format, err := f.format()
	return services.Request{
		Operation:  analysis.OpZeroInterest,
		Format:     format,
		RateColumn: f.RateColumn,
	}, err
}

type maturedForm struct {
	MaturityColumn string `form:"maturity_col" validate:"required,column"`
	BalanceColumn  string `form:"balance_col" validate:"required,column"`
	CutoffDate     string `form:"cutoff_date" validate:"required"`
	OutputOptions
}

func (f *maturedForm) request() (services.Request, error) {
	format, err := f.format()
	return services.Request{
		Operation:      analysis.OpMaturedWithBalance,
		Format:         format,
		MaturityColumn: f.MaturityColumn,
		BalanceColumn:  f.BalanceColumn,
		Cutoff:         f.CutoffDate,
	}, err
}

type writeoffForm struct {
	DisbursementColumn string `form:"disbursement_column" validate:"required,column"`
	WriteoffColumn     string `form:"writeoff_column" validate:"required,column"`
	AccountColumn      string `form:"account_number_column" validate:"required,column"`
	CustomerColumn     string `form:"cif_id_column" validate:"required,column"`
	Months             string `form:"disbursement_months" validate:"required,monthlist"`
	OutputOptions
}

func (f *writeoffForm) request() (services.Request, error) {
	format, err := f.format()
	if err != nil {
		return services.Request{}, err
	}
	months, err := middleware.ParseMonthList(f.Months)
	return services.Request{
		Operation:          analysis.OpDisbursementWriteoff,
		Format:             format,
		DisbursementColumn: f.DisbursementColumn,
		WriteoffColumn:     f.WriteoffColumn,
		AccountColumn:      f.AccountColumn,
		CustomerColumn:     f.CustomerColumn,
		Months:             months,
	}, err
}

type npaForm struct {
	DisbursementColumn string `form:"disbursement_column" validate:"required,column"`
	NPAColumn          string `form:"npa_column" validate:"required,column"`
	AccountColumn      string `form:"account_number_column" validate:"required,column"`
	CustomerColumn     string `form:"cif_id_column" validate:"required,column"`
	Months             string `form:"disbursement_months" validate:"required,monthlist"`
	OutputOptions
}

func (f *npaForm) request() (services.Request, error) {
	format, err := f.format()
	if err != nil {
		return services.Request{}, err
	}
	months, err := middleware.ParseMonthList(f.Months)
	return services.Request{
		Operation:          analysis.OpDisbursementNPA,
		Format:             format,
		DisbursementColumn: f.DisbursementColumn,
		NPAColumn:          f.NPAColumn,
		AccountColumn:      f.AccountColumn,
		CustomerColumn:     f.CustomerColumn,
		Months:             months,
	}, err
}

type sameDayClosureForm struct {
	DisbursementColumn string `form:"disbursement_column" validate:"required,column"`
	ClosureColumn      string `form:"closure_date" validate:"required,column"`
	OutputOptions
}

func (f *sameDayClosureForm) request() (services.Request, error) {
	format, err := f.format()
	return services.Request{
		Operation:          analysis.OpSameDayClosure,
		Format:             format,
		DisbursementColumn: f.DisbursementColumn,
		ClosureColumn:      f.ClosureColumn,
	}, err
}

type quarterForm struct {
	DateColumn string `form:"date_column" validate:"required,column"`
	Quarter    string `form:"quarter_str" validate:"required"`
	OutputOptions
}

func (f *quarterForm) request() (services.Request, error) {
	format, err := f.format()
	return services.Request{
		Operation:  analysis.OpFilterByQuarter,
		Format:     format,
		DateColumn: f.DateColumn,
		Quarter:    f.Quarter,
	}, err
}

// newForm returns an empty form for op
func newForm(op analysis.Operation) screeningForm {
	switch op {
	case analysis.OpZeroInterest:
		return &zeroInterestForm{}
	case analysis.OpMaturedWithBalance:
		return &maturedForm{}
	case analysis.OpDisbursementWriteoff:
		return &writeoffForm{}
	case analysis.OpDisbursementNPA:
		return &npaForm{}
	case analysis.OpSameDayClosure:
		return &sameDayClosureForm{}
	case analysis.OpFilterByQuarter:
		return &quarterForm{}
	}
	return nil
}

// decodeForm fills dst from the parsed request form, query values
// included. Fields the form struct does not name are ignored.
func decodeForm(r *http.Request, dst screeningForm) error {
	dec := form.NewDecoder(nil)
	dec.IgnoreUnknownKeys(true)
	return dec.DecodeValues(dst, r.Form)
}
