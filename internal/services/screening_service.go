package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"acctfilter/internal/analysis"
	"acctfilter/internal/exporter"
	"acctfilter/internal/infrastructure"
	"acctfilter/internal/table"
)

// ResultSaver persists a screening result
type ResultSaver interface {
	Save(ctx context.Context, base string, format exporter.Format, t *table.Table) (*exporter.Result, error)
}

// Request names an operation and the arguments it reads. Only the fields
// used by the chosen operation need to be set.
type Request struct {
	Operation analysis.Operation
	Format    exporter.Format

	// filter_by_quarter
	DateColumn string
	Quarter    string

	// matured_with_balance
	MaturityColumn string
	BalanceColumn  string
	Cutoff         string

	// zero_interest_accounts
	RateColumn string

	// disbursement_and_writeoff, disbursement_and_npa, same_day_closure_disbursement
	DisbursementColumn string
	WriteoffColumn     string
	NPAColumn          string
	AccountColumn      string
	CustomerColumn     string
	Months             []int
	ClosureColumn      string
}

// Report is the outcome of one Run
type Report struct {
	Operation analysis.Operation
	RowsIn    int
	Result    *table.Table
	File      *exporter.Result
	Duration  time.Duration
}

// ScreeningService loads workbooks, applies screening rules and saves results
type ScreeningService struct {
	saver   ResultSaver
	tracer  trace.Tracer
	metrics *infrastructure.ScreeningMetrics
	logger  *slog.Logger
}

// NewScreeningService creates the service. tracer and metrics may be nil.
func NewScreeningService(saver ResultSaver, tracer trace.Tracer, metrics *infrastructure.ScreeningMetrics, logger *slog.Logger) *ScreeningService {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(infrastructure.InstrumentationName)
	}
	return &ScreeningService{
		saver:   saver,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger.With(slog.String("component", "screening_service")),
	}
}

// Run executes req against the workbook read from input and saves the result.
// Every call works on its own table, so concurrent calls are independent.
func (s *ScreeningService) Run(ctx context.Context, input io.Reader, req Request) (*Report, error) {
	if input == nil {
		return nil, ErrMissingInput
	}
	if _, err := analysis.ParseOperation(string(req.Operation)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
	}

	ctx, span := s.tracer.Start(ctx, "screening."+string(req.Operation),
		trace.WithAttributes(attribute.String("screening.operation", string(req.Operation))))
	defer span.End()

	start := time.Now()
	report := &Report{Operation: req.Operation}

	result, err := s.screen(ctx, input, req, report)
	report.Duration = time.Since(start)
	report.Result = result
	rowsOut := 0
	if result != nil {
		rowsOut = result.Len()
	}
	s.metrics.RecordOperation(ctx, string(req.Operation), report.RowsIn, rowsOut, report.Duration, err)

	if err != nil {
		s.fail(ctx, span, req.Operation, err)
		return nil, err
	}

	file, err := s.saver.Save(ctx, req.Operation.ReportName(), req.Format, result)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrExportFailed, err)
		s.fail(ctx, span, req.Operation, err)
		return nil, err
	}
	s.metrics.RecordExport(ctx, string(req.Operation), string(file.Format))
	report.File = file

	span.SetAttributes(
		attribute.Int("screening.rows_in", report.RowsIn),
		attribute.Int("screening.rows_out", rowsOut),
		attribute.String("screening.file", file.Name),
	)
	s.logger.InfoContext(ctx, "screening completed",
		slog.String("operation", string(req.Operation)),
		slog.Int("rows_in", report.RowsIn),
		slog.Int("rows_out", rowsOut),
		slog.String("file", file.Name),
		slog.Duration("duration", report.Duration))

	return report, nil
}

// screen loads the workbook and applies the operation's rule
func (s *ScreeningService) screen(ctx context.Context, input io.Reader, req Request, report *Report) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	t, err := table.Load(input)
	if err != nil {
		return nil, err
	}
	report.RowsIn = t.Len()
	s.logger.DebugContext(ctx, "workbook loaded",
		slog.String("operation", string(req.Operation)),
		slog.Int("rows", t.Len()),
		slog.Int("columns", t.Width()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	switch req.Operation {
	case analysis.OpFilterByQuarter:
		return analysis.FilterByQuarter(t, req.DateColumn, req.Quarter)
	case analysis.OpMaturedWithBalance:
		return analysis.MaturedWithBalance(t, req.MaturityColumn, req.BalanceColumn, req.Cutoff)
	case analysis.OpZeroInterest:
		return analysis.ZeroInterest(t, req.RateColumn)
	case analysis.OpDisbursementWriteoff:
		return analysis.CrossReference(t, analysis.CrossRefColumns{
			Disbursement:   req.DisbursementColumn,
			Event:          req.WriteoffColumn,
			Account:        req.AccountColumn,
			Customer:       req.CustomerColumn,
			EventParameter: "writeoff_column",
		}, req.Months)
	case analysis.OpDisbursementNPA:
		return analysis.CrossReference(t, analysis.CrossRefColumns{
			Disbursement:   req.DisbursementColumn,
			Event:          req.NPAColumn,
			Account:        req.AccountColumn,
			Customer:       req.CustomerColumn,
			EventParameter: "npa_column",
		}, req.Months)
	case analysis.OpSameDayClosure:
		return analysis.SameDayClosure(t, req.DisbursementColumn, req.ClosureColumn)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
}

func (s *ScreeningService) fail(ctx context.Context, span trace.Span, op analysis.Operation, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	level := slog.LevelWarn
	if errors.Is(err, ErrExportFailed) {
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, "screening failed",
		slog.String("operation", string(op)),
		slog.String("error", err.Error()))
}
