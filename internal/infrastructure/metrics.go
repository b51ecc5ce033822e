package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScreeningMetrics holds the instruments recorded by the HTTP layer and the
// screening service.
type ScreeningMetrics struct {
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
	HTTPActiveRequests  metric.Int64UpDownCounter

	OperationsTotal   metric.Int64Counter
	OperationDuration metric.Float64Histogram
	RowsLoaded        metric.Int64Counter
	RowsReturned      metric.Int64Counter
	UploadBytes       metric.Int64Histogram
	ExportsTotal      metric.Int64Counter
}

// NewScreeningMetrics creates every instrument on meter
func NewScreeningMetrics(meter metric.Meter) (*ScreeningMetrics, error) {
	m := &ScreeningMetrics{}
	var err error

	if m.HTTPRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, err
	}
	if m.HTTPRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if m.HTTPActiveRequests, err = meter.Int64UpDownCounter(
		"http_active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	); err != nil {
		return nil, err
	}
	if m.OperationsTotal, err = meter.Int64Counter(
		"screening_operations_total",
		metric.WithDescription("Screening operations executed, by operation and outcome"),
	); err != nil {
		return nil, err
	}
	if m.OperationDuration, err = meter.Float64Histogram(
		"screening_operation_duration_seconds",
		metric.WithDescription("Time spent loading and screening one workbook"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if m.RowsLoaded, err = meter.Int64Counter(
		"screening_rows_loaded_total",
		metric.WithDescription("Data rows read from uploaded workbooks"),
	); err != nil {
		return nil, err
	}
	if m.RowsReturned, err = meter.Int64Counter(
		"screening_rows_returned_total",
		metric.WithDescription("Rows present in screening results"),
	); err != nil {
		return nil, err
	}
	if m.UploadBytes, err = meter.Int64Histogram(
		"screening_upload_bytes",
		metric.WithDescription("Size of uploaded workbooks"),
		metric.WithUnit("By"),
	); err != nil {
		return nil, err
	}
	if m.ExportsTotal, err = meter.Int64Counter(
		"screening_exports_total",
		metric.WithDescription("Result files written, by format"),
	); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordOperation records one screening run. rowsOut is ignored on failure.
func (m *ScreeningMetrics) RecordOperation(ctx context.Context, operation string, rowsIn, rowsOut int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	op := attribute.String("operation", operation)

	m.OperationsTotal.Add(ctx, 1, metric.WithAttributes(op, attribute.String("status", status)))
	m.OperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(op, attribute.String("status", status)))
	if rowsIn > 0 {
		m.RowsLoaded.Add(ctx, int64(rowsIn), metric.WithAttributes(op))
	}
	if err == nil {
		m.RowsReturned.Add(ctx, int64(rowsOut), metric.WithAttributes(op))
	}
}

// RecordUpload records the size of an uploaded workbook
func (m *ScreeningMetrics) RecordUpload(ctx context.Context, operation string, size int64) {
	if m == nil {
		return
	}
	m.UploadBytes.Record(ctx, size, metric.WithAttributes(attribute.String("operation", operation)))
}

// RecordExport records a written result file
func (m *ScreeningMetrics) RecordExport(ctx context.Context, operation, format string) {
	if m == nil {
		return
	}
	m.ExportsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("format", format),
	))
}
