// Package services implements the application layer between the HTTP
// handlers and the screening core.
//
// ScreeningService runs one screening operation end to end: it loads the
// uploaded workbook, applies the rule from package analysis, saves the
// result through the exporter and records spans, metrics and logs on the
// way. HealthService reports liveness, readiness and build information.
//
// Services take their collaborators through constructors and never reach
// for globals, so tests substitute the exporter with a testify mock:
//
//	saver := &MockResultSaver{}
//	svc := NewScreeningService(saver, providers.Tracer, metrics, logger)
//	report, err := svc.Run(ctx, upload, services.Request{
//	    Operation:  analysis.OpZeroInterest,
//	    RateColumn: "INT_RATE",
//	})
//
// Errors from the core (table.LoadError, table.ColumnError,
// table.ParameterError) pass through wrapped, so callers match them with
// errors.As. Failures after the core has run wrap ErrExportFailed.
package services
