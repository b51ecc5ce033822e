// Command acctfilter runs one screening operation on a local workbook and
// saves the result, without starting the HTTP server.
//
//	acctfilter -op zero_interest_accounts -in loans.xlsx -int_rate_col INT_RATE
//	acctfilter -op disbursement_and_npa -in loans.xlsx -format csv \
//	    -disbursement_column DISBURSEMENT_DATE -npa_column NPA_DATE \
//	    -account_number_column ACCOUNT_NO -cif_id_column CIF_ID \
//	    -disbursement_months 10,11,12
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"acctfilter/internal/analysis"
	"acctfilter/internal/config"
	"acctfilter/internal/exporter"
	"acctfilter/internal/infrastructure"
	"acctfilter/internal/middleware"
	"acctfilter/internal/services"
	"acctfilter/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "acctfilter:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	op         string
	in         string
	out        string
	format     string
	logLevel   string
	months     string
	req        services.Request
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("acctfilter", flag.ContinueOnError)
	fs.SetOutput(stderr)

	names := make([]string, 0, len(analysis.Operations()))
	for _, op := range analysis.Operations() {
		names = append(names, string(op))
	}

	fs.StringVar(&o.configPath, "config", "", "config file (defaults to config.yaml or configs/config.yaml when present)")
	fs.StringVar(&o.op, "op", "", "operation: "+strings.Join(names, ", "))
	fs.StringVar(&o.in, "in", "", "input .xlsx workbook")
	fs.StringVar(&o.out, "out", "", "output directory (defaults to the configured output_dir)")
	fs.StringVar(&o.format, "format", "xlsx", "result format: xlsx, csv or parquet")
	fs.StringVar(&o.logLevel, "log-level", "", "log level override")

	fs.StringVar(&o.req.DateColumn, "date_column", "", "date column (filter_by_quarter)")
	fs.StringVar(&o.req.Quarter, "quarter_str", "", "any date in the quarter (filter_by_quarter)")
	fs.StringVar(&o.req.MaturityColumn, "maturity_col", "", "maturity date column (matured_with_balance)")
	fs.StringVar(&o.req.BalanceColumn, "balance_col", "", "balance column (matured_with_balance)")
	fs.StringVar(&o.req.Cutoff, "cutoff_date", "", "cutoff date (matured_with_balance)")
	fs.StringVar(&o.req.RateColumn, "int_rate_col", "", "interest rate column (zero_interest_accounts)")
	fs.StringVar(&o.req.DisbursementColumn, "disbursement_column", "", "disbursement date column")
	fs.StringVar(&o.req.WriteoffColumn, "writeoff_column", "", "write-off date column (disbursement_and_writeoff)")
	fs.StringVar(&o.req.NPAColumn, "npa_column", "", "NPA date column (disbursement_and_npa)")
	fs.StringVar(&o.req.AccountColumn, "account_number_column", "", "account number column")
	fs.StringVar(&o.req.CustomerColumn, "cif_id_column", "", "customer ID column")
	fs.StringVar(&o.months, "disbursement_months", "", "comma separated disbursement months, 1-12")
	fs.StringVar(&o.req.ClosureColumn, "closure_date", "", "closure date column (same_day_closure_disbursement)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if o.op == "" || o.in == "" {
		fs.Usage()
		return nil, errors.New("-op and -in are required")
	}
	op, err := analysis.ParseOperation(o.op)
	if err != nil {
		return nil, err
	}
	o.req.Operation = op

	format, err := exporter.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	o.req.Format = format

	if o.months != "" {
		months, err := middleware.ParseMonthList(o.months)
		if err != nil {
			return nil, fmt.Errorf("-disbursement_months: %w", err)
		}
		o.req.Months = months
	}
	return &o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return err
	}
	if o.out != "" {
		cfg.Paths.OutputDir = o.out
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	paths, err := cfg.ResolvePaths("")
	if err != nil {
		return err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return err
	}

	logger, closer, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("Starting screening",
		slog.String("operation", string(o.req.Operation)),
		slog.String("input", o.in),
		slog.String("output_dir", paths.OutputDir),
		slog.String("format", string(o.req.Format)))

	check := validation.NewPathValidator(logger)
	if err := check.ValidateWorkbook(o.in); err != nil {
		return err
	}
	if err := check.ValidateOutputDirectory(paths.OutputDir); err != nil {
		return err
	}

	input, err := os.Open(o.in)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer input.Close()

	svc := services.NewScreeningService(exporter.New(paths, logger), nil, nil, logger)
	report, err := svc.Run(ctx, input, o.req)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d of %d rows -> %s\n",
		report.Operation, report.File.Rows, report.RowsIn, report.File.Path)
	return nil
}
