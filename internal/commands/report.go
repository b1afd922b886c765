package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expensereport/internal/aggregate"
	"github.com/cleared-dev/expensereport/internal/config"
	"github.com/cleared-dev/expensereport/internal/loader"
	"github.com/cleared-dev/expensereport/internal/logging"
	"github.com/cleared-dev/expensereport/internal/report"
)

func newReportCommand() *cobra.Command {
	var (
		configPath string
		format     string
		topN       int
		logLevel   string
		verify     bool
	)

	cmd := &cobra.Command{
		Use:   "report [file-or-directory]",
		Short: "Aggregate a ledger and print the expense report",
		Long: `Aggregate a ledger and print the expense report.

The ledger is a CSV file, or a directory whose CSV files are read in name
order as one ledger. Without an argument the configured input path is used
(expenses.csv by default).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				cfg.Input.Path = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Report.Format = format
			}
			if flags.Changed("top") {
				cfg.Report.TopN = topN
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, verify)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.FileName, "config file (optional)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: "+strings.Join(report.Formats(), ", "))
	cmd.Flags().IntVarP(&topN, "top", "n", 3, "number of categories in the ranking")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "diagnostic level: debug, info, warn, error")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the totals before printing")

	return cmd
}

func runReport(stdout, stderr io.Writer, cfg *config.Config, verify bool) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := logging.New(stderr, level)

	registry := loader.DefaultRegistry(columns(cfg.Input.Columns), logger.With("component", "loader"))
	parser := registry.Get(cfg.Input.Format)
	if parser == nil {
		return fmt.Errorf("no parser for input format %q", cfg.Input.Format)
	}

	paths, err := loader.Resolve(cfg.Input.Path)
	if err != nil {
		return err
	}
	records, err := loader.LoadFiles(parser, paths)
	if err != nil {
		return err
	}
	logger.Debug("loaded ledger", "path", cfg.Input.Path, "files", len(paths), "records", len(records))

	summary := aggregate.New(logger.With("component", "aggregate")).Aggregate(records)

	if verify {
		if errs := summary.Check(); len(errs) > 0 {
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			return fmt.Errorf("verification failed: %s", strings.Join(msgs, "; "))
		}
	}

	return report.Render(stdout, cfg.Report.Format, summary, reportOptions(cfg.Report))
}

func columns(c config.ColumnsConfig) loader.Columns {
	return loader.Columns{
		ID:            c.ID,
		Category:      c.Category,
		Amount:        c.Amount,
		Date:          c.Date,
		PaymentMethod: c.PaymentMethod,
	}
}

func reportOptions(c config.ReportConfig) report.Options {
	return report.Options{
		TopN:             c.TopN,
		Currency:         c.Currency,
		BreakdownMethods: c.BreakdownMethods,
	}
}
