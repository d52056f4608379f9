package cli

import (
	"github.com/spf13/cobra"

	"github.com/SpideyZac/runic/internal/config"
	"github.com/SpideyZac/runic/internal/logging"
)

// NewRootCmd wires CLI flags to configuration and executes the scan.
func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "runic",
		Short:         "Lex source files with the demo expression lexer and render diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.Configure(cfg.Verbose)
			return runScan(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.In, "in", "", "Input root directory containing source files")
	cmd.Flags().StringVar(&cfg.Glob, "glob", cfg.Glob, "Glob pattern relative to --in (supports **)")
	cmd.Flags().IntVar(&cfg.TabWidth, "tab-width", cfg.TabWidth, "Tab stop width used for column reporting")
	cmd.Flags().BoolVar(&cfg.Color, "color", cfg.Color, "Colorize rendered diagnostics")
	cmd.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	cmd.Flags().StringVar(&cfg.ReportJSON, "report-json", "", "Optional JSON report output path")
	cmd.Flags().StringVar(&cfg.ReportCSV, "report-csv", "", "Optional CSV report output path")

	_ = cmd.MarkFlagRequired("in")

	return cmd
}
