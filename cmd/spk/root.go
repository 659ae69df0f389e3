package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yankputra/SPK-AlatMusikKesenian/internal/config"
	"github.com/yankputra/SPK-AlatMusikKesenian/internal/report"
	"github.com/yankputra/SPK-AlatMusikKesenian/internal/scenario"
)

var cfg *config.Config

var (
	configPath    string
	format        string
	method        string
	normalization string
	locale        string
)

var rootCmd = &cobra.Command{
	Use:   "spk",
	Short: "AHP + TOPSIS decision support",
	Long: "Derives criteria weights from pairwise comparisons (AHP) and ranks alternatives " +
		"by closeness to the ideal solution (TOPSIS). Scenarios are read from YAML files or xlsx workbooks.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyFlags(cmd, c)
		if err := c.Validate(); err != nil {
			return fmt.Errorf("flags: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// applyFlags overrides config values with explicitly set persistent flags.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		c.Report.Format = format
	}
	if flags.Changed("method") {
		c.AHP.Method = method
	}
	if flags.Changed("normalization") {
		c.Decision.Normalization = normalization
	}
	if flags.Changed("locale") {
		c.Report.Locale = locale
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ./spk.yaml)")
	pf.StringVar(&format, "format", "table", "output format: table, json or csv")
	pf.StringVar(&method, "method", "geometric_mean", "AHP weight method: geometric_mean, column_normalization or eigenvector")
	pf.StringVar(&normalization, "normalization", "vector", "decision matrix normalization: vector or linear")
	pf.StringVar(&locale, "locale", "en", "number and label locale for tables (en, id)")
}

func engineOptions() scenario.Options {
	return scenario.Options{
		Method:    cfg.Method(),
		Threshold: cfg.AHP.Threshold,
		Policy:    cfg.Policy(),
	}
}

func sheets() scenario.Sheets {
	return scenario.Sheets{
		Criteria: cfg.Workbook.CriteriaSheet,
		AHP:      cfg.Workbook.AHPSheet,
		Weights:  cfg.Workbook.WeightsSheet,
		Dataset:  cfg.Workbook.DatasetSheet,
	}
}

func renderer() (*report.Renderer, error) {
	f, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return nil, err
	}
	return report.New(f, cfg.Report.Locale)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
