package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yankputra/SPK-AlatMusikKesenian/internal/scenario"
)

var evaluateConcurrency int

var evaluateCmd = &cobra.Command{
	Use:   "evaluate FILE...",
	Short: "Evaluate one or more scenarios end to end",
	Long:  "Loads every file, derives weights, ranks alternatives and prints weights and rankings. Files are evaluated in parallel.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := scenario.LoadFiles(args, sheets())
		if err != nil {
			return err
		}
		concurrency := evaluateConcurrency
		if concurrency == 0 {
			concurrency = cfg.Evaluate.Concurrency
		}

		items, err := scenario.EvaluateAll(cmd.Context(), list, engineOptions(), concurrency)
		if err != nil {
			return err
		}
		r, err := renderer()
		if err != nil {
			return err
		}

		if len(items) == 1 {
			if items[0].Err != nil {
				return items[0].Err
			}
			return r.Evaluation(cmd.OutOrStdout(), items[0].Outcome)
		}
		if err := r.Batch(cmd.OutOrStdout(), items); err != nil {
			return err
		}
		failed := 0
		for _, it := range items {
			if it.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d scenarios failed", failed, len(items))
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().IntVar(&evaluateConcurrency, "concurrency", 0, "parallel evaluations (default from config)")
	rootCmd.AddCommand(evaluateCmd)
}
