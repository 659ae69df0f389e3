package main

import (
	"github.com/spf13/cobra"

	"github.com/yankputra/SPK-AlatMusikKesenian/internal/scenario"
)

var rankCmd = &cobra.Command{
	Use:   "rank FILE",
	Short: "Rank the alternatives of a scenario with TOPSIS",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.LoadFile(args[0], sheets())
		if err != nil {
			return err
		}
		out, err := scenario.Evaluate(cmd.Context(), s, engineOptions())
		if err != nil {
			return err
		}
		r, err := renderer()
		if err != nil {
			return err
		}
		return r.Ranking(cmd.OutOrStdout(), out)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
}
