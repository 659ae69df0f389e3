package main

import (
	"github.com/spf13/cobra"

	"github.com/yankputra/SPK-AlatMusikKesenian/internal/scenario"
)

var weightsCmd = &cobra.Command{
	Use:   "weights FILE",
	Short: "Derive AHP criteria weights and report consistency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.LoadFile(args[0], sheets())
		if err != nil {
			return err
		}
		ws, err := scenario.DeriveWeights(s, engineOptions())
		if err != nil {
			return err
		}
		r, err := renderer()
		if err != nil {
			return err
		}
		return r.Weights(cmd.OutOrStdout(), s.Criteria, ws)
	},
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}
