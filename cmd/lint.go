package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/report"
	"github.com/guitarlab/tabcheck/validate"
)

var lintParams model.Params

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().StringVar(&lintParams.Root, "root", "E", "root note (sharp spelling)")
	lintCmd.Flags().StringVar(&lintParams.Scale, "scale", "minor", "scale name")
	lintCmd.Flags().StringVar(&lintParams.Pattern, "pattern", "ascending", "pattern name")
	lintCmd.Flags().StringVar(&lintParams.CagedShape, "caged-shape", "", "CAGED shape (pentatonic scales only)")
}

var lintCmd = &cobra.Command{
	Use:   "lint <tabfile>",
	Short: "Validates a tab file offline",
	Long:  `Validates a local ASCII tab file against the given parameters without touching the generator.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		cobra.CheckErr(err)

		verdict := validate.Check(lintParams, string(data))
		report.Verdict(os.Stdout, lintParams, verdict)
		if !verdict.Passed {
			os.Exit(1)
		}
	},
}
