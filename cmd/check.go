package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/report"
	"github.com/guitarlab/tabcheck/validate"
)

var checkParams model.Params

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkParams.Root, "root", "E", "root note (sharp spelling)")
	checkCmd.Flags().StringVar(&checkParams.Scale, "scale", "minor", "scale name")
	checkCmd.Flags().StringVar(&checkParams.Pattern, "pattern", "ascending", "pattern name")
	checkCmd.Flags().IntVar(&checkParams.Bars, "bars", 2, "number of bars")
	checkCmd.Flags().IntVar(&checkParams.Position, "position", 0, "fretboard position hint")
	checkCmd.Flags().StringVar(&checkParams.CagedShape, "caged-shape", "", "CAGED shape (pentatonic scales only)")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetches and validates a single combination",
	Long:  `Requests one tab from the generator and validates it.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()
		res, err := c.Generate(context.Background(), checkParams)
		verdict := validate.Evaluate(checkParams, res, err)

		if res.Tab != "" {
			fmt.Println(res.Tab)
		}
		report.Verdict(os.Stdout, checkParams, verdict)
		if !verdict.Passed {
			os.Exit(1)
		}
	},
}
