package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guitarlab/tabcheck/db"
	"github.com/guitarlab/tabcheck/report"
	"github.com/guitarlab/tabcheck/sweep"
	"github.com/guitarlab/tabcheck/theory"
)

var (
	sweepBars    int
	sweepPersist bool
)

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().Int("workers", 10, "concurrent requests")
	sweepCmd.Flags().IntVar(&sweepBars, "bars", 2, "bars per generated tab")
	sweepCmd.Flags().BoolVar(&sweepPersist, "persist", false, "write the run to DynamoDB")
	viper.BindPFlag("workers", sweepCmd.Flags().Lookup("workers"))
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Validates every dropdown combination",
	Long: `Fetches the generator's scales and patterns, enumerates every
root/scale/pattern combination (crossing in CAGED shapes for pentatonic
scales) and validates all of them concurrently.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()
		ctx := context.Background()

		scales, err := c.Scales(ctx)
		cobra.CheckErr(err)
		patterns, err := c.Patterns(ctx)
		cobra.CheckErr(err)

		combos := sweep.Combos(theory.Chromatic[:], scales, patterns, sweepBars)
		fmt.Printf("testing %d combinations (%d scales, %d patterns)\n",
			len(combos), len(scales), len(patterns))

		runner := sweep.Runner{
			Client:  c,
			Workers: viper.GetInt("workers"),
			Timeout: viper.GetDuration("timeout"),
			OnProgress: func(done, total, failed int) {
				fmt.Printf("progress: %d/%d (failed: %d)\n", done, total, failed)
			},
		}
		results := runner.Run(ctx, combos)

		ok := report.Summary(os.Stdout, results)

		if sweepPersist {
			runID := uuid.NewString()
			cobra.CheckErr(db.PersistRun(runID, results))
			fmt.Printf("persisted run %s\n", runID)
		}

		if !ok {
			os.Exit(1)
		}
	},
}
