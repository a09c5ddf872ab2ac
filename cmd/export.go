package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guitarlab/tabcheck/midifile"
	"github.com/guitarlab/tabcheck/tab"
)

var (
	exportOut string
	exportBPM float64
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "out.mid", "output MIDI file")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", 120, "tempo")
}

var exportCmd = &cobra.Command{
	Use:   "export <tabfile>",
	Short: "Renders a tab file to MIDI",
	Long:  `Parses a local ASCII tab file and writes its note events to a Standard MIDI File.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		cobra.CheckErr(err)

		doc := tab.Parse(string(data))
		if len(doc.Notes) == 0 {
			cobra.CheckErr(errors.New("no notes found in tab"))
		}

		s := midifile.Render(doc.Notes, exportBPM)
		f, err := os.Create(exportOut)
		cobra.CheckErr(err)
		defer f.Close()
		_, err = s.WriteTo(f)
		cobra.CheckErr(err)

		fmt.Printf("wrote %d notes to %s\n", len(doc.Notes), exportOut)
	},
}
