package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordcoach/sample"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports a difficulty's chords as a midi file",
	Long:  `Exports a difficulty's chords as a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args: difficulty and output path...")
		}
		export(args[0], args[1])
	},
}

func export(difficulty string, path string) {
	LoadRegistry()
	chords := registry.ChordsFor(difficulty)
	if len(chords) == 0 {
		panic("No chords for difficulty: " + difficulty)
	}

	s := sample.Create(chords)
	if err := s.WriteFile(path); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v chords to %v\n", len(chords), path)
}
