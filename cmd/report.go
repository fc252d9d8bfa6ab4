package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordcoach/level"
	"github.com/jsphweid/chordcoach/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Creates a report`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

func report() {
	LoadRegistry()

	var counts []int
	for _, name := range level.Order {
		chords := registry.ChordsFor(name)
		counts = append(counts, len(chords))

		byInversion := make(map[int]int)
		for _, c := range chords {
			byInversion[c.Inversion] += 1
		}
		fmt.Printf("%v: %v chords, inversions: %v\n", name, len(chords), byInversion)
	}
	fmt.Printf("total chords: %v\n", util.Sum(counts))
}
