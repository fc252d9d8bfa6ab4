package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows a difficulty's chords",
	Long:  `Shows a difficulty's chords`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		show(args[0])
	},
}

func show(difficulty string) {
	LoadRegistry()
	chords := registry.ChordsFor(difficulty)
	if chords == nil {
		fmt.Printf("No such difficulty: %v\n", difficulty)
		return
	}
	for _, c := range chords {
		fmt.Printf("%4d  %-10v %v\n", c.Id, c.Name, strings.Join(c.Notes, " "))
	}
}
