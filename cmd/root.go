package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordcoach",
	Short: "Chord identification trainer",
	Long:  `Chord identification trainer: builds chord sets by difficulty and checks what you play against them.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
