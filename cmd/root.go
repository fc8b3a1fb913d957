package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mozart",
	Short: "Monophonic score engine",
	Long:  `Melody scores: parse, transpose, detect keys, export MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
