package cmd

import (
	"fmt"

	"github.com/cristijiru/mozart/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Parses a MIDI file and dumps its events, one per line.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("format: %v\n", parsed.Format())
		fmt.Printf("time format: %v\n", parsed.TimeFormat)
		fmt.Printf("tracks: %v\n", len(parsed.Tracks))

		for i, track := range parsed.Tracks {
			fmt.Printf("track %v:\n", i)
			var absTicks uint64
			for _, event := range track {
				absTicks += uint64(event.Delta)
				fmt.Printf("  tick %v: %v\n", absTicks, event.Message)
			}
		}
		return nil
	},
}
