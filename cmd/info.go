package cmd

import (
	"fmt"

	"github.com/cristijiru/mozart/score"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <score.mozart.json>",
	Short: "Prints score stats",
	Long:  `Prints score stats`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := score.Load(args[0])
		if err != nil {
			return err
		}

		ts := s.Settings.TimeSignature
		fmt.Printf("title: %v\n", s.Metadata.Title)
		fmt.Printf("composer: %v\n", s.Metadata.Composer)
		fmt.Printf("tempo: %v BPM\n", s.Settings.Tempo)
		fmt.Printf("time signature: %v (accents %v)\n", ts, ts.Accents)
		fmt.Printf("key: %v\n", s.Settings.Key)
		fmt.Printf("notes: %v\n", len(s.Notes))
		fmt.Printf("duration: %v ticks (%.2fs)\n", s.DurationTicks(), s.DurationSeconds())
		fmt.Printf("measures: %v\n", s.MeasureCount())
		return nil
	},
}
