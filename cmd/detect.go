package cmd

import (
	"fmt"

	"github.com/cristijiru/mozart/score"
	"github.com/cristijiru/mozart/transpose"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect <score.mozart.json>",
	Short: "Detects the likely scale of a score",
	Long:  `Runs the major/minor scale heuristic over the score's notes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := score.Load(args[0])
		if err != nil {
			return err
		}

		detected, ok := transpose.DetectScale(s.Notes)
		if !ok {
			fmt.Println("No notes, nothing to detect")
			return nil
		}
		fmt.Printf("Detected scale: %v\n", detected)
		return nil
	},
}
