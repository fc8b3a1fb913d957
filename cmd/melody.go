package cmd

import (
	"fmt"

	"github.com/cristijiru/mozart/score"
	"github.com/spf13/cobra"
)

var melodyOut string
var melodyTitle string

func init() {
	melodyCmd.Flags().StringVarP(&melodyOut, "out", "o", "", "write the score to this path instead of stdout")
	melodyCmd.Flags().StringVarP(&melodyTitle, "title", "t", "Untitled", "score title")
	rootCmd.AddCommand(melodyCmd)
}

var melodyCmd = &cobra.Command{
	Use:   "melody <text>",
	Short: "Parses melody text into a score",
	Long:  `Parses melody text like "C4q D4e E4e Rq G4h." into a new score.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := score.WithTitle(melodyTitle)
		if err := s.SetMelody(args[0]); err != nil {
			return err
		}

		if melodyOut != "" {
			if err := s.Save(melodyOut); err != nil {
				return err
			}
			fmt.Printf("Saved %v notes to %v\n", len(s.Notes), melodyOut)
			return nil
		}

		data, err := s.ToJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
