package cmd

import (
	"fmt"
	"os"

	"github.com/cristijiru/mozart/midi"
	"github.com/cristijiru/mozart/score"
	"github.com/cristijiru/mozart/util"
	"github.com/spf13/cobra"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .mid path (single score only)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <score-or-dir>",
	Short: "Exports scores to MIDI",
	Long: `Exports a score to SMF Format 0. Given a directory, exports every
*.mozart.json found under it, each next to its source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}

		if info.IsDir() {
			paths := util.GatherAllScorePaths(args[0])
			for i, path := range paths {
				fmt.Printf("Exporting %v of %v scores\n", i+1, len(paths))
				if err := exportOne(path, util.MidiPath(path)); err != nil {
					fmt.Printf("Skipping %v because: %v\n", path, err)
				}
			}
			return nil
		}

		out := exportOut
		if out == "" {
			out = util.MidiPath(args[0])
		}
		if err := exportOne(args[0], out); err != nil {
			return err
		}
		fmt.Printf("Wrote %v\n", out)
		return nil
	},
}

func exportOne(scorePath, midiPath string) error {
	s, err := score.Load(scorePath)
	if err != nil {
		return err
	}
	return midi.ExportToFile(s, midiPath)
}
