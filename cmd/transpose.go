package cmd

import (
	"fmt"

	"github.com/cristijiru/mozart/scale"
	"github.com/cristijiru/mozart/score"
	"github.com/cristijiru/mozart/transpose"
	"github.com/spf13/cobra"
)

var (
	transposeSemitones int
	transposeDegrees   int
	transposeTarget    string
	transposeOut       string
)

func init() {
	transposeCmd.Flags().IntVar(&transposeSemitones, "semitones", 0, "chromatic shift in semitones")
	transposeCmd.Flags().IntVar(&transposeDegrees, "degrees", 0, "diatonic shift in scale degrees")
	transposeCmd.Flags().StringVar(&transposeTarget, "to", "", `target key for a degree shift, e.g. "G major"`)
	transposeCmd.Flags().StringVarP(&transposeOut, "out", "o", "", "output path (defaults to in-place)")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <score.mozart.json>",
	Short: "Transposes a score",
	Long: `Transposes a score chromatically (--semitones) or diatonically
(--degrees, optionally with --to for a key change).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := buildMode(cmd)
		if err != nil {
			return err
		}

		s, err := score.Load(args[0])
		if err != nil {
			return err
		}

		if mode.Kind == transpose.DiatonicKind {
			mode.SourceScale = s.Settings.Key
			if transposeTarget == "" {
				mode.TargetScale = s.Settings.Key
			}
		}

		if err := s.Transpose(mode); err != nil {
			return err
		}

		out := transposeOut
		if out == "" {
			out = args[0]
		}
		if err := s.Save(out); err != nil {
			return err
		}
		fmt.Printf("Transposed %v notes (%v) -> %v\n", len(s.Notes), mode.Description(), out)
		return nil
	},
}

func buildMode(cmd *cobra.Command) (transpose.Mode, error) {
	semitonesSet := cmd.Flags().Changed("semitones")
	degreesSet := cmd.Flags().Changed("degrees")

	if semitonesSet == degreesSet {
		return transpose.Mode{}, fmt.Errorf("need exactly one of --semitones or --degrees")
	}

	if semitonesSet {
		return transpose.Chromatic(transposeSemitones), nil
	}

	if transposeTarget != "" {
		target, err := scale.Parse(transposeTarget)
		if err != nil {
			return transpose.Mode{}, err
		}
		// source is filled in from the score's key after loading
		return transpose.DiatonicWithKeyChange(scale.CMajor(), target, transposeDegrees), nil
	}
	return transpose.Diatonic(scale.CMajor(), transposeDegrees), nil
}
