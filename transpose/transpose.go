package transpose

import (
	"fmt"

	"github.com/cristijiru/mozart/note"
	"github.com/cristijiru/mozart/pitch"
	"github.com/cristijiru/mozart/scale"
)

// Kind discriminates the two transposition modes.
type Kind uint8

const (
	// ChromaticKind shifts by semitones, independent of any scale.
	ChromaticKind Kind = iota
	// DiatonicKind shifts by scale degrees, remapping through a target scale.
	DiatonicKind
)

// Mode is a closed variant: either a chromatic shift or a diatonic shift
// between a source and target scale. Use the constructors.
type Mode struct {
	Kind Kind

	// Chromatic
	Semitones int

	// Diatonic
	SourceScale scale.Scale
	TargetScale scale.Scale
	Degrees     int
}

// Chromatic builds a semitone transposition.
func Chromatic(semitones int) Mode {
	return Mode{Kind: ChromaticKind, Semitones: semitones}
}

// Diatonic builds a degree transposition within one scale.
func Diatonic(s scale.Scale, degrees int) Mode {
	return Mode{Kind: DiatonicKind, SourceScale: s, TargetScale: s, Degrees: degrees}
}

// DiatonicWithKeyChange builds a degree transposition that also remaps from
// a source key to a target key.
func DiatonicWithKeyChange(source, target scale.Scale, degrees int) Mode {
	return Mode{Kind: DiatonicKind, SourceScale: source, TargetScale: target, Degrees: degrees}
}

var intervalNames = map[int]string{
	1:  "minor 2nd",
	2:  "major 2nd",
	3:  "minor 3rd",
	4:  "major 3rd",
	5:  "perfect 4th",
	6:  "tritone",
	7:  "perfect 5th",
	8:  "minor 6th",
	9:  "major 6th",
	10: "minor 7th",
	11: "major 7th",
	12: "octave",
}

var degreeNames = map[int]string{
	0: "unison",
	1: "2nd",
	2: "3rd",
	3: "4th",
	4: "5th",
	5: "6th",
	6: "7th",
	7: "octave",
}

// Description renders a human-readable summary, e.g. "up a major 3rd" or
// "Diatonic up a 3rd in C Major".
func (m Mode) Description() string {
	switch m.Kind {
	case ChromaticKind:
		dir := "up"
		if m.Semitones < 0 {
			dir = "down"
		}
		interval := m.Semitones
		if interval < 0 {
			interval = -interval
		}
		if interval == 0 {
			return "No transposition"
		}
		if name, ok := intervalNames[interval]; ok {
			return fmt.Sprintf("%v a %v", dir, name)
		}
		return fmt.Sprintf("%v %v semitones", dir, interval)
	case DiatonicKind:
		dir := "up"
		if m.Degrees < 0 {
			dir = "down"
		}
		degree := m.Degrees
		if degree < 0 {
			degree = -degree
		}
		name, ok := degreeNames[degree]
		if !ok {
			return fmt.Sprintf("%v %v degrees", dir, degree)
		}
		if m.SourceScale == m.TargetScale {
			return fmt.Sprintf("Diatonic %v a %v in %v", dir, name, m.SourceScale)
		}
		return fmt.Sprintf("Diatonic %v a %v from %v to %v", dir, name, m.SourceScale, m.TargetScale)
	}
	return "No transposition"
}

// PitchChromatic shifts a pitch by semitones.
func PitchChromatic(p pitch.Pitch, semitones int) (pitch.Pitch, error) {
	return p.Transpose(semitones)
}

// PitchDiatonic finds the pitch's degree in the source scale, moves by
// degrees, and maps the resulting degree into the target scale. Non-scale
// tones snap to the nearest scale tone first; the chromatic deviation of the
// original note is discarded.
//
// Degree/octave math intentionally mixes two modulo policies: the degree is
// normalized with floor modulo (always 1-7), while the whole-octave count
// uses Go's truncating division and remainder on the signed degree shift.
// Both must stay as they are or negative transpositions shift octaves.
func PitchDiatonic(p pitch.Pitch, sourceScale, targetScale scale.Scale, degrees int) (pitch.Pitch, error) {
	pc := p.Class()
	octave := p.Octave()

	sourceDegree, ok := sourceScale.DegreeOf(pc)
	if !ok {
		nearest, _ := sourceScale.NearestScaleTone(pc)
		sourceDegree, ok = sourceScale.DegreeOf(nearest)
		if !ok {
			return pitch.Pitch{}, fmt.Errorf("%w: could not find scale degree for %v in %v",
				pitch.ErrTransposition, pc, sourceScale)
		}
	}

	raw := sourceDegree + degrees
	newDegree := ((raw-1)%7+7)%7 + 1

	newClass, ok := targetScale.Degree(newDegree)
	if !ok {
		return pitch.Pitch{}, fmt.Errorf("%w: invalid degree %v in target scale %v",
			pitch.ErrTransposition, newDegree, targetScale)
	}

	oldSemitones := int(pc.Semitones())
	newSemitones := int(newClass.Semitones())

	fullOctaves := degrees / 7
	remaining := degrees % 7

	boundaryCross := 0
	if remaining > 0 && newSemitones < oldSemitones {
		// moving up wrapped past C
		boundaryCross = 1
	} else if remaining < 0 && newSemitones > oldSemitones {
		// moving down wrapped past C
		boundaryCross = -1
	}

	return pitch.New(newClass, octave+fullOctaves+boundaryCross)
}

// Note transposes a single note, preserving timing, duration and velocity.
func Note(n note.Note, mode Mode) (note.Note, error) {
	p, err := pitch.FromMidi(int(n.Pitch))
	if err != nil {
		return note.Note{}, err
	}

	var newPitch pitch.Pitch
	switch mode.Kind {
	case ChromaticKind:
		newPitch, err = PitchChromatic(p, mode.Semitones)
	case DiatonicKind:
		newPitch, err = PitchDiatonic(p, mode.SourceScale, mode.TargetScale, mode.Degrees)
	}
	if err != nil {
		return note.Note{}, err
	}

	return note.Note{
		Pitch:         newPitch.Midi(),
		StartTick:     n.StartTick,
		DurationTicks: n.DurationTicks,
		Velocity:      n.Velocity,
	}, nil
}

// Notes transposes a batch all-or-nothing: the first failing note aborts and
// no partial result is returned.
func Notes(notes []note.Note, mode Mode) ([]note.Note, error) {
	result := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		transposed, err := Note(n, mode)
		if err != nil {
			return nil, err
		}
		result = append(result, transposed)
	}
	return result, nil
}
