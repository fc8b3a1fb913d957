package transpose

import (
	"github.com/cristijiru/mozart/note"
	"github.com/cristijiru/mozart/pitch"
	"github.com/cristijiru/mozart/scale"
)

type detectScore struct {
	matchesAll bool
	lastIsRoot bool
	isMinor    bool
	matches    int
}

// greater compares lexicographically; a tie is not greater, so the first
// candidate found keeps its spot.
func (s detectScore) greater(other detectScore) bool {
	if s.matchesAll != other.matchesAll {
		return s.matchesAll
	}
	if s.lastIsRoot != other.lastIsRoot {
		return s.lastIsRoot
	}
	if s.isMinor != other.isMinor {
		return s.isMinor
	}
	return s.matches > other.matches
}

// DetectScale suggests a likely scale for a melody. Only major and natural
// minor are considered, minor preferred when ambiguous, and a candidate whose
// root matches the last note wins over one that merely contains every pitch
// class. Returns false for an empty melody.
func DetectScale(notes []note.Note) (scale.Scale, bool) {
	if len(notes) == 0 {
		return scale.Scale{}, false
	}

	used := make(map[uint8]bool)
	for _, n := range notes {
		p, err := pitch.FromMidi(int(n.Pitch))
		if err != nil {
			continue
		}
		used[p.Class().Semitones()] = true
	}

	lastClass := -1
	if p, err := pitch.FromMidi(int(notes[len(notes)-1].Pitch)); err == nil {
		lastClass = int(p.Class().Semitones())
	}

	// minor first, so it wins ties
	scaleTypes := [2]scale.Type{scale.NaturalMinor, scale.Major}

	var best scale.Scale
	var bestScore detectScore
	found := false

	for _, root := range pitch.AllClasses() {
		for _, scaleType := range scaleTypes {
			candidate := scale.New(root, scaleType)

			inScale := make(map[uint8]bool)
			for _, pc := range candidate.PitchClasses() {
				inScale[pc.Semitones()] = true
			}

			matches := 0
			for semitones := range used {
				if inScale[semitones] {
					matches++
				}
			}

			score := detectScore{
				matchesAll: matches == len(used),
				lastIsRoot: lastClass == int(root.Semitones()),
				isMinor:    scaleType == scale.NaturalMinor,
				matches:    matches,
			}

			if !found || score.greater(bestScore) {
				best = candidate
				bestScore = score
				found = true
			}
		}
	}

	return best, true
}
