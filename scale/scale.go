package scale

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cristijiru/mozart/pitch"
)

// ErrInvalidScale means an unknown scale-type or scale name.
var ErrInvalidScale = errors.New("invalid scale")

// Type is one of the nine supported scale types. It is a closed set; every
// switch over it is exhaustive.
type Type uint8

const (
	Major Type = iota // Ionian mode
	NaturalMinor      // Aeolian mode
	HarmonicMinor
	MelodicMinor // ascending form
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Locrian
)

// Intervals returns the ascending semitone offsets from the root for the
// seven scale degrees.
func (t Type) Intervals() [7]uint8 {
	switch t {
	case Major:
		// W W H W W W H
		return [7]uint8{0, 2, 4, 5, 7, 9, 11}
	case NaturalMinor:
		// W H W W H W W
		return [7]uint8{0, 2, 3, 5, 7, 8, 10}
	case HarmonicMinor:
		// W H W W H W+H H
		return [7]uint8{0, 2, 3, 5, 7, 8, 11}
	case MelodicMinor:
		// W H W W W W H
		return [7]uint8{0, 2, 3, 5, 7, 9, 11}
	case Dorian:
		// W H W W W H W
		return [7]uint8{0, 2, 3, 5, 7, 9, 10}
	case Phrygian:
		// H W W W H W W
		return [7]uint8{0, 1, 3, 5, 7, 8, 10}
	case Lydian:
		// W W W H W W H
		return [7]uint8{0, 2, 4, 6, 7, 9, 11}
	case Mixolydian:
		// W W H W W H W
		return [7]uint8{0, 2, 4, 5, 7, 9, 10}
	case Locrian:
		// H W W H W W W
		return [7]uint8{0, 1, 3, 5, 6, 8, 10}
	}
	return [7]uint8{0, 2, 4, 5, 7, 9, 11}
}

// ParseType parses a scale-type name, accepting common aliases.
func ParseType(s string) (Type, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "major", "maj", "ionian":
		return Major, nil
	case "minor", "min", "natural minor", "natural_minor", "aeolian":
		return NaturalMinor, nil
	case "harmonic minor", "harmonic_minor", "harm":
		return HarmonicMinor, nil
	case "melodic minor", "melodic_minor", "mel":
		return MelodicMinor, nil
	case "dorian", "dor":
		return Dorian, nil
	case "phrygian", "phryg":
		return Phrygian, nil
	case "lydian", "lyd":
		return Lydian, nil
	case "mixolydian", "mixo":
		return Mixolydian, nil
	case "locrian", "loc":
		return Locrian, nil
	}
	return Major, fmt.Errorf("%w: unknown scale: %v", ErrInvalidScale, s)
}

// Name returns the display name.
func (t Type) Name() string {
	switch t {
	case Major:
		return "Major"
	case NaturalMinor:
		return "Natural Minor"
	case HarmonicMinor:
		return "Harmonic Minor"
	case MelodicMinor:
		return "Melodic Minor"
	case Dorian:
		return "Dorian"
	case Phrygian:
		return "Phrygian"
	case Lydian:
		return "Lydian"
	case Mixolydian:
		return "Mixolydian"
	case Locrian:
		return "Locrian"
	}
	return "Major"
}

// AllTypes returns every scale type.
func AllTypes() []Type {
	return []Type{
		Major, NaturalMinor, HarmonicMinor, MelodicMinor,
		Dorian, Phrygian, Lydian, Mixolydian, Locrian,
	}
}

func (t Type) String() string {
	return t.Name()
}

// jsonName is the wire spelling used in .mozart.json files.
func (t Type) jsonName() string {
	switch t {
	case Major:
		return "Major"
	case NaturalMinor:
		return "NaturalMinor"
	case HarmonicMinor:
		return "HarmonicMinor"
	case MelodicMinor:
		return "MelodicMinor"
	case Dorian:
		return "Dorian"
	case Phrygian:
		return "Phrygian"
	case Lydian:
		return "Lydian"
	case Mixolydian:
		return "Mixolydian"
	case Locrian:
		return "Locrian"
	}
	return "Major"
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.jsonName())
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for _, candidate := range AllTypes() {
		if candidate.jsonName() == name {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: unknown scale type: %v", ErrInvalidScale, name)
}

// Scale is a root pitch class plus a scale type. Degree numbers are 1-7.
type Scale struct {
	Root pitch.Class `json:"root"`
	Type Type        `json:"scale_type"`
}

// New creates a scale.
func New(root pitch.Class, scaleType Type) Scale {
	return Scale{Root: root, Type: scaleType}
}

// CMajor is the default key.
func CMajor() Scale {
	return New(pitch.C, Major)
}

// AMinor is the natural-minor relative of C major.
func AMinor() Scale {
	return New(pitch.A, NaturalMinor)
}

// PitchClasses returns the seven pitch classes of the scale in degree order.
func (s Scale) PitchClasses() []pitch.Class {
	intervals := s.Type.Intervals()
	classes := make([]pitch.Class, 0, len(intervals))
	for _, interval := range intervals {
		classes = append(classes, s.Root.Transpose(int(interval)))
	}
	return classes
}

// Contains reports whether the pitch class is a scale tone.
func (s Scale) Contains(class pitch.Class) bool {
	interval := s.Root.IntervalTo(class)
	for _, candidate := range s.Type.Intervals() {
		if candidate == interval {
			return true
		}
	}
	return false
}

// DegreeOf returns the 1-based scale degree of the pitch class, or false if
// it is not a scale tone.
func (s Scale) DegreeOf(class pitch.Class) (int, bool) {
	interval := s.Root.IntervalTo(class)
	for i, candidate := range s.Type.Intervals() {
		if candidate == interval {
			return i + 1, true
		}
	}
	return 0, false
}

// Degree returns the pitch class at degree 1-7.
func (s Scale) Degree(degree int) (pitch.Class, bool) {
	if degree < 1 || degree > 7 {
		return pitch.C, false
	}
	intervals := s.Type.Intervals()
	return s.Root.Transpose(int(intervals[degree-1])), true
}

// NearestScaleTone snaps a pitch class onto the scale, returning the tone and
// the signed semitone adjustment applied. In-scale classes come back
// unchanged with adjustment 0. Distance ties keep the first tone found while
// scanning the interval table in order; that iteration order is part of the
// contract.
func (s Scale) NearestScaleTone(class pitch.Class) (pitch.Class, int) {
	interval := s.Root.IntervalTo(class)

	intervals := s.Type.Intervals()
	for _, candidate := range intervals {
		if candidate == interval {
			return class, 0
		}
	}

	bestAdjustment := 127
	bestClass := class
	for _, scaleInterval := range intervals {
		diff := int(scaleInterval) - int(interval)
		// both directions, with wrap-around
		for _, adj := range [3]int{diff, diff - 12, diff + 12} {
			if abs(adj) < abs(bestAdjustment) {
				bestAdjustment = adj
				bestClass = class.Transpose(adj)
			}
		}
	}

	return bestClass, bestAdjustment
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Parse reads a scale like "C major", "F# minor" or "Bb dorian". A missing
// type defaults to major.
func Parse(s string) (Scale, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, " ", 2)

	if len(parts) == 0 || parts[0] == "" {
		return Scale{}, fmt.Errorf("%w: empty scale string", ErrInvalidScale)
	}

	root, err := pitch.ParseClass(parts[0])
	if err != nil {
		return Scale{}, err
	}

	scaleType := Major
	if len(parts) > 1 {
		scaleType, err = ParseType(parts[1])
		if err != nil {
			return Scale{}, err
		}
	}

	return New(root, scaleType), nil
}

func (s Scale) String() string {
	return fmt.Sprintf("%v %v", s.Root, s.Type)
}
