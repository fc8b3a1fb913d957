package pitch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPitch covers out-of-range MIDI numbers and unparseable
	// pitch classes.
	ErrInvalidPitch = errors.New("invalid pitch")
	// ErrTransposition means a transposition left the MIDI range.
	ErrTransposition = errors.New("transposition error")
	// ErrParse covers malformed pitch text.
	ErrParse = errors.New("parse error")
)

// Class is a pitch class: semitones from C (0 = C, 1 = C#/Db, ..., 11 = B).
type Class uint8

const (
	C      Class = 0
	CSharp Class = 1
	DFlat  Class = 1
	D      Class = 2
	DSharp Class = 3
	EFlat  Class = 3
	E      Class = 4
	F      Class = 5
	FSharp Class = 6
	GFlat  Class = 6
	G      Class = 7
	GSharp Class = 8
	AFlat  Class = 8
	A      Class = 9
	ASharp Class = 10
	BFlat  Class = 10
	B      Class = 11
)

// NewClass reduces semitones mod 12.
func NewClass(semitones int) Class {
	return Class(((semitones % 12) + 12) % 12)
}

// Semitones returns the semitone value (0-11).
func (c Class) Semitones() uint8 {
	return uint8(c)
}

// ParseClass parses a pitch class name, e.g. "C", "C#", "Db", "F♯", "Gs".
func ParseClass(s string) (Class, error) {
	s = strings.TrimSpace(s)

	switch strings.ToUpper(s) {
	case "C":
		return C, nil
	case "C#", "C♯", "CS":
		return CSharp, nil
	case "DB", "D♭":
		return DFlat, nil
	case "D":
		return D, nil
	case "D#", "D♯", "DS":
		return DSharp, nil
	case "EB", "E♭":
		return EFlat, nil
	case "E":
		return E, nil
	case "F":
		return F, nil
	case "F#", "F♯", "FS":
		return FSharp, nil
	case "GB", "G♭":
		return GFlat, nil
	case "G":
		return G, nil
	case "G#", "G♯", "GS":
		return GSharp, nil
	case "AB", "A♭":
		return AFlat, nil
	case "A":
		return A, nil
	case "A#", "A♯", "AS":
		return ASharp, nil
	case "BB", "B♭":
		return BFlat, nil
	case "B":
		return B, nil
	}
	return C, fmt.Errorf("%w: unknown pitch class: %v", ErrInvalidPitch, s)
}

// Transpose shifts by semitones, wrapping with floor modulo so the result
// stays in 0-11 for negative shifts too.
func (c Class) Transpose(semitones int) Class {
	return NewClass(int(c) + semitones)
}

// IntervalTo returns the ascending interval in semitones to other.
func (c Class) IntervalTo(other Class) uint8 {
	return uint8((((int(other) - int(c)) % 12) + 12) % 12)
}

// NaturalName returns the display name (sharps preferred except Eb/Ab/Bb).
func (c Class) NaturalName() string {
	names := [12]string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}
	return names[c%12]
}

// AllClasses returns the 12 pitch classes in chromatic order.
func AllClasses() [12]Class {
	return [12]Class{C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B}
}

func (c Class) String() string {
	return c.NaturalName()
}

// Pitch is an absolute pitch identified by its MIDI note number
// (0-127, where 60 = middle C).
type Pitch struct {
	midi uint8
}

// MiddleC is C4 (MIDI 60).
var MiddleC = Pitch{midi: 60}

// FromMidi wraps a MIDI note number, rejecting values above 127.
func FromMidi(midi int) (Pitch, error) {
	if midi < 0 || midi > 127 {
		return Pitch{}, fmt.Errorf("%w: MIDI note %v out of range (0-127)", ErrInvalidPitch, midi)
	}
	return Pitch{midi: uint8(midi)}, nil
}

// New builds a pitch from class and octave in scientific pitch notation
// (middle C = C4).
func New(class Class, octave int) (Pitch, error) {
	midi := (octave+1)*12 + int(class.Semitones())
	if midi < 0 || midi > 127 {
		return Pitch{}, fmt.Errorf("%w: pitch %v%v out of MIDI range", ErrInvalidPitch, class, octave)
	}
	return Pitch{midi: uint8(midi)}, nil
}

// Parse reads a pitch like "C4", "F#5" or "Bb3".
func Parse(s string) (Pitch, error) {
	s = strings.TrimSpace(s)

	octaveStart := strings.IndexFunc(s, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '-'
	})
	if octaveStart < 0 {
		return Pitch{}, fmt.Errorf("%w: no octave in pitch: %v", ErrParse, s)
	}

	class, err := ParseClass(s[:octaveStart])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(s[octaveStart:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: invalid octave: %v", ErrParse, s[octaveStart:])
	}

	return New(class, octave)
}

// Midi returns the MIDI note number.
func (p Pitch) Midi() uint8 {
	return p.midi
}

// Class returns the pitch class.
func (p Pitch) Class() Class {
	return NewClass(int(p.midi % 12))
}

// Octave returns the octave in scientific pitch notation.
func (p Pitch) Octave() int {
	return int(p.midi/12) - 1
}

// Transpose shifts by semitones; the result must stay in MIDI range,
// no clamping is applied.
func (p Pitch) Transpose(semitones int) (Pitch, error) {
	newMidi := int(p.midi) + semitones
	if newMidi < 0 || newMidi > 127 {
		return Pitch{}, fmt.Errorf("%w: %v + %v = %v is out of MIDI range",
			ErrTransposition, p.midi, semitones, newMidi)
	}
	return Pitch{midi: uint8(newMidi)}, nil
}

// Frequency returns the pitch frequency in Hz (A4 = 440 Hz).
func (p Pitch) Frequency() float64 {
	return 440.0 * math.Pow(2, (float64(p.midi)-69.0)/12.0)
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v%v", p.Class(), p.Octave())
}
