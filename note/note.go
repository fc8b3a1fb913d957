package note

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cristijiru/mozart/constants"
	"github.com/cristijiru/mozart/pitch"
)

var (
	// ErrInvalidDuration means an unknown duration code.
	ErrInvalidDuration = errors.New("invalid note duration")
	// ErrParse covers malformed note or melody text.
	ErrParse = errors.New("parse error")
)

// Value is a standard note duration value.
type Value uint8

const (
	Whole Value = iota
	Half
	Quarter
	Eighth
	Sixteenth
)

// Ticks returns the duration in ticks.
func (v Value) Ticks() uint32 {
	switch v {
	case Whole:
		return constants.TicksPerQuarter * 4
	case Half:
		return constants.TicksPerQuarter * 2
	case Quarter:
		return constants.TicksPerQuarter
	case Eighth:
		return constants.TicksPerQuarter / 2
	case Sixteenth:
		return constants.TicksPerQuarter / 4
	}
	return constants.TicksPerQuarter
}

// ParseValue parses a duration code (w, h, q, e, s plus long forms).
func ParseValue(s string) (Value, error) {
	switch strings.ToLower(s) {
	case "w", "whole", "1":
		return Whole, nil
	case "h", "half", "2":
		return Half, nil
	case "q", "quarter", "4":
		return Quarter, nil
	case "e", "eighth", "8":
		return Eighth, nil
	case "s", "sixteenth", "16":
		return Sixteenth, nil
	}
	return Quarter, fmt.Errorf("%w: unknown note value: %v", ErrInvalidDuration, s)
}

// ShortName returns the single-letter duration code.
func (v Value) ShortName() string {
	switch v {
	case Whole:
		return "w"
	case Half:
		return "h"
	case Quarter:
		return "q"
	case Eighth:
		return "e"
	case Sixteenth:
		return "s"
	}
	return "q"
}

func (v Value) String() string {
	switch v {
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	case Eighth:
		return "eighth"
	case Sixteenth:
		return "sixteenth"
	}
	return "quarter"
}

// Duration is a note value with an optional dot.
type Duration struct {
	Value  Value
	Dotted bool
}

// NewDuration wraps a plain value.
func NewDuration(value Value) Duration {
	return Duration{Value: value}
}

// DottedDuration wraps a dotted value.
func DottedDuration(value Value) Duration {
	return Duration{Value: value, Dotted: true}
}

// Ticks returns the duration in ticks; a dot adds half the base value.
func (d Duration) Ticks() uint32 {
	base := d.Value.Ticks()
	if d.Dotted {
		return base + base/2
	}
	return base
}

// DurationFromTicks finds the closest of the ten candidate durations
// (five values, dotted or not). The first minimal match in enumeration
// order wins ties.
func DurationFromTicks(ticks uint32) Duration {
	values := [5]Value{Whole, Half, Quarter, Eighth, Sixteenth}

	best := NewDuration(Quarter)
	bestDiff := int64(-1)

	for _, value := range values {
		for _, candidate := range [2]Duration{NewDuration(value), DottedDuration(value)} {
			diff := int64(candidate.Ticks()) - int64(ticks)
			if diff < 0 {
				diff = -diff
			}
			if bestDiff < 0 || diff < bestDiff {
				bestDiff = diff
				best = candidate
			}
		}
	}

	return best
}

func (d Duration) String() string {
	if d.Dotted {
		return d.Value.ShortName() + "."
	}
	return d.Value.ShortName()
}

// Note is a single timed pitch. Notes are plain values; the owning score is
// responsible for ordering.
type Note struct {
	// MIDI pitch (0-127)
	Pitch uint8 `json:"pitch"`
	// Start position in ticks from the beginning of the score
	StartTick uint32 `json:"start_tick"`
	// Duration in ticks
	DurationTicks uint32 `json:"duration_ticks"`
	// Velocity (0-127, default 100)
	Velocity uint8 `json:"velocity"`
	// Voice/layer (0 = main melody, 1+ = harmony voices)
	Voice uint8 `json:"voice,omitempty"`
}

// New creates a note with the default velocity.
func New(pitchNum uint8, startTick, durationTicks uint32) Note {
	return Note{
		Pitch:         pitchNum,
		StartTick:     startTick,
		DurationTicks: durationTicks,
		Velocity:      constants.DefaultVelocity,
	}
}

// WithVelocity creates a note with a specific velocity, clamped to 127.
func WithVelocity(pitchNum uint8, startTick, durationTicks uint32, velocity uint8) Note {
	if velocity > 127 {
		velocity = 127
	}
	return Note{
		Pitch:         pitchNum,
		StartTick:     startTick,
		DurationTicks: durationTicks,
		Velocity:      velocity,
	}
}

// WithVoice creates a note on a specific voice.
func WithVoice(pitchNum uint8, startTick, durationTicks uint32, velocity, voice uint8) Note {
	n := WithVelocity(pitchNum, startTick, durationTicks, velocity)
	n.Voice = voice
	return n
}

// FromPitch creates a note from a pitch and a duration.
func FromPitch(p pitch.Pitch, startTick uint32, duration Duration) Note {
	return New(p.Midi(), startTick, duration.Ticks())
}

// GetPitch returns the note's pitch.
func (n Note) GetPitch() (pitch.Pitch, error) {
	return pitch.FromMidi(int(n.Pitch))
}

// EndTick returns start + duration.
func (n Note) EndTick() uint32 {
	return n.StartTick + n.DurationTicks
}

// Duration returns the closest notated duration for the note's ticks.
func (n Note) Duration() Duration {
	return DurationFromTicks(n.DurationTicks)
}

// parseDuration reads a duration code with an optional trailing dot.
// An empty string defaults to an undotted quarter.
func parseDuration(s string) (Duration, error) {
	if s == "" {
		return NewDuration(Quarter), nil
	}
	dotted := strings.HasSuffix(s, ".")
	valueStr := s
	if dotted {
		valueStr = s[:len(s)-1]
	}
	value, err := ParseValue(valueStr)
	if err != nil {
		return Duration{}, err
	}
	return Duration{Value: value, Dotted: dotted}, nil
}

// Parse reads a single note token like "C4q" or "F#5h." and places it at
// startTick. The pitch ends at the first alphabetic character that follows
// the octave digits; everything after is the duration code.
func Parse(s string, startTick uint32) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Note{}, fmt.Errorf("%w: empty note string", ErrParse)
	}

	pitchEnd := len(s)
	foundOctave := false
	for i, c := range s {
		if (c >= '0' && c <= '9') || c == '-' {
			foundOctave = true
		} else if foundOctave && isASCIILetter(c) {
			pitchEnd = i
			break
		}
	}

	p, err := pitch.Parse(s[:pitchEnd])
	if err != nil {
		return Note{}, err
	}
	duration, err := parseDuration(s[pitchEnd:])
	if err != nil {
		return Note{}, err
	}

	return FromPitch(p, startTick, duration), nil
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Text renders the note as pitch plus duration code, e.g. "C4q" or "Bb3h.".
func (n Note) Text() string {
	p, _ := pitch.FromMidi(int(n.Pitch))
	return fmt.Sprintf("%v%v", p, n.Duration())
}

func (n Note) String() string {
	return n.Text()
}

// ParseMelody reads a space-separated melody like "C4q D4q E4q Rq G4h".
// A running cursor starts at 0; rests (leading R) advance it without
// emitting a note. Any malformed token fails the whole melody.
func ParseMelody(s string) ([]Note, error) {
	var notes []Note
	var currentTick uint32

	for _, token := range strings.Fields(s) {
		if strings.HasPrefix(strings.ToUpper(token), "R") {
			duration, err := parseDuration(token[1:])
			if err != nil {
				return nil, err
			}
			currentTick += duration.Ticks()
			continue
		}

		n, err := Parse(token, currentTick)
		if err != nil {
			return nil, err
		}
		currentTick = n.EndTick()
		notes = append(notes, n)
	}

	return notes, nil
}

// FormatMelody renders notes as melody text. Rests are not reproduced; gaps
// between notes stay implicit.
func FormatMelody(notes []Note) string {
	texts := make([]string, 0, len(notes))
	for _, n := range notes {
		texts = append(texts, n.Text())
	}
	return strings.Join(texts, " ")
}
