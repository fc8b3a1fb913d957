package meter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cristijiru/mozart/constants"
)

var (
	// ErrInvalidTimeSignature means the numerator/denominator combination
	// failed validation.
	ErrInvalidTimeSignature = errors.New("invalid time signature")
	// ErrParse covers malformed time-signature text.
	ErrParse = errors.New("parse error")
)

// AccentLevel is the relative emphasis of a beat within a measure.
type AccentLevel uint8

const (
	// Weak beat (normal volume)
	Weak AccentLevel = 1
	// Medium accent (secondary emphasis)
	Medium AccentLevel = 2
	// Strong accent (downbeat)
	Strong AccentLevel = 3
)

// VelocityMultiplier scales note velocity for this accent level.
func (a AccentLevel) VelocityMultiplier() float32 {
	switch a {
	case Strong:
		return 1.0
	case Medium:
		return 0.85
	}
	return 0.7
}

// AccentLevelFromValue coerces a numeric value; anything below 2 is weak.
func AccentLevelFromValue(v uint8) AccentLevel {
	switch v {
	case 3:
		return Strong
	case 2:
		return Medium
	}
	return Weak
}

func (a AccentLevel) String() string {
	switch a {
	case Strong:
		return ">"
	case Medium:
		return "-"
	}
	return "."
}

// AccentPattern is one accent level per beat of a measure. It serializes as
// a flat array of 1/2/3 values.
type AccentPattern []AccentLevel

// PatternFromValues builds a pattern from numeric values (1=weak, 2=medium,
// 3=strong).
func PatternFromValues(values []uint8) AccentPattern {
	pattern := make(AccentPattern, 0, len(values))
	for _, v := range values {
		pattern = append(pattern, AccentLevelFromValue(v))
	}
	return pattern
}

// DefaultForBeats returns the conventional metric grouping for a numerator.
// Odd meters group in threes and twos; anything outside 2-15 falls back to
// strong-on-one.
func DefaultForBeats(beats uint8) AccentPattern {
	switch beats {
	case 2:
		return AccentPattern{Strong, Weak}
	case 3:
		return AccentPattern{Strong, Weak, Weak}
	case 4:
		return AccentPattern{Strong, Weak, Medium, Weak}
	case 5: // 3+2
		return AccentPattern{Strong, Weak, Weak, Medium, Weak}
	case 6: // 3+3
		return AccentPattern{Strong, Weak, Weak, Medium, Weak, Weak}
	case 7: // 3+2+2
		return AccentPattern{Strong, Weak, Weak, Medium, Weak, Medium, Weak}
	case 8: // 2+2+2+2
		return AccentPattern{Strong, Weak, Medium, Weak, Medium, Weak, Medium, Weak}
	case 9: // 3+3+3
		return AccentPattern{Strong, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Weak}
	case 10: // 3+2+2+3
		return AccentPattern{Strong, Weak, Weak, Medium, Weak, Medium, Weak, Medium, Weak, Weak}
	case 11: // 3+3+3+2
		return AccentPattern{Strong, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Weak, Medium, Weak}
	case 12: // 3+3+3+3
		return AccentPattern{Strong, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Weak}
	case 13: // 3+3+3+2+2
		return AccentPattern{Strong, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Medium, Weak}
	case 14: // 2+2+2+2+2+2+2
		return AccentPattern{Strong, Weak, Medium, Weak, Medium, Weak, Medium, Weak, Medium, Weak, Medium, Weak, Medium, Weak}
	case 15: // 3+3+3+3+3
		return AccentPattern{Strong, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Weak, Medium, Weak, Weak}
	}

	pattern := make(AccentPattern, beats)
	for i := range pattern {
		pattern[i] = Weak
	}
	if len(pattern) > 0 {
		pattern[0] = Strong
	}
	return pattern
}

// Get returns the accent at a 0-indexed beat, weak when out of range.
func (p AccentPattern) Get(beat int) AccentLevel {
	if beat < 0 || beat >= len(p) {
		return Weak
	}
	return p[beat]
}

// Set replaces the accent at a 0-indexed beat; out-of-range beats are
// ignored.
func (p AccentPattern) Set(beat int, level AccentLevel) {
	if beat >= 0 && beat < len(p) {
		p[beat] = level
	}
}

// Cycle advances the accent at a beat: weak -> medium -> strong -> weak.
func (p AccentPattern) Cycle(beat int) {
	if beat < 0 || beat >= len(p) {
		return
	}
	switch p[beat] {
	case Weak:
		p[beat] = Medium
	case Medium:
		p[beat] = Strong
	case Strong:
		p[beat] = Weak
	}
}

// Visual renders the pattern as one symbol per beat, e.g. ">.-." for 4/4.
func (p AccentPattern) Visual() string {
	var out strings.Builder
	for _, a := range p {
		out.WriteString(a.String())
	}
	return out.String()
}

func (p AccentPattern) String() string {
	return p.Visual()
}

// MarshalJSON emits the flat numeric array of the wire format. encoding/json
// base64s any slice of uint8 kind, so the bridge type must be wider.
func (p AccentPattern) MarshalJSON() ([]byte, error) {
	values := make([]int, 0, len(p))
	for _, a := range p {
		values = append(values, int(a))
	}
	return json.Marshal(values)
}

func (p *AccentPattern) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	pattern := make(AccentPattern, 0, len(values))
	for _, v := range values {
		pattern = append(pattern, AccentLevelFromValue(uint8(v)))
	}
	*p = pattern
	return nil
}

// TimeSignature is a validated meter: numerator 2-15, denominator one of
// 2/4/8/16, and an accent pattern whose length equals the numerator.
type TimeSignature struct {
	Numerator   uint8         `json:"numerator"`
	Denominator uint8         `json:"denominator"`
	Accents     AccentPattern `json:"accents"`
}

func validate(numerator, denominator uint8) error {
	if numerator < 2 || numerator > 15 {
		return fmt.Errorf("%w: %v/%v", ErrInvalidTimeSignature, numerator, denominator)
	}
	if denominator != 2 && denominator != 4 && denominator != 8 && denominator != 16 {
		return fmt.Errorf("%w: %v/%v", ErrInvalidTimeSignature, numerator, denominator)
	}
	return nil
}

// New creates a time signature with the default accent pattern for its
// numerator.
func New(numerator, denominator uint8) (TimeSignature, error) {
	if err := validate(numerator, denominator); err != nil {
		return TimeSignature{}, err
	}
	return TimeSignature{
		Numerator:   numerator,
		Denominator: denominator,
		Accents:     DefaultForBeats(numerator),
	}, nil
}

// WithAccents creates a time signature with a custom accent pattern. A
// pattern whose length does not match the numerator is replaced by the
// default; callers that care must check the pattern afterwards.
func WithAccents(numerator, denominator uint8, accents AccentPattern) (TimeSignature, error) {
	if err := validate(numerator, denominator); err != nil {
		return TimeSignature{}, err
	}
	if len(accents) != int(numerator) {
		fmt.Printf("Accent pattern length %v doesn't match numerator %v, using default\n",
			len(accents), numerator)
		accents = DefaultForBeats(numerator)
	}
	return TimeSignature{
		Numerator:   numerator,
		Denominator: denominator,
		Accents:     accents,
	}, nil
}

// Common time (4/4).
func Common() TimeSignature {
	ts, _ := New(4, 4)
	return ts
}

// Waltz time (3/4).
func Waltz() TimeSignature {
	ts, _ := New(3, 4)
	return ts
}

// Cut time (2/2).
func Cut() TimeSignature {
	ts, _ := New(2, 2)
	return ts
}

// CompoundDuple is 6/8.
func CompoundDuple() TimeSignature {
	ts, _ := New(6, 8)
	return ts
}

// TicksPerBeat derives the beat length from the denominator.
func (ts TimeSignature) TicksPerBeat() uint32 {
	switch ts.Denominator {
	case 2:
		return constants.TicksPerQuarter * 2
	case 8:
		return constants.TicksPerQuarter / 2
	case 16:
		return constants.TicksPerQuarter / 4
	}
	return constants.TicksPerQuarter
}

// TicksPerMeasure is ticks per beat times the numerator.
func (ts TimeSignature) TicksPerMeasure() uint32 {
	return ts.TicksPerBeat() * uint32(ts.Numerator)
}

// BeatAtTick returns the 0-indexed beat a tick falls on.
func (ts TimeSignature) BeatAtTick(tick uint32) uint32 {
	return (tick % ts.TicksPerMeasure()) / ts.TicksPerBeat()
}

// AccentAtTick returns the accent level at a tick.
func (ts TimeSignature) AccentAtTick(tick uint32) AccentLevel {
	return ts.Accents.Get(int(ts.BeatAtTick(tick)))
}

// IsOnBeat reports whether the tick is on a beat boundary.
func (ts TimeSignature) IsOnBeat(tick uint32) bool {
	return tick%ts.TicksPerBeat() == 0
}

// IsDownbeat reports whether the tick starts a measure.
func (ts TimeSignature) IsDownbeat(tick uint32) bool {
	return tick%ts.TicksPerMeasure() == 0
}

// SetAccents replaces the accent pattern. Length mismatches are rejected
// silently, keeping the current pattern.
func (ts *TimeSignature) SetAccents(accents AccentPattern) {
	if len(accents) != int(ts.Numerator) {
		fmt.Printf("Cannot set accent pattern with %v beats for %v/%v time\n",
			len(accents), ts.Numerator, ts.Denominator)
		return
	}
	ts.Accents = accents
}

// Parse reads a time signature like "4/4" or "7/8".
func Parse(s string) (TimeSignature, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return TimeSignature{}, fmt.Errorf("%w: invalid time signature format: %v", ErrParse, s)
	}

	numerator, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 8)
	if err != nil {
		return TimeSignature{}, fmt.Errorf("%w: invalid numerator: %v", ErrParse, parts[0])
	}
	denominator, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 8)
	if err != nil {
		return TimeSignature{}, fmt.Errorf("%w: invalid denominator: %v", ErrParse, parts[1])
	}

	return New(uint8(numerator), uint8(denominator))
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%v/%v", ts.Numerator, ts.Denominator)
}
