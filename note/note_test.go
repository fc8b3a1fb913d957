package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueTicks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Whole.Ticks(), uint32(1920))
	assert.Equal(Half.Ticks(), uint32(960))
	assert.Equal(Quarter.Ticks(), uint32(480))
	assert.Equal(Eighth.Ticks(), uint32(240))
	assert.Equal(Sixteenth.Ticks(), uint32(120))
}

func TestDottedDuration(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(DottedDuration(Half).Ticks(), uint32(1440))
	assert.Equal(DottedDuration(Quarter).Ticks(), uint32(720))
}

func TestDurationFromTicks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(DurationFromTicks(480), NewDuration(Quarter))
	assert.Equal(DurationFromTicks(720), DottedDuration(Quarter))
	assert.Equal(DurationFromTicks(1920), NewDuration(Whole))
	// close-enough values snap
	assert.Equal(DurationFromTicks(470), NewDuration(Quarter))
	assert.Equal(DurationFromTicks(10), NewDuration(Sixteenth))
}

func TestParseValue(t *testing.T) {
	assert := assert.New(t)

	for input, want := range map[string]Value{
		"w": Whole, "whole": Whole, "1": Whole,
		"h": Half, "2": Half,
		"q": Quarter, "quarter": Quarter, "4": Quarter,
		"e": Eighth, "8": Eighth,
		"s": Sixteenth, "16": Sixteenth,
	} {
		v, err := ParseValue(input)
		assert.NoError(err, input)
		assert.Equal(v, want, input)
	}

	_, err := ParseValue("x")
	assert.ErrorIs(err, ErrInvalidDuration)
}

func TestNoteParse(t *testing.T) {
	assert := assert.New(t)

	n, err := Parse("C4q", 0)
	assert.NoError(err)
	assert.Equal(n.Pitch, uint8(60))
	assert.Equal(n.DurationTicks, uint32(480))

	n, err = Parse("F#5h", 0)
	assert.NoError(err)
	assert.Equal(n.Pitch, uint8(78))
	assert.Equal(n.DurationTicks, uint32(960))

	n, err = Parse("Bb3q.", 0)
	assert.NoError(err)
	assert.Equal(n.Pitch, uint8(58))
	assert.Equal(n.DurationTicks, uint32(720))

	// missing duration defaults to a quarter
	n, err = Parse("E2", 0)
	assert.NoError(err)
	assert.Equal(n.Pitch, uint8(40))
	assert.Equal(n.DurationTicks, uint32(480))

	_, err = Parse("C4x", 0)
	assert.ErrorIs(err, ErrInvalidDuration)

	_, err = Parse("", 0)
	assert.ErrorIs(err, ErrParse)
}

func TestNoteDefaults(t *testing.T) {
	assert := assert.New(t)

	n := New(60, 0, 480)
	assert.Equal(n.Velocity, uint8(100))
	assert.Equal(n.Voice, uint8(0))
	assert.Equal(n.EndTick(), uint32(480))

	loud := WithVelocity(60, 0, 480, 200)
	assert.Equal(loud.Velocity, uint8(127))

	voiced := WithVoice(60, 0, 480, 90, 2)
	assert.Equal(voiced.Voice, uint8(2))
}

func TestParseMelody(t *testing.T) {
	assert := assert.New(t)

	melody, err := ParseMelody("C4q D4q E4q")
	assert.NoError(err)
	assert.Equal(len(melody), 3)
	assert.Equal(melody[0].Pitch, uint8(60))
	assert.Equal(melody[0].StartTick, uint32(0))
	assert.Equal(melody[1].Pitch, uint8(62))
	assert.Equal(melody[1].StartTick, uint32(480))
	assert.Equal(melody[2].Pitch, uint8(64))
	assert.Equal(melody[2].StartTick, uint32(960))
}

func TestParseMelodyWithRests(t *testing.T) {
	assert := assert.New(t)

	melody, err := ParseMelody("C4q Rq E4q")
	assert.NoError(err)
	assert.Equal(len(melody), 2)
	assert.Equal(melody[0].StartTick, uint32(0))
	// quarter note then quarter rest
	assert.Equal(melody[1].StartTick, uint32(960))

	// dotted rest, bare rest defaults to quarter
	melody, err = ParseMelody("rh. C4q R E4q")
	assert.NoError(err)
	assert.Equal(melody[0].StartTick, uint32(1440))
	assert.Equal(melody[1].StartTick, uint32(2400))
}

func TestParseMelodyAllOrNothing(t *testing.T) {
	assert := assert.New(t)

	melody, err := ParseMelody("C4q D4q XX E4q")
	assert.Error(err)
	assert.Nil(melody)
}

func TestFormatMelody(t *testing.T) {
	assert := assert.New(t)

	melody, err := ParseMelody("C4q D4e. E4h")
	assert.NoError(err)
	assert.Equal(FormatMelody(melody), "C4q D4e. E4h")

	// rests are not reproduced; reparsing the text closes the gap
	melody, err = ParseMelody("C4q Rq E4q")
	assert.NoError(err)
	assert.Equal(FormatMelody(melody), "C4q E4q")
	reparsed, err := ParseMelody(FormatMelody(melody))
	assert.NoError(err)
	assert.Equal(reparsed[1].StartTick, uint32(480))
}
