package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClass(t *testing.T) {
	assert := assert.New(t)

	c, err := ParseClass("C")
	assert.NoError(err)
	assert.Equal(c, C)

	c, err = ParseClass("c")
	assert.NoError(err)
	assert.Equal(c, C)

	c, err = ParseClass("C#")
	assert.NoError(err)
	assert.Equal(c, CSharp)

	c, err = ParseClass("Db")
	assert.NoError(err)
	assert.Equal(c, DFlat)

	c, err = ParseClass("F♯")
	assert.NoError(err)
	assert.Equal(c, FSharp)

	c, err = ParseClass("Gs")
	assert.NoError(err)
	assert.Equal(c, GSharp)

	c, err = ParseClass("Bb")
	assert.NoError(err)
	assert.Equal(c, BFlat)

	_, err = ParseClass("H")
	assert.ErrorIs(err, ErrInvalidPitch)
}

func TestClassTranspose(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(C.Transpose(2), D)
	assert.Equal(C.Transpose(12), C)
	assert.Equal(C.Transpose(-1), B)
	assert.Equal(A.Transpose(3), C)
	assert.Equal(C.Transpose(-13), B)
}

func TestClassTransposeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, pc := range AllClasses() {
		for n := -30; n <= 30; n++ {
			name := fmt.Sprintf("%v by %v", pc, n)
			assert.Equal(pc.Transpose(n).Transpose(-n), pc, name)
		}
	}
}

func TestIntervalTo(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(C.IntervalTo(E), uint8(4))
	assert.Equal(E.IntervalTo(C), uint8(8))
	assert.Equal(A.IntervalTo(A), uint8(0))
}

func TestPitchParse(t *testing.T) {
	assert := assert.New(t)

	c4, err := Parse("C4")
	assert.NoError(err)
	assert.Equal(c4.Midi(), uint8(60))
	assert.Equal(c4.Class(), C)
	assert.Equal(c4.Octave(), 4)

	fsharp5, err := Parse("F#5")
	assert.NoError(err)
	assert.Equal(fsharp5.Midi(), uint8(78))

	bb3, err := Parse("Bb3")
	assert.NoError(err)
	assert.Equal(bb3.Midi(), uint8(58))

	cneg1, err := Parse("C-1")
	assert.NoError(err)
	assert.Equal(cneg1.Midi(), uint8(0))

	_, err = Parse("C")
	assert.ErrorIs(err, ErrParse)
}

func TestPitchNewOutOfRange(t *testing.T) {
	assert := assert.New(t)

	_, err := New(C, 11)
	assert.ErrorIs(err, ErrInvalidPitch)

	_, err = New(B, -2)
	assert.ErrorIs(err, ErrInvalidPitch)

	g9, err := New(G, 9)
	assert.NoError(err)
	assert.Equal(g9.Midi(), uint8(127))
}

func TestPitchTranspose(t *testing.T) {
	assert := assert.New(t)

	d4, err := MiddleC.Transpose(2)
	assert.NoError(err)
	assert.Equal(d4.Midi(), uint8(62))
	assert.Equal(d4.Class(), D)
	assert.Equal(d4.Octave(), 4)

	c5, err := MiddleC.Transpose(12)
	assert.NoError(err)
	assert.Equal(c5.Octave(), 5)

	_, err = MiddleC.Transpose(100)
	assert.ErrorIs(err, ErrTransposition)

	_, err = MiddleC.Transpose(-61)
	assert.ErrorIs(err, ErrTransposition)
}

func TestPitchFrequency(t *testing.T) {
	assert := assert.New(t)

	a4, _ := FromMidi(69)
	assert.InDelta(a4.Frequency(), 440.0, 0.001)

	a5, _ := FromMidi(81)
	assert.InDelta(a5.Frequency(), 880.0, 0.001)
}

func TestPitchString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(MiddleC.String(), "C4")

	eb3, _ := New(EFlat, 3)
	assert.Equal(eb3.String(), "Eb3")
}
