package transpose

import (
	"fmt"
	"testing"

	"github.com/cristijiru/mozart/note"
	"github.com/cristijiru/mozart/pitch"
	"github.com/cristijiru/mozart/scale"
	"github.com/stretchr/testify/assert"
)

func mustPitch(t *testing.T, class pitch.Class, octave int) pitch.Pitch {
	t.Helper()
	p, err := pitch.New(class, octave)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestChromatic(t *testing.T) {
	assert := assert.New(t)

	// up a major 3rd
	e4, err := PitchChromatic(pitch.MiddleC, 4)
	assert.NoError(err)
	assert.Equal(e4.Class(), pitch.E)
	assert.Equal(e4.Octave(), 4)

	// down a perfect 5th
	f3, err := PitchChromatic(pitch.MiddleC, -7)
	assert.NoError(err)
	assert.Equal(f3.Class(), pitch.F)
	assert.Equal(f3.Octave(), 3)

	_, err = PitchChromatic(pitch.MiddleC, 100)
	assert.ErrorIs(err, pitch.ErrTransposition)
}

func TestDiatonicWithinScale(t *testing.T) {
	assert := assert.New(t)
	cMajor := scale.CMajor()

	// thirds up the C major scale
	for _, tc := range []struct {
		start      pitch.Pitch
		wantClass  pitch.Class
		wantOctave int
	}{
		{pitch.MiddleC, pitch.E, 4},
		{mustPitch(t, pitch.E, 4), pitch.G, 4},
		{mustPitch(t, pitch.G, 4), pitch.B, 4},
		// crosses the octave
		{mustPitch(t, pitch.B, 4), pitch.D, 5},
	} {
		result, err := PitchDiatonic(tc.start, cMajor, cMajor, 2)
		assert.NoError(err)
		assert.Equal(result.Class(), tc.wantClass, tc.start.String())
		assert.Equal(result.Octave(), tc.wantOctave, tc.start.String())
	}
}

func TestDiatonicDown(t *testing.T) {
	assert := assert.New(t)
	cMajor := scale.CMajor()

	result, err := PitchDiatonic(mustPitch(t, pitch.E, 4), cMajor, cMajor, -2)
	assert.NoError(err)
	assert.Equal(result.Class(), pitch.C)
	assert.Equal(result.Octave(), 4)

	result, err = PitchDiatonic(pitch.MiddleC, cMajor, cMajor, -2)
	assert.NoError(err)
	assert.Equal(result.Class(), pitch.A)
	assert.Equal(result.Octave(), 3)
}

func TestDiatonicAMinorOctaveCrossing(t *testing.T) {
	assert := assert.New(t)
	aMinor := scale.AMinor()

	// A4 up a third in A minor must land on C5, not C4
	result, err := PitchDiatonic(mustPitch(t, pitch.A, 4), aMinor, aMinor, 2)
	assert.NoError(err)
	assert.Equal(result.Class(), pitch.C)
	assert.Equal(result.Octave(), 5)
	assert.Equal(result.Midi(), uint8(72))

	// G4 up a third stays in octave 4
	result, err = PitchDiatonic(mustPitch(t, pitch.G, 4), aMinor, aMinor, 2)
	assert.NoError(err)
	assert.Equal(result.Class(), pitch.B)
	assert.Equal(result.Octave(), 4)

	// C5 down a third crosses back to A4
	result, err = PitchDiatonic(mustPitch(t, pitch.C, 5), aMinor, aMinor, -2)
	assert.NoError(err)
	assert.Equal(result.Class(), pitch.A)
	assert.Equal(result.Octave(), 4)
}

func TestDiatonicSevenDegreesIsOctave(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []scale.Scale{scale.CMajor(), scale.AMinor(), scale.New(pitch.E, scale.Phrygian)} {
		for _, pc := range s.PitchClasses() {
			start, err := pitch.New(pc, 4)
			assert.NoError(err)

			up, err := PitchDiatonic(start, s, s, 7)
			assert.NoError(err)
			name := fmt.Sprintf("%v in %v", start, s)
			assert.Equal(int(up.Midi()), int(start.Midi())+12, name)

			down, err := PitchDiatonic(start, s, s, -7)
			assert.NoError(err)
			assert.Equal(int(down.Midi()), int(start.Midi())-12, name)
		}
	}
}

func TestDiatonicNonScaleToneSnaps(t *testing.T) {
	assert := assert.New(t)
	cMajor := scale.CMajor()

	// F#4 snaps to a scale tone before moving; the chromatic deviation is
	// discarded
	result, err := PitchDiatonic(mustPitch(t, pitch.FSharp, 4), cMajor, cMajor, 1)
	assert.NoError(err)
	assert.True(cMajor.Contains(result.Class()))
}

func TestDiatonicKeyChange(t *testing.T) {
	assert := assert.New(t)
	cMajor := scale.CMajor()
	gMajor := scale.New(pitch.G, scale.Major)

	// degree 1 in C maps to degree 1 in G
	result, err := PitchDiatonic(pitch.MiddleC, cMajor, gMajor, 0)
	assert.NoError(err)
	assert.Equal(result.Class(), pitch.G)

	// degree 3 up a third lands on degree 5 of G major
	result, err = PitchDiatonic(mustPitch(t, pitch.E, 4), cMajor, gMajor, 2)
	assert.NoError(err)
	assert.Equal(result.Class(), pitch.D)
}

func TestTransposeNotes(t *testing.T) {
	assert := assert.New(t)

	melody, err := note.ParseMelody("C4q D4q E4q")
	assert.NoError(err)

	transposed, err := Notes(melody, Chromatic(2))
	assert.NoError(err)
	assert.Equal(len(transposed), 3)
	assert.Equal(transposed[0].Pitch, uint8(62))
	assert.Equal(transposed[1].Pitch, uint8(64))
	assert.Equal(transposed[2].Pitch, uint8(66))

	// timing and velocity survive
	assert.Equal(transposed[2].StartTick, uint32(960))
	assert.Equal(transposed[2].DurationTicks, uint32(480))
	assert.Equal(transposed[2].Velocity, uint8(100))
}

func TestTransposeNotesDiatonic(t *testing.T) {
	assert := assert.New(t)

	melody, err := note.ParseMelody("C4q E4q G4q")
	assert.NoError(err)

	transposed, err := Notes(melody, Diatonic(scale.CMajor(), 2))
	assert.NoError(err)

	classes := make([]pitch.Class, 0, 3)
	for _, n := range transposed {
		p, err := pitch.FromMidi(int(n.Pitch))
		assert.NoError(err)
		classes = append(classes, p.Class())
	}
	assert.Equal(classes, []pitch.Class{pitch.E, pitch.G, pitch.B})
}

func TestTransposeNotesAllOrNothing(t *testing.T) {
	assert := assert.New(t)

	notes := []note.Note{
		note.New(60, 0, 480),
		note.New(120, 480, 480), // transposing this one overflows
	}

	result, err := Notes(notes, Chromatic(12))
	assert.ErrorIs(err, pitch.ErrTransposition)
	assert.Nil(result)
}

func TestModeDescription(t *testing.T) {
	assert := assert.New(t)

	assert.Contains(Chromatic(4).Description(), "major 3rd")
	assert.Contains(Chromatic(-7).Description(), "down")
	assert.Equal(Chromatic(0).Description(), "No transposition")
	assert.Contains(Chromatic(15).Description(), "15 semitones")

	diatonic := Diatonic(scale.CMajor(), 2)
	assert.Contains(diatonic.Description(), "3rd")
	assert.Contains(diatonic.Description(), "C Major")

	keyChange := DiatonicWithKeyChange(scale.CMajor(), scale.AMinor(), 0)
	assert.Contains(keyChange.Description(), "from C Major to A Natural Minor")
}
