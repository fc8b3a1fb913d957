package scale

import (
	"testing"

	"github.com/cristijiru/mozart/pitch"
	"github.com/stretchr/testify/assert"
)

func TestMajorIntervals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Major.Intervals(), [7]uint8{0, 2, 4, 5, 7, 9, 11})
	assert.Equal(NaturalMinor.Intervals(), [7]uint8{0, 2, 3, 5, 7, 8, 10})
	assert.Equal(Lydian.Intervals(), [7]uint8{0, 2, 4, 6, 7, 9, 11})
}

func TestCMajorPitchClasses(t *testing.T) {
	assert := assert.New(t)

	pcs := CMajor().PitchClasses()
	assert.Equal(pcs, []pitch.Class{
		pitch.C, pitch.D, pitch.E, pitch.F, pitch.G, pitch.A, pitch.B,
	})
}

func TestContains(t *testing.T) {
	assert := assert.New(t)

	cMajor := CMajor()
	assert.True(cMajor.Contains(pitch.C))
	assert.True(cMajor.Contains(pitch.G))
	assert.False(cMajor.Contains(pitch.CSharp))
	assert.False(cMajor.Contains(pitch.FSharp))
}

func TestDegrees(t *testing.T) {
	assert := assert.New(t)

	cMajor := CMajor()

	deg, ok := cMajor.DegreeOf(pitch.C)
	assert.True(ok)
	assert.Equal(deg, 1)

	deg, ok = cMajor.DegreeOf(pitch.E)
	assert.True(ok)
	assert.Equal(deg, 3)

	deg, ok = cMajor.DegreeOf(pitch.G)
	assert.True(ok)
	assert.Equal(deg, 5)

	_, ok = cMajor.DegreeOf(pitch.CSharp)
	assert.False(ok)

	pc, ok := cMajor.Degree(5)
	assert.True(ok)
	assert.Equal(pc, pitch.G)

	_, ok = cMajor.Degree(0)
	assert.False(ok)
	_, ok = cMajor.Degree(8)
	assert.False(ok)
}

func TestNearestScaleTone(t *testing.T) {
	assert := assert.New(t)

	cMajor := CMajor()

	// in-scale tones come back unchanged
	pc, adj := cMajor.NearestScaleTone(pitch.G)
	assert.Equal(pc, pitch.G)
	assert.Equal(adj, 0)

	// F# is one semitone from both F and G; the table scan finds F first
	pc, adj = cMajor.NearestScaleTone(pitch.FSharp)
	assert.True(pc == pitch.F || pc == pitch.G)
	assert.Equal(abs(adj), 1)

	pc, adj = cMajor.NearestScaleTone(pitch.CSharp)
	assert.True(pc == pitch.C || pc == pitch.D)
	assert.Equal(abs(adj), 1)
}

func TestParseType(t *testing.T) {
	assert := assert.New(t)

	for input, want := range map[string]Type{
		"major":         Major,
		"Maj":           Major,
		"ionian":        Major,
		"minor":         NaturalMinor,
		"aeolian":       NaturalMinor,
		"natural minor": NaturalMinor,
		"harm":          HarmonicMinor,
		"mel":           MelodicMinor,
		"dorian":        Dorian,
		"phryg":         Phrygian,
		"lyd":           Lydian,
		"mixo":          Mixolydian,
		"loc":           Locrian,
	} {
		parsed, err := ParseType(input)
		assert.NoError(err, input)
		assert.Equal(parsed, want, input)
	}

	_, err := ParseType("klezmer")
	assert.ErrorIs(err, ErrInvalidScale)
}

func TestParseScale(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse("C major")
	assert.NoError(err)
	assert.Equal(s, CMajor())

	s, err = Parse("F# minor")
	assert.NoError(err)
	assert.Equal(s.Root, pitch.FSharp)
	assert.Equal(s.Type, NaturalMinor)

	s, err = Parse("Bb dorian")
	assert.NoError(err)
	assert.Equal(s.Root, pitch.BFlat)
	assert.Equal(s.Type, Dorian)

	// missing type defaults to major
	s, err = Parse("G")
	assert.NoError(err)
	assert.Equal(s.Type, Major)
}

func TestTypeJSON(t *testing.T) {
	assert := assert.New(t)

	for _, scaleType := range AllTypes() {
		data, err := scaleType.MarshalJSON()
		assert.NoError(err)

		var decoded Type
		err = decoded.UnmarshalJSON(data)
		assert.NoError(err)
		assert.Equal(decoded, scaleType)
	}

	var decoded Type
	err := decoded.UnmarshalJSON([]byte(`"Klezmer"`))
	assert.ErrorIs(err, ErrInvalidScale)
}
