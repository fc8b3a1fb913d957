package score

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cristijiru/mozart/constants"
	"github.com/cristijiru/mozart/meter"
	"github.com/cristijiru/mozart/note"
	"github.com/cristijiru/mozart/scale"
	"github.com/cristijiru/mozart/transpose"
)

var (
	// ErrFile covers I/O failures at the persistence edge.
	ErrFile = errors.New("file error")
	// ErrSerialization covers JSON encode/decode failures.
	ErrSerialization = errors.New("serialization error")
)

// Metadata describes a score.
type Metadata struct {
	Title    string `json:"title"`
	Composer string `json:"composer"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
}

func defaultMetadata() Metadata {
	now := timestamp()
	return Metadata{
		Title:    "Untitled",
		Created:  now,
		Modified: now,
	}
}

// Settings holds tempo, meter and key.
type Settings struct {
	// Tempo in BPM (20-300)
	Tempo         uint16              `json:"tempo"`
	TimeSignature meter.TimeSignature `json:"time_signature"`
	Key           scale.Scale         `json:"key"`
}

func defaultSettings() Settings {
	return Settings{
		Tempo:         120,
		TimeSignature: meter.Common(),
		Key:           scale.CMajor(),
	}
}

// Score is the aggregate owning metadata, settings and notes. Notes stay
// sorted by start tick and the modified timestamp is refreshed after every
// mutation. Methods assume exclusive access; callers sharing a score across
// goroutines must synchronize at their own boundary.
type Score struct {
	Version  string      `json:"version"`
	Metadata Metadata    `json:"metadata"`
	Settings Settings    `json:"settings"`
	Notes    []note.Note `json:"notes"`
}

// New creates an empty score with default settings.
func New() *Score {
	return &Score{
		Version:  constants.ScoreVersion,
		Metadata: defaultMetadata(),
		Settings: defaultSettings(),
		Notes:    []note.Note{},
	}
}

// WithTitle creates an empty score with a title.
func WithTitle(title string) *Score {
	s := New()
	s.Metadata.Title = title
	return s
}

// SetTempo clamps to 20-300 BPM.
func (s *Score) SetTempo(tempo uint16) {
	if tempo < 20 {
		tempo = 20
	}
	if tempo > 300 {
		tempo = 300
	}
	s.Settings.Tempo = tempo
	s.updateModified()
}

// SetTimeSignature replaces the meter.
func (s *Score) SetTimeSignature(ts meter.TimeSignature) {
	s.Settings.TimeSignature = ts
	s.updateModified()
}

// SetKey replaces the key.
func (s *Score) SetKey(key scale.Scale) {
	s.Settings.Key = key
	s.updateModified()
}

// AddNote inserts a note, keeping the collection ordered.
func (s *Score) AddNote(n note.Note) {
	s.Notes = append(s.Notes, n)
	s.sortNotes()
	s.updateModified()
}

// AddNotes inserts multiple notes.
func (s *Score) AddNotes(notes []note.Note) {
	s.Notes = append(s.Notes, notes...)
	s.sortNotes()
	s.updateModified()
}

// RemoveNote removes the note at index, returning false when out of range.
func (s *Score) RemoveNote(index int) (note.Note, bool) {
	if index < 0 || index >= len(s.Notes) {
		return note.Note{}, false
	}
	removed := s.Notes[index]
	s.Notes = append(s.Notes[:index], s.Notes[index+1:]...)
	s.updateModified()
	return removed, true
}

// ClearNotes removes every note.
func (s *Score) ClearNotes() {
	s.Notes = s.Notes[:0]
	s.updateModified()
}

// SetMelody replaces all notes with the parsed melody text.
func (s *Score) SetMelody(text string) error {
	notes, err := note.ParseMelody(text)
	if err != nil {
		return err
	}
	s.Notes = notes
	s.sortNotes()
	s.updateModified()
	return nil
}

// Transpose replaces the notes with the transposed batch (all-or-nothing)
// and, for diatonic modes, moves the key to the target scale.
func (s *Score) Transpose(mode transpose.Mode) error {
	transposed, err := transpose.Notes(s.Notes, mode)
	if err != nil {
		return err
	}
	s.Notes = transposed
	if mode.Kind == transpose.DiatonicKind {
		s.Settings.Key = mode.TargetScale
	}
	s.sortNotes()
	s.updateModified()
	return nil
}

func (s *Score) sortNotes() {
	sort.SliceStable(s.Notes, func(i, j int) bool {
		return s.Notes[i].StartTick < s.Notes[j].StartTick
	})
}

func (s *Score) updateModified() {
	s.Metadata.Modified = timestamp()
}

// DurationTicks returns the end tick of the last-sounding note.
func (s *Score) DurationTicks() uint32 {
	var max uint32
	for _, n := range s.Notes {
		if n.EndTick() > max {
			max = n.EndTick()
		}
	}
	return max
}

// DurationSeconds converts the tick length through the tempo.
func (s *Score) DurationSeconds() float64 {
	beats := float64(s.DurationTicks()) / float64(constants.TicksPerQuarter)
	return beats * 60.0 / float64(s.Settings.Tempo)
}

// MeasureCount returns the number of (possibly partial) measures used.
func (s *Score) MeasureCount() uint32 {
	ticks := s.DurationTicks()
	perMeasure := s.Settings.TimeSignature.TicksPerMeasure()
	return (ticks + perMeasure - 1) / perMeasure
}

func timestamp() string {
	return fmt.Sprintf("%vZ", time.Now().Unix())
}
