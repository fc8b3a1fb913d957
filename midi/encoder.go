package midi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/cristijiru/mozart/constants"
	"github.com/cristijiru/mozart/pitch"
	"github.com/cristijiru/mozart/scale"
	"github.com/cristijiru/mozart/score"
)

// ErrMidi covers I/O failures during MIDI export.
var ErrMidi = errors.New("midi export error")

// Exporter writes SMF Format 0 files: a single track holding tempo, time
// signature, key signature and track name meta events followed by the note
// stream.
type Exporter struct {
	// Ticks per quarter note in the output file
	TicksPerQuarter uint16
}

// NewExporter uses the engine's native 480-tick resolution.
func NewExporter() *Exporter {
	return &Exporter{TicksPerQuarter: constants.TicksPerQuarter}
}

// Export renders the score to MIDI bytes.
func (e *Exporter) Export(s *score.Score) ([]byte, error) {
	var data []byte

	data = e.writeHeader(data)
	track := e.buildTrack(s)
	data = append(data, []byte("MTrk")...)
	data = binary.BigEndian.AppendUint32(data, uint32(len(track)))
	data = append(data, track...)

	return data, nil
}

// ExportToFile renders and writes the score to a .mid file.
func (e *Exporter) ExportToFile(s *score.Score, path string) error {
	data, err := e.Export(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %v: %v", ErrMidi, path, err)
	}
	return nil
}

func (e *Exporter) writeHeader(data []byte) []byte {
	data = append(data, []byte("MThd")...)
	// header length (always 6)
	data = binary.BigEndian.AppendUint32(data, 6)
	// format 0 (single track)
	data = binary.BigEndian.AppendUint16(data, 0)
	// one track
	data = binary.BigEndian.AppendUint16(data, 1)
	data = binary.BigEndian.AppendUint16(data, e.TicksPerQuarter)
	return data
}

type noteEvent struct {
	tick     uint32
	isOn     bool
	pitch    uint8
	velocity uint8
}

func (e *Exporter) buildTrack(s *score.Score) []byte {
	var track []byte

	// tempo meta event at time 0
	tempoUs := uint32(60_000_000 / uint32(s.Settings.Tempo))
	track = writeVarLen(track, 0)
	track = append(track, 0xFF, 0x51, 0x03,
		byte(tempoUs>>16), byte(tempoUs>>8), byte(tempoUs))

	// time signature meta event
	ts := s.Settings.TimeSignature
	track = writeVarLen(track, 0)
	track = append(track, 0xFF, 0x58, 0x04, ts.Numerator,
		denominatorPower(ts.Denominator),
		24, // MIDI clocks per metronome click
		8)  // 32nd notes per quarter note

	// key signature meta event
	track = writeVarLen(track, 0)
	mode := byte(1)
	if s.Settings.Key.Type == scale.Major {
		mode = 0
	}
	track = append(track, 0xFF, 0x59, 0x02, byte(keyToMidiKey(s.Settings.Key)), mode)

	// track name meta event
	title := []byte(s.Metadata.Title)
	track = writeVarLen(track, 0)
	track = append(track, 0xFF, 0x03)
	track = writeVarLen(track, uint32(len(title)))
	track = append(track, title...)

	events := make([]noteEvent, 0, len(s.Notes)*2)
	for _, n := range s.Notes {
		events = append(events, noteEvent{tick: n.StartTick, isOn: true, pitch: n.Pitch, velocity: n.Velocity})
		events = append(events, noteEvent{tick: n.EndTick(), isOn: false, pitch: n.Pitch})
	}

	// note-offs before note-ons at the same tick, so back-to-back notes on
	// the same pitch never overlap
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return !events[i].isOn && events[j].isOn
	})

	var lastTick uint32
	for _, event := range events {
		delta := uint32(0)
		if event.tick > lastTick {
			delta = event.tick - lastTick
		}
		track = writeVarLen(track, delta)

		if event.isOn {
			track = append(track, 0x90, event.pitch, event.velocity)
		} else {
			track = append(track, 0x80, event.pitch, 0)
		}
		lastTick = event.tick
	}

	// end of track
	track = writeVarLen(track, 0)
	track = append(track, 0xFF, 0x2F, 0x00)

	return track
}

func denominatorPower(denominator uint8) byte {
	switch denominator {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	}
	return 2
}

// writeVarLen appends a MIDI variable-length quantity: big-endian 7-bit
// groups, every byte except the last with its high bit set.
func writeVarLen(data []byte, value uint32) []byte {
	if value == 0 {
		return append(data, 0)
	}

	var buffer [4]byte
	length := 0
	for value > 0 {
		buffer[length] = byte(value & 0x7F)
		value >>= 7
		length++
	}

	for i := length - 1; i >= 0; i-- {
		b := buffer[i]
		if i > 0 {
			b |= 0x80
		}
		data = append(data, b)
	}
	return data
}

// keyToMidiKey maps the key's root onto the MIDI key-signature byte:
// circle-of-fifths position, -7 flats to +7 sharps. Roots are matched in the
// sharp direction first, so C#/Db comes out as +7.
func keyToMidiKey(key scale.Scale) int8 {
	switch key.Root {
	case pitch.C:
		return 0
	case pitch.G:
		return 1
	case pitch.D:
		return 2
	case pitch.A:
		return 3
	case pitch.E:
		return 4
	case pitch.B:
		return 5
	case pitch.FSharp:
		return 6
	case pitch.CSharp:
		return 7
	case pitch.F:
		return -1
	case pitch.BFlat:
		return -2
	case pitch.EFlat:
		return -3
	case pitch.AFlat:
		return -4
	}
	return 0
}

// Export is a helper using the default exporter.
func Export(s *score.Score) ([]byte, error) {
	return NewExporter().Export(s)
}

// ExportToFile is a helper using the default exporter.
func ExportToFile(s *score.Score, path string) error {
	return NewExporter().ExportToFile(s, path)
}
