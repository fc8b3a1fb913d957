package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile parses a MIDI file back into an smf.SMF, used by the inspect
// command to sanity-check exported bytes.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// Read parses MIDI bytes already in memory.
func Read(data []byte) (s *smf.SMF, e error) {
	var blank smf.SMF

	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi bytes... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}
