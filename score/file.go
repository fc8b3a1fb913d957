package score

import (
	"encoding/json"
	"fmt"
	"os"
)

// ToJSON serializes to the .mozart.json format.
func (s *Score) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}

// FromJSON deserializes a score. Notes with no voice field default to 0.
func FromJSON(data []byte) (*Score, error) {
	var s Score
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return &s, nil
}

// Save writes the score to a .mozart.json file.
func (s *Score) Save(path string) error {
	data, err := s.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %v: %v", ErrFile, path, err)
	}
	return nil
}

// Load reads a score from a .mozart.json file, replacing the caller's copy
// wholesale.
func Load(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %v: %v", ErrFile, path, err)
	}
	return FromJSON(data)
}
