package util

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// GatherAllScorePaths walks a directory collecting every .mozart.json file.
func GatherAllScorePaths(path string) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() && strings.HasSuffix(s, ".mozart.json") {
			res = append(res, s)
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetKeysSorted returns map keys in ascending order.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// MidiPath swaps a .mozart.json extension for .mid.
func MidiPath(scorePath string) string {
	base := strings.TrimSuffix(scorePath, ".mozart.json")
	base = strings.TrimSuffix(base, ".json")
	return base + ".mid"
}
