package meter

// Named grouping presets for the odd meters the editor offers directly.

// FiveThreeTwo is 5/8 grouped 3+2.
func FiveThreeTwo() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 1, 2, 1})
}

// FiveTwoThree is 5/8 grouped 2+3.
func FiveTwoThree() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 2, 1, 1})
}

// SevenThreeTwoTwo is 7/8 grouped 3+2+2.
func SevenThreeTwoTwo() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 1, 2, 1, 2, 1})
}

// SevenTwoTwoThree is 7/8 grouped 2+2+3.
func SevenTwoTwoThree() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 2, 1, 2, 1, 1})
}

// SevenTwoThreeTwo is 7/8 grouped 2+3+2.
func SevenTwoThreeTwo() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 2, 1, 1, 2, 1})
}

// ElevenThreeThreeThreeTwo is 11/8 grouped 3+3+3+2.
func ElevenThreeThreeThreeTwo() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 1, 2, 1, 1, 2, 1, 1, 2, 1})
}

// ElevenThreeThreeTwoThree is 11/8 grouped 3+3+2+3.
func ElevenThreeThreeTwoThree() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 1, 2, 1, 1, 2, 1, 2, 1, 1})
}

// ElevenThreeTwoThreeThree is 11/8 grouped 3+2+3+3.
func ElevenThreeTwoThreeThree() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 1, 2, 1, 2, 1, 1, 2, 1, 1})
}

// ElevenTwoThreeThreeThree is 11/8 grouped 2+3+3+3.
func ElevenTwoThreeThreeThree() AccentPattern {
	return PatternFromValues([]uint8{3, 1, 2, 1, 1, 2, 1, 1, 2, 1, 1})
}
