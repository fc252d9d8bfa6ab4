package note

import "github.com/jsphweid/chordcoach/model"

// semitone offsets for unaltered degrees 1..7
var degreeSemitones = [8]int{0, 0, 2, 4, 5, 7, 9, 11}

// DegreeOffset converts a scale-degree token like "3", "b3", "#5" or
// "bb7" into its semitone offset from the root, in [0,11]. Each leading
// "b" lowers a semitone, each "#" raises one. Returns -1 for tokens it
// cannot read.
func DegreeOffset(degree string) int {
	offset := 0
	rest := degree
	for len(rest) > 0 && (rest[0] == 'b' || rest[0] == '#') {
		if rest[0] == 'b' {
			offset--
		} else {
			offset++
		}
		rest = rest[1:]
	}
	if len(rest) != 1 || rest[0] < '1' || rest[0] > '7' {
		return -1
	}
	offset += degreeSemitones[rest[0]-'0']
	return ((offset % 12) + 12) % 12
}

// DegreePitchClass resolves a degree token against a root pitch class,
// e.g. root C and "5" is G. Returns the 0 sentinel when either side is
// unusable.
func DegreePitchClass(root model.PitchClass, degree string) model.PitchClass {
	if root < 1 || root > 12 {
		return 0
	}
	offset := DegreeOffset(degree)
	if offset < 0 {
		return 0
	}
	return Normalize(root + offset)
}
