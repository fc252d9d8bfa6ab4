package note

import (
	"strconv"

	"github.com/jsphweid/chordcoach/model"
)

// BaseOctave anchors the bass note of every generated voicing and is the
// default when a note string carries no octave at all.
const BaseOctave = 4

// canonical spellings indexed by pitch class 1..12: flats for black keys
// except F#, matching the piano UI's labels
var names = [13]string{"", "C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// both enharmonic spellings are accepted on the way in
var nameToClass = map[string]model.PitchClass{
	"C": 1, "B#": 1,
	"C#": 2, "Db": 2,
	"D": 3,
	"D#": 4, "Eb": 4,
	"E": 5, "Fb": 5,
	"F": 6, "E#": 6,
	"F#": 7, "Gb": 7,
	"G": 8,
	"G#": 9, "Ab": 9,
	"A": 10,
	"A#": 11, "Bb": 11,
	"B": 12, "Cb": 12,
}

// Normalize wraps any semitone arithmetic result back into [1,12].
func Normalize(pc int) model.PitchClass {
	pc = pc % 12
	if pc <= 0 {
		pc += 12
	}
	return pc
}

// ClassName returns the canonical spelling for a pitch class, or "" for
// anything outside [1,12].
func ClassName(pc model.PitchClass) string {
	if pc < 1 || pc > 12 {
		return ""
	}
	return names[pc]
}

// Format renders scientific pitch notation, e.g. Format(1, 4) == "C4".
func Format(pc model.PitchClass, octave int) model.NoteString {
	return ClassName(pc) + strconv.Itoa(octave)
}

// Parse splits a note string like "Eb3" into pitch class and octave.
// Unknown pitch names yield the 0 sentinel rather than an error so the
// matcher can degrade to "no match". A missing octave defaults to the
// base octave.
func Parse(s model.NoteString) (model.PitchClass, int) {
	split := len(s)
	for i, c := range s {
		// '-' starts a negative octave, e.g. "C-1" for MIDI note 0
		if (c >= '0' && c <= '9') || c == '-' {
			split = i
			break
		}
	}

	pc, ok := nameToClass[s[:split]]
	if !ok {
		return 0, 0
	}

	if split == len(s) {
		return pc, BaseOctave
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return 0, 0
	}
	return pc, octave
}
