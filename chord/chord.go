package chord

import (
	"github.com/jsphweid/chordcoach/model"
	"github.com/jsphweid/chordcoach/note"
)

// CalculateChordNotes resolves a pattern's intervals against a root into
// pitch classes, always in [1,12].
func CalculateChordNotes(root model.PitchClass, intervals []int) []model.PitchClass {
	res := make([]model.PitchClass, len(intervals))
	for i, interval := range intervals {
		res[i] = note.Normalize(root + interval)
	}
	return res
}

// GenerateChordName renders slash-bass notation: "C", "Gm7" and, for
// inversions, "C/E" or "G7/D".
func GenerateChordName(root model.PitchClass, p model.Pattern) string {
	name := note.ClassName(root) + p.Display
	if p.Inversion > 0 {
		name += "/" + note.ClassName(note.DegreePitchClass(root, p.Degrees[0]))
	}
	return name
}

// GenerateNoteStrings assigns octaves so the voicing ascends from the
// bass at the base octave: the octave bumps whenever a pitch class would
// not otherwise sit above its predecessor. The matcher's lowest-note
// check relies on this.
func GenerateNoteStrings(root model.PitchClass, p model.Pattern) []model.NoteString {
	classes := CalculateChordNotes(root, p.Intervals)
	res := make([]model.NoteString, len(classes))
	octave := note.BaseOctave
	for i, pc := range classes {
		if i > 0 && pc <= classes[i-1] {
			octave++
		}
		res[i] = note.Format(pc, octave)
	}
	return res
}

// ScaleDegreesFor maps each note position in the voicing to its degree
// token. For inversion k the sequence is the root-position degrees
// rotated by k, which the pattern already carries.
func ScaleDegreesFor(p model.Pattern) map[int]string {
	res := make(map[int]string, len(p.Degrees))
	for i, d := range p.Degrees {
		res[i] = d
	}
	return res
}

// Build realizes one chord instance from a root and pattern.
func Build(id int, root model.PitchClass, p model.Pattern, difficulty string) model.ChordData {
	return model.ChordData{
		Id:           id,
		Name:         GenerateChordName(root, p),
		Notes:        GenerateNoteStrings(root, p),
		NoteNumbers:  CalculateChordNotes(root, p.Intervals),
		Difficulty:   difficulty,
		RootNote:     root,
		ScaleDegrees: ScaleDegreesFor(p),
		Inversion:    p.Inversion,
	}
}
