package chord

import (
	"sort"

	"github.com/jsphweid/chordcoach/model"
	"github.com/jsphweid/chordcoach/note"
)

type playedNote struct {
	class  model.PitchClass
	octave int
}

func parseAll(notes []model.NoteString) ([]playedNote, bool) {
	res := make([]playedNote, len(notes))
	for i, n := range notes {
		pc, octave := note.Parse(n)
		if pc == 0 {
			return nil, false
		}
		res[i] = playedNote{class: pc, octave: octave}
	}
	return res, true
}

func sortedClasses(notes []playedNote) []model.PitchClass {
	res := make([]model.PitchClass, len(notes))
	for i, n := range notes {
		res[i] = n.class
	}
	sort.Ints(res)
	return res
}

// bassOf finds the lowest sounding note: octave first, pitch class as
// the tie break within an octave.
func bassOf(notes []playedNote) playedNote {
	bass := notes[0]
	for _, n := range notes[1:] {
		if n.octave < bass.octave || (n.octave == bass.octave && n.class < bass.class) {
			bass = n
		}
	}
	return bass
}

// CheckMatch decides whether the notes a user played are a correct,
// correctly voiced rendition of the target. Three checks, each stricter
// than the last: the played pitch-class set must equal the target's
// exactly (no extras, no doublings), the lowest played note must be the
// target's bass, and when targetChord carries its root and scale degrees
// the same two facts are re-derived from the degrees themselves. The
// degree-based bass check wins over the positional one when available
// since it does not depend on how the target's octaves were assigned.
//
// Wrong answers are false, never errors: unparseable input is simply not
// a match.
func CheckMatch(userNotes, targetNotes []model.NoteString, targetChord *model.ChordData) bool {
	// cheapest and most common rejection first
	if len(userNotes) != len(targetNotes) || len(userNotes) == 0 {
		return false
	}

	user, ok := parseAll(userNotes)
	if !ok {
		return false
	}
	target, ok := parseAll(targetNotes)
	if !ok {
		return false
	}

	userClasses := sortedClasses(user)
	for i, pc := range sortedClasses(target) {
		if userClasses[i] != pc {
			return false
		}
	}

	userBass := bassOf(user)
	if targetChord == nil || len(targetChord.ScaleDegrees) == 0 {
		return userBass.class == bassOf(target).class
	}
	if userBass.class != bassOf(target).class {
		return false
	}
	return matchesScaleDegrees(userClasses, userBass, targetChord)
}

// matchesScaleDegrees restates the pitch-class and bass checks in terms
// of the target's scale degrees: every degree must resolve to a played
// pitch class with nothing left over, and the degree at bass position 0
// must be the one actually in the user's bass.
func matchesScaleDegrees(userClasses []model.PitchClass, userBass playedNote, target *model.ChordData) bool {
	if len(userClasses) != len(target.ScaleDegrees) {
		return false
	}

	expected := make([]model.PitchClass, 0, len(target.ScaleDegrees))
	for i := 0; i < len(target.ScaleDegrees); i++ {
		degree, ok := target.ScaleDegrees[i]
		if !ok {
			return false
		}
		pc := note.DegreePitchClass(target.RootNote, degree)
		if pc == 0 {
			return false
		}
		expected = append(expected, pc)
	}
	sort.Ints(expected)
	for i, pc := range expected {
		if userClasses[i] != pc {
			return false
		}
	}

	return userBass.class == note.DegreePitchClass(target.RootNote, target.ScaleDegrees[0])
}
