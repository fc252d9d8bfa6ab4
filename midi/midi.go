package midi

import (
	"github.com/jsphweid/chordcoach/model"
	"github.com/jsphweid/chordcoach/note"
)

// NumberToNoteString translates a MIDI note number into the engine's
// wire format, e.g. 60 -> "C4". Octave is floor(n/12)-1 per scientific
// pitch notation.
func NumberToNoteString(n uint8) model.NoteString {
	octave := int(n)/12 - 1
	pc := int(n)%12 + 1
	return note.Format(pc, octave)
}

// NoteStringToNumber is the reverse translation. The second return is
// false for unparseable names or notes outside the 0-127 range.
func NoteStringToNumber(s model.NoteString) (uint8, bool) {
	pc, octave := note.Parse(s)
	if pc == 0 {
		return 0, false
	}
	n := (octave+1)*12 + (pc - 1)
	if n < 0 || n > 127 {
		return 0, false
	}
	return uint8(n), true
}
