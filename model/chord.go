package model

// PitchClass is a note name irrespective of octave, 1=C through 12=B.
// 0 is the sentinel for input that could not be parsed.
type PitchClass = int

// NoteString is scientific pitch notation, e.g. "C4", "F#3", "Bb5".
type NoteString = string

// Pattern is an immutable chord template: a voicing's intervals up from
// the bass plus the scale degree each position carries. Intervals and
// Degrees are parallel. ScaleDegreeMap keeps the root-position
// interval -> degree assignment the voicing was derived from.
type Pattern struct {
	Type           string
	Display        string
	Inversion      int
	Intervals      []int
	Degrees        []string
	ScaleDegreeMap map[int]string
}

// ChordData is a fully realized chord instance. Notes and NoteNumbers
// are parallel, ScaleDegrees maps note position index to degree token.
type ChordData struct {
	Id           int            `json:"id"`
	Name         string         `json:"name"`
	Notes        []NoteString   `json:"notes"`
	NoteNumbers  []PitchClass   `json:"noteNumbers"`
	Difficulty   string         `json:"difficulty"`
	RootNote     PitchClass     `json:"rootNote"`
	ScaleDegrees map[int]string `json:"scaleDegrees"`
	Inversion    int            `json:"inversion"`
}
