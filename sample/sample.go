package sample

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	chordmidi "github.com/jsphweid/chordcoach/midi"
	"github.com/jsphweid/chordcoach/model"
)

const ticksPerQuarter = 960
const velocity = 80

// Create renders chords as one whole-note block chord per bar so a
// tier can be auditioned in any MIDI player before practicing it.
func Create(chords []model.ChordData) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	for _, c := range chords {
		nums := noteNumbers(c)
		delta := uint32(0)
		for _, n := range nums {
			track.Add(delta, midi.NoteOn(0, n, velocity))
			delta = 0
		}
		delta = ticksPerQuarter * 4
		for _, n := range nums {
			track.Add(delta, midi.NoteOff(0, n))
			delta = 0
		}
	}
	track.Close(0)
	res.Tracks = append(res.Tracks, track)

	return &res
}

func noteNumbers(c model.ChordData) []uint8 {
	var res []uint8
	for _, ns := range c.Notes {
		if n, ok := chordmidi.NoteStringToNumber(ns); ok {
			res = append(res, n)
		}
	}
	return res
}
