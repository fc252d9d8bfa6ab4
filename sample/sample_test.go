package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/chordcoach/chord"
	"github.com/jsphweid/chordcoach/model"
	"github.com/jsphweid/chordcoach/pattern"
)

func TestCreateEmitsOneBarPerChord(t *testing.T) {
	catalog := pattern.NewCatalog()
	major, _ := catalog.Lookup("major", 0)
	seventh, _ := catalog.Lookup("dominant7", 1)

	chords := []model.ChordData{
		chord.Build(1, 1, major, "level1"),
		chord.Build(2, 8, seventh, "level8"),
	}

	s := Create(chords)
	assert := assert.New(t)
	assert.Equal(1, len(s.Tracks))

	// 3 + 4 note ons, matching note offs, plus end of track
	assert.Equal(2*(3+4)+1, len(s.Tracks[0]))
}
