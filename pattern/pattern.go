package pattern

import (
	"github.com/jsphweid/chordcoach/model"
)

type rootPosition struct {
	chordType string
	display   string
	intervals []int
	degrees   []string
}

// every chord quality in its root position; inversions are derived
var rootPositions = []rootPosition{
	{"major", "", []int{0, 4, 7}, []string{"1", "3", "5"}},
	{"minor", "m", []int{0, 3, 7}, []string{"1", "b3", "5"}},
	{"augmented", "aug", []int{0, 4, 8}, []string{"1", "3", "#5"}},
	{"diminished", "dim", []int{0, 3, 6}, []string{"1", "b3", "b5"}},
	{"sus2", "sus2", []int{0, 2, 7}, []string{"1", "2", "5"}},
	{"sus4", "sus4", []int{0, 5, 7}, []string{"1", "4", "5"}},
	{"dominant7", "7", []int{0, 4, 7, 10}, []string{"1", "3", "5", "b7"}},
	{"major7", "maj7", []int{0, 4, 7, 11}, []string{"1", "3", "5", "7"}},
	{"minor7", "m7", []int{0, 3, 7, 10}, []string{"1", "b3", "5", "b7"}},
	{"minorMajor7", "mMaj7", []int{0, 3, 7, 11}, []string{"1", "b3", "5", "7"}},
	{"diminished7", "dim7", []int{0, 3, 6, 9}, []string{"1", "b3", "b5", "bb7"}},
	{"halfDiminished7", "m7b5", []int{0, 3, 6, 10}, []string{"1", "b3", "b5", "b7"}},
	{"diminishedMajor7", "dimMaj7", []int{0, 3, 6, 11}, []string{"1", "b3", "b5", "7"}},
	{"augmentedMinor7", "aug7", []int{0, 4, 8, 10}, []string{"1", "3", "#5", "b7"}},
	{"augmentedMajor7", "augMaj7", []int{0, 4, 8, 11}, []string{"1", "3", "#5", "7"}},
}

type Key struct {
	Type      string
	Inversion int
}

// Catalog holds every usable (type, inversion) pattern. It is built once
// at startup and never mutated afterwards, so concurrent readers need no
// coordination.
type Catalog map[Key]model.Pattern

// NewCatalog derives the full pattern table: triads carry inversions 0-2,
// sevenths 0-3.
func NewCatalog() Catalog {
	c := make(Catalog)
	for _, rp := range rootPositions {
		for inv := 0; inv < len(rp.intervals); inv++ {
			c[Key{rp.chordType, inv}] = invert(rp, inv)
		}
	}
	return c
}

// invert rotates the degree assignment by inv positions: the member
// originally at index inv becomes the new bass at position 0. Intervals
// stay root-relative so resolving them against a root yields the voicing
// in playing order, bass first; octave placement is the generator's job.
func invert(rp rootPosition, inv int) model.Pattern {
	n := len(rp.intervals)
	p := model.Pattern{
		Type:           rp.chordType,
		Display:        rp.display,
		Inversion:      inv,
		Intervals:      make([]int, n),
		Degrees:        make([]string, n),
		ScaleDegreeMap: make(map[int]string, n),
	}
	for i, interval := range rp.intervals {
		p.ScaleDegreeMap[interval] = rp.degrees[i]
	}
	for i := 0; i < n; i++ {
		src := (i + inv) % n
		p.Intervals[i] = rp.intervals[src]
		p.Degrees[i] = rp.degrees[src]
	}
	return p
}

// Lookup finds the pattern for a (type, inversion) pair. A miss on a pair
// any difficulty tier references is a tier-configuration bug, which the
// catalog tests guard against.
func (c Catalog) Lookup(chordType string, inversion int) (model.Pattern, bool) {
	p, ok := c[Key{chordType, inversion}]
	return p, ok
}

// Types lists every chord type in catalog declaration order.
func Types() []string {
	res := make([]string, 0, len(rootPositions))
	for _, rp := range rootPositions {
		res = append(res, rp.chordType)
	}
	return res
}
