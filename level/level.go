package level

import (
	"fmt"

	"github.com/jsphweid/chordcoach/chord"
	"github.com/jsphweid/chordcoach/model"
	"github.com/jsphweid/chordcoach/pattern"
)

// rule is one tier's fixed construction policy: which roots cross which
// (type, inversion) pairs. Rules are declarative and never depend on
// user state.
type rule struct {
	roots      []model.PitchClass
	types      []string
	inversions []int
}

var (
	whiteKeys = []model.PitchClass{1, 3, 5, 6, 8, 10, 12}
	blackKeys = []model.PitchClass{2, 4, 7, 9, 11}
	allRoots  = []model.PitchClass{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	// the six roots seventh chords come up on most in practice material
	commonSeventhRoots = []model.PitchClass{1, 6, 8, 3, 10, 5}

	triadTypes     = []string{"major", "minor", "augmented", "diminished", "sus2", "sus4"}
	basicSevenths  = []string{"dominant7", "major7", "minor7", "minorMajor7"}
	exoticSevenths = []string{"diminished7", "halfDiminished7", "diminishedMajor7", "augmentedMinor7", "augmentedMajor7"}
)

// Order lists every difficulty in progression order.
var Order = []string{
	"level1", "level2", "level3", "level4", "level5",
	"level6", "level7", "level8", "level9",
}

var rules = map[string]rule{
	"level1": {whiteKeys, []string{"major", "minor"}, []int{0}},
	"level2": {allRoots, []string{"major", "minor"}, []int{0}},
	"level3": {whiteKeys, []string{"augmented", "diminished", "sus2", "sus4"}, []int{0}},
	"level4": {blackKeys, triadTypes, []int{0}},
	"level5": {allRoots, triadTypes, []int{1}},
	"level6": {allRoots, triadTypes, []int{2}},
	"level7": {allRoots, triadTypes, []int{0, 1, 2}},
	"level8": {commonSeventhRoots, basicSevenths, []int{0, 1, 2, 3}},
	"level9": {commonSeventhRoots, exoticSevenths, []int{0, 1, 2, 3}},
}

// Registry holds every tier's materialized chord list. Everything is
// built up front and read-only after, so it is safe to share across
// goroutines.
type Registry struct {
	byLevel map[string][]model.ChordData
	byId    map[int]model.ChordData
}

// NewRegistry builds all tiers from the catalog. Construction is
// isolated per tier: a rule referencing a missing pattern skips that
// combination instead of sinking the level, though the catalog tests
// treat any skip as a bug.
func NewRegistry(catalog pattern.Catalog) *Registry {
	r := &Registry{
		byLevel: make(map[string][]model.ChordData, len(Order)),
		byId:    make(map[int]model.ChordData),
	}
	id := 1
	for _, name := range Order {
		chords := buildLevel(catalog, name, rules[name], &id)
		r.byLevel[name] = chords
		for _, c := range chords {
			r.byId[c.Id] = c
		}
	}
	return r
}

func buildLevel(catalog pattern.Catalog, name string, ru rule, id *int) []model.ChordData {
	var res []model.ChordData
	for _, root := range ru.roots {
		for _, chordType := range ru.types {
			for _, inv := range ru.inversions {
				p, ok := catalog.Lookup(chordType, inv)
				if !ok {
					fmt.Printf("No pattern for %v inversion %v, skipping\n", chordType, inv)
					continue
				}
				res = append(res, chord.Build(*id, root, p, name))
				*id++
			}
		}
	}
	return res
}

// ChordsFor returns the full ordered chord list for one difficulty, or
// nil for a difficulty that does not exist.
func (r *Registry) ChordsFor(difficulty string) []model.ChordData {
	return r.byLevel[difficulty]
}

// All concatenates every tier's chords in progression order.
func (r *Registry) All() []model.ChordData {
	var res []model.ChordData
	for _, name := range Order {
		res = append(res, r.byLevel[name]...)
	}
	return res
}

// ById finds a chord instance by its id across all tiers.
func (r *Registry) ById(id int) (model.ChordData, bool) {
	c, ok := r.byId[id]
	return c, ok
}
