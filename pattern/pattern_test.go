package pattern

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var triads = []string{"major", "minor", "augmented", "diminished", "sus2", "sus4"}
var sevenths = []string{
	"dominant7", "major7", "minor7", "minorMajor7", "diminished7",
	"halfDiminished7", "diminishedMajor7", "augmentedMinor7", "augmentedMajor7",
}

func TestRootPositionIntervalsAreStandard(t *testing.T) {
	cases := []struct {
		chordType string
		intervals []int
	}{
		{"major", []int{0, 4, 7}},
		{"minor", []int{0, 3, 7}},
		{"augmented", []int{0, 4, 8}},
		{"diminished", []int{0, 3, 6}},
		{"sus2", []int{0, 2, 7}},
		{"sus4", []int{0, 5, 7}},
		{"dominant7", []int{0, 4, 7, 10}},
		{"major7", []int{0, 4, 7, 11}},
		{"minor7", []int{0, 3, 7, 10}},
		{"minorMajor7", []int{0, 3, 7, 11}},
		{"diminished7", []int{0, 3, 6, 9}},
		{"halfDiminished7", []int{0, 3, 6, 10}},
		{"diminishedMajor7", []int{0, 3, 6, 11}},
		{"augmentedMinor7", []int{0, 4, 8, 10}},
		{"augmentedMajor7", []int{0, 4, 8, 11}},
	}

	catalog := NewCatalog()
	for _, tc := range cases {
		t.Run(tc.chordType, func(t *testing.T) {
			p, ok := catalog.Lookup(tc.chordType, 0)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(tc.intervals, p.Intervals)
			assert.Equal(0, p.Inversion)
			assert.Equal("1", p.Degrees[0])
		})
	}
}

func TestCatalogIsComplete(t *testing.T) {
	catalog := NewCatalog()
	assert := assert.New(t)

	for _, chordType := range triads {
		for inv := 0; inv <= 2; inv++ {
			_, ok := catalog.Lookup(chordType, inv)
			assert.True(ok, fmt.Sprintf("%v inversion %v missing", chordType, inv))
		}
		_, ok := catalog.Lookup(chordType, 3)
		assert.False(ok, fmt.Sprintf("%v should not have a third inversion", chordType))
	}

	for _, chordType := range sevenths {
		for inv := 0; inv <= 3; inv++ {
			_, ok := catalog.Lookup(chordType, inv)
			assert.True(ok, fmt.Sprintf("%v inversion %v missing", chordType, inv))
		}
		_, ok := catalog.Lookup(chordType, 4)
		assert.False(ok)
	}
}

func TestInversionRotatesDegreeAssignment(t *testing.T) {
	catalog := NewCatalog()
	assert := assert.New(t)

	p, ok := catalog.Lookup("major", 1)
	assert.True(ok)
	assert.Equal([]int{4, 7, 0}, p.Intervals)
	assert.Equal([]string{"3", "5", "1"}, p.Degrees)

	p, ok = catalog.Lookup("dominant7", 2)
	assert.True(ok)
	assert.Equal([]int{7, 10, 0, 4}, p.Intervals)
	assert.Equal([]string{"5", "b7", "1", "3"}, p.Degrees)

	p, ok = catalog.Lookup("minor7", 3)
	assert.True(ok)
	assert.Equal([]int{10, 0, 3, 7}, p.Intervals)
	assert.Equal([]string{"b7", "1", "b3", "5"}, p.Degrees)
}

func TestScaleDegreeMapKeepsRootPositionAssignment(t *testing.T) {
	catalog := NewCatalog()
	assert := assert.New(t)

	p, ok := catalog.Lookup("minor", 2)
	assert.True(ok)
	assert.Equal(map[int]string{0: "1", 3: "b3", 7: "5"}, p.ScaleDegreeMap)
}

func TestEveryPatternPairsIntervalsWithDegrees(t *testing.T) {
	catalog := NewCatalog()
	assert := assert.New(t)
	for key, p := range catalog {
		assert.Equal(len(p.Intervals), len(p.Degrees), fmt.Sprintf("%v", key))
		assert.Equal(key.Type, p.Type)
		assert.Equal(key.Inversion, p.Inversion)
	}
}

func TestLookupMiss(t *testing.T) {
	catalog := NewCatalog()
	assert := assert.New(t)
	_, ok := catalog.Lookup("bogus", 0)
	assert.False(ok)
	_, ok = catalog.Lookup("major", 3)
	assert.False(ok)
}

func TestTypesListsEveryQuality(t *testing.T) {
	assert.Equal(t, len(triads)+len(sevenths), len(Types()))
}
