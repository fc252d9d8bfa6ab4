package note

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStaysInRange(t *testing.T) {
	assert := assert.New(t)
	for v := -30; v <= 30; v++ {
		pc := Normalize(v)
		assert.GreaterOrEqual(pc, 1)
		assert.LessOrEqual(pc, 12)
	}
}

func TestNormalizeWrapping(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(12, Normalize(0))
	assert.Equal(12, Normalize(12))
	assert.Equal(1, Normalize(13))
	assert.Equal(11, Normalize(-1))
	assert.Equal(1, Normalize(25))
}

func TestParse(t *testing.T) {
	cases := []struct {
		input  string
		pc     int
		octave int
	}{
		{"C4", 1, 4},
		{"F#3", 7, 3},
		{"Bb5", 11, 5},
		{"Gb2", 7, 2},
		{"D#4", 4, 4},
		{"Eb10", 4, 10},
		{"C-1", 1, -1},
		{"C", 1, 4},
		{"Bb", 11, 4},
		{"H4", 0, 0},
		{"Cx4", 0, 0},
		{"4", 0, 0},
		{"", 0, 0},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("parse %q", tc.input), func(t *testing.T) {
			pc, octave := Parse(tc.input)
			assert := assert.New(t)
			assert.Equal(tc.pc, pc)
			assert.Equal(tc.octave, octave)
		})
	}
}

func TestFormatUsesCanonicalSpellings(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", Format(1, 4))
	assert.Equal("Eb3", Format(4, 3))
	assert.Equal("F#5", Format(7, 5))
	assert.Equal("Bb2", Format(11, 2))
}

func TestClassNameOutOfRange(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", ClassName(0))
	assert.Equal("", ClassName(13))
}

func TestDegreeOffset(t *testing.T) {
	cases := []struct {
		degree string
		offset int
	}{
		{"1", 0},
		{"2", 2},
		{"3", 4},
		{"4", 5},
		{"5", 7},
		{"6", 9},
		{"7", 11},
		{"b3", 3},
		{"b5", 6},
		{"#5", 8},
		{"b7", 10},
		{"bb7", 9},
		{"b2", 1},
		{"#1", 1},
		{"b1", 11},
		{"8", -1},
		{"x", -1},
		{"b", -1},
		{"", -1},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("degree %q", tc.degree), func(t *testing.T) {
			assert.Equal(t, tc.offset, DegreeOffset(tc.degree))
		})
	}
}

func TestDegreePitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(8, DegreePitchClass(1, "5"))  // fifth of C is G
	assert.Equal(6, DegreePitchClass(8, "b7")) // flat seventh of G is F
	assert.Equal(4, DegreePitchClass(12, "3")) // third of B is D#/Eb
	assert.Equal(1, DegreePitchClass(1, "1"))
	assert.Equal(0, DegreePitchClass(0, "1"))
	assert.Equal(0, DegreePitchClass(1, "9"))
}
