// Package theory holds the static fretboard reference data and the pitch
// arithmetic every validator builds on. Everything here is pure and total
// over its fixed tables.
package theory

import (
	"errors"
	"fmt"
)

// PitchClass is one of the 12 equal-tempered note identities, octave-free.
type PitchClass uint8

// Chromatic spells every pitch class with sharps. Flat spellings are never
// produced; all comparisons downstream are pitch-class equality.
var Chromatic = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// OpenStringMidi is standard tuning low E (string 0) to high e (string 5)
// as MIDI note numbers: E2 A2 D3 G3 B3 E4. Adjacent gaps are 5,5,5,4,5
// semitones; the irregular 4 sits between G and B.
var OpenStringMidi = [6]uint8{40, 45, 50, 55, 59, 64}

const (
	NumStrings = 6
	MaxFret    = 24
)

func (pc PitchClass) Name() string {
	return Chromatic[pc%12]
}

// ParsePitch resolves a sharp-spelled note name to its pitch class.
func ParsePitch(name string) (PitchClass, error) {
	for i, n := range Chromatic {
		if n == name {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pitch name %q", name)
}

// PitchAt returns the pitch class sounded at fret on the given string
// (0 = low E). One fret is one semitone.
func PitchAt(stringIdx, fret int) PitchClass {
	return PitchClass((int(OpenStringMidi[stringIdx]) + fret) % 12)
}

// MidiAt returns the absolute MIDI note number at a fretboard position.
func MidiAt(stringIdx, fret int) uint8 {
	return OpenStringMidi[stringIdx] + uint8(fret)
}

// PerfectFifth is the pitch class 7 semitones above pc.
func PerfectFifth(pc PitchClass) PitchClass {
	return (pc + 7) % 12
}

// ScaleIntervals maps scale names to semitone offsets from the root.
var ScaleIntervals = map[string][]int{
	"major":            {0, 2, 4, 5, 7, 9, 11},
	"minor":            {0, 2, 3, 5, 7, 8, 10},
	"pentatonic_major": {0, 2, 4, 7, 9},
	"pentatonic_minor": {0, 3, 5, 7, 10},
	"blues":            {0, 3, 5, 6, 7, 10},
	"phrygian":         {0, 1, 3, 5, 7, 8, 10},
	"lydian":           {0, 2, 4, 6, 7, 9, 11},
	"mixolydian":       {0, 2, 4, 5, 7, 9, 10},
	"dorian":           {0, 2, 3, 5, 7, 9, 10},
	"locrian":          {0, 1, 3, 5, 6, 8, 10},
	"harmonic_minor":   {0, 2, 3, 5, 7, 8, 11},
	"melodic_minor":    {0, 2, 3, 5, 7, 9, 11},
}

// ErrUnknownScale marks a scale name the engine has no intervals for.
// Callers typically skip harmonic validation rather than fail: the engine
// cannot assert a rule it does not know.
var ErrUnknownScale = errors.New("unknown scale")

// ScaleSet returns the set of pitch classes reachable from root via the
// scale's intervals. Diatonic modes yield 7 classes, pentatonics 5, blues 6.
func ScaleSet(root PitchClass, scale string) (map[PitchClass]bool, error) {
	intervals, ok := ScaleIntervals[scale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, scale)
	}
	set := make(map[PitchClass]bool, len(intervals))
	for _, iv := range intervals {
		set[(root+PitchClass(iv))%12] = true
	}
	return set, nil
}

// ChordToneSet widens a scale set to every degree plus its perfect fifth.
// A power chord is root+fifth, and the fifth of a scale tone may fall
// outside the parent scale while still being harmonically sanctioned.
func ChordToneSet(root PitchClass, scale string) (map[PitchClass]bool, error) {
	set, err := ScaleSet(root, scale)
	if err != nil {
		return nil, err
	}
	tones := make(map[PitchClass]bool, len(set)*2)
	for pc := range set {
		tones[pc] = true
		tones[PerfectFifth(pc)] = true
	}
	return tones, nil
}

// ShapeOffsets are the CAGED fingering shapes' semitone offsets relative to
// the movable E-shape base position.
var ShapeOffsets = map[string]int{"E": 0, "D": 3, "C": 5, "A": 7, "G": 10}

// CagedBase returns the expected minimum fret, modulo the octave, for a
// root played in the given shape. The base position is the E-shape barre
// fret for the root.
func CagedBase(root PitchClass, shape string) (int, error) {
	offset, ok := ShapeOffsets[shape]
	if !ok {
		return 0, fmt.Errorf("unknown caged shape %q", shape)
	}
	ePos := 4 // index of E in the chromatic table
	base := (int(root) - ePos + 12) % 12
	return (base + offset) % 12, nil
}
