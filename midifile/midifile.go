// Package midifile renders parsed tab notes to a Standard MIDI File so a
// validated tab can be auditioned in any sequencer.
package midifile

import (
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/guitarlab/tabcheck/tab"
	"github.com/guitarlab/tabcheck/theory"
)

const (
	ticksPerQuarter = 480
	velocity        = 96
)

// Render lays the notes out as sequential quarter notes on a single track,
// ordered by text position. Pitches come from the tuning's MIDI numbers.
func Render(notes []tab.Note, bpm float64) *smf.SMF {
	ordered := make([]tab.Note, len(notes))
	copy(ordered, notes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Pos < ordered[j].Pos
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))
	for _, n := range ordered {
		key := theory.MidiAt(n.String, n.Fret)
		tr.Add(0, midi.NoteOn(0, key, velocity))
		tr.Add(ticksPerQuarter, midi.NoteOff(0, key))
	}
	tr.Close(0)

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	s.Tracks = append(s.Tracks, tr)
	return &s
}
