package midifile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guitarlab/tabcheck/tab"
)

func TestRenderSequencesNotes(t *testing.T) {
	doc := tab.Parse("E|-0-3-5-|")
	s := Render(doc.Notes, 120)

	assert := assert.New(t)
	assert.Len(s.Tracks, 1)
	// tempo + on/off per note + end of track
	assert.Len(s.Tracks[0], 2+2*len(doc.Notes))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	assert.NoError(err)
	assert.NotZero(buf.Len())
}
