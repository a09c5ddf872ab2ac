// Package tab parses the fixed six-string ASCII tablature format into
// played-note events.
package tab

import (
	"strings"

	"github.com/guitarlab/tabcheck/theory"
)

// Tab blocks list strings high to low: the "e" line on top is string 5.
var labelToString = map[string]int{"e": 5, "B": 4, "G": 3, "D": 2, "A": 1, "E": 0}

// Note is one played fret position. Pos is a zero-based per-line token
// counter preserving left-to-right order; it is not a raw column index
// because a two-digit fret advances it once.
type Note struct {
	String int // 0 = low E, 5 = high e
	Fret   int
	Pitch  theory.PitchClass
	Pos    int
}

// Line is one retained tab line, split at its first bar separator.
type Line struct {
	Label   string
	Content string
	Raw     string
}

// Document is the parsed form of one tab: the raw line structure for the
// structural checks plus the flattened note events for the harmonic ones.
type Document struct {
	Lines []Line
	Notes []Note
}

// Parse splits raw tab text into labeled lines and note events. Lines
// without a bar separator are discarded. A line whose label is not a
// standard string name contributes no notes; the structural validator is
// responsible for reporting it.
func Parse(text string) Document {
	var doc Document
	for _, raw := range strings.Split(strings.TrimSpace(text), "\n") {
		sep := strings.IndexByte(raw, '|')
		if sep < 0 {
			continue
		}
		line := Line{
			Label:   strings.TrimSpace(raw[:sep]),
			Content: raw[sep+1:],
			Raw:     raw,
		}
		doc.Lines = append(doc.Lines, line)

		stringIdx, ok := labelToString[line.Label]
		if !ok {
			continue
		}
		doc.Notes = append(doc.Notes, scanNotes(line.Content, stringIdx)...)
	}
	return doc
}

// scanNotes walks a content string left to right. A digit starts a fret
// token; an immediately following digit extends it (frets 10-24 are written
// as two adjacent digits). Everything else advances the position counter
// without emitting a note.
func scanNotes(content string, stringIdx int) []Note {
	var notes []Note
	pos := 0
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c >= '0' && c <= '9' {
			fret := int(c - '0')
			if i+1 < len(content) && content[i+1] >= '0' && content[i+1] <= '9' {
				fret = fret*10 + int(content[i+1]-'0')
				i++
			}
			notes = append(notes, Note{
				String: stringIdx,
				Fret:   fret,
				Pitch:  theory.PitchAt(stringIdx, fret),
				Pos:    pos,
			})
		}
		pos++
	}
	return notes
}
