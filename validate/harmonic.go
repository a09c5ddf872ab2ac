package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/tab"
	"github.com/guitarlab/tabcheck/theory"
	"github.com/guitarlab/tabcheck/util"
)

// Harmonic checks every note event against the rule for the declared
// pattern category, plus the fret-range check that applies to all patterns.
// Unknown scales, roots, and shapes skip their checks with an informational
// note instead of failing.
func Harmonic(doc tab.Document, p model.Params) ([]model.CheckError, []string) {
	var notes []string
	errs := fretRange(doc.Notes)

	root, err := theory.ParsePitch(p.Root)
	if err != nil {
		return errs, append(notes, fmt.Sprintf("harmonic checks skipped: %v", err))
	}

	switch model.CategoryOf(p.Pattern) {
	case model.Exempt:
		// Tapping has always been waved through; keep the behavior but
		// make the gap visible in every verdict.
		notes = append(notes, fmt.Sprintf("pattern %q is exempt from harmonic checks", p.Pattern))
	case model.ChordTone:
		set, err := theory.ChordToneSet(root, p.Scale)
		if errors.Is(err, theory.ErrUnknownScale) {
			notes = append(notes, fmt.Sprintf("harmonic checks skipped: %v", err))
			break
		}
		errs = append(errs, membership(doc.Notes, set, model.NoteOutsideChordTones)...)
	default:
		set, err := theory.ScaleSet(root, p.Scale)
		if errors.Is(err, theory.ErrUnknownScale) {
			notes = append(notes, fmt.Sprintf("harmonic checks skipped: %v", err))
			break
		}
		errs = append(errs, membership(doc.Notes, set, model.NoteOutsideScale)...)
	}

	// Position geometry is only meaningful when a shape was requested,
	// and the producer only honors shapes for pentatonic scales.
	if p.CagedShape != "" && strings.Contains(p.Scale, "pentatonic") {
		cerrs, err := cagedPosition(doc.Notes, root, p.CagedShape)
		if err != nil {
			notes = append(notes, fmt.Sprintf("caged check skipped: %v", err))
		}
		errs = append(errs, cerrs...)
	}

	return errs, notes
}

func fretRange(notes []tab.Note) []model.CheckError {
	var errs []model.CheckError
	for _, n := range notes {
		if n.Fret < 0 || n.Fret > theory.MaxFret {
			errs = append(errs, model.CheckError{
				Kind:   model.FretOutOfRange,
				Detail: fmt.Sprintf("fret %d on string %d", n.Fret, n.String),
			})
		}
	}
	return errs
}

func membership(notes []tab.Note, set map[theory.PitchClass]bool, kind model.ErrorKind) []model.CheckError {
	var errs []model.CheckError
	for _, n := range notes {
		if !set[n.Pitch] {
			errs = append(errs, model.CheckError{
				Kind:   kind,
				Detail: fmt.Sprintf("%s (string %d, fret %d)", n.Pitch.Name(), n.String, n.Fret),
			})
		}
	}
	return errs
}

// cagedPosition requires the lowest fret played to sit within two frets of
// the shape's expected base position, in any octave that exists on the neck.
func cagedPosition(notes []tab.Note, root theory.PitchClass, shape string) ([]model.CheckError, error) {
	if len(notes) == 0 {
		return nil, nil
	}
	base, err := theory.CagedBase(root, shape)
	if err != nil {
		return nil, err
	}

	minFret := notes[0].Fret
	for _, n := range notes[1:] {
		minFret = util.Min(minFret, n.Fret)
	}

	for _, candidate := range []int{base, base + 12, base - 12} {
		if candidate < 0 {
			continue
		}
		if util.Abs(minFret-candidate) <= 2 {
			return nil, nil
		}
	}
	return []model.CheckError{{
		Kind:   model.CagedPositionMismatch,
		Detail: fmt.Sprintf("shape %s: expected minimum fret near %d, got %d", shape, base, minFret),
	}}, nil
}
