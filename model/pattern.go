package model

// PatternCategory selects which harmonic rule applies to a pattern.
type PatternCategory int

const (
	// ScaleBound patterns must stay strictly inside the scale set.
	ScaleBound PatternCategory = iota
	// ChordTone patterns may use any scale degree or its perfect fifth.
	ChordTone
	// Exempt patterns skip harmonic checks entirely. Only tapping lives
	// here; see the note the validator attaches to such verdicts.
	Exempt
)

var patternCategories = map[string]PatternCategory{
	"ascending":    ScaleBound,
	"descending":   ScaleBound,
	"random":       ScaleBound,
	"pedal":        ScaleBound,
	"3nps":         ScaleBound,
	"sweep":        ScaleBound,
	"legato":       ScaleBound,
	"power_chords": ChordTone,
	"progression":  ChordTone,
	"arpeggio":     ChordTone,
	"tapping":      Exempt,
}

// CategoryOf returns the harmonic rule for a pattern name. Patterns the
// table does not know default to the strict scale rule.
func CategoryOf(pattern string) PatternCategory {
	if c, ok := patternCategories[pattern]; ok {
		return c
	}
	return ScaleBound
}

// Combinations the producer is expected to reject: 3nps needs three scale
// degrees per string position, which 5- and 6-note scales cannot supply.
var incompatible = map[[2]string]bool{
	{"pentatonic_minor", "3nps"}: true,
	{"pentatonic_major", "3nps"}: true,
	{"blues", "3nps"}:            true,
}

func IsIncompatible(scale, pattern string) bool {
	return incompatible[[2]string{scale, pattern}]
}
