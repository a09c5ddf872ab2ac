package validate

import (
	"fmt"
	"strings"

	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/tab"
	"github.com/guitarlab/tabcheck/theory"
)

var expectedLabels = [theory.NumStrings]string{"e", "B", "G", "D", "A", "E"}

const allowedChars = "eBGDAE|0123456789-"

// Structure checks the textual shape of a tab: line count, label order,
// consistent lengths, consistent bar counts, and character set. Every
// violation found is reported; no check short-circuits another.
func Structure(doc tab.Document) []model.CheckError {
	var errs []model.CheckError

	if len(doc.Lines) != theory.NumStrings {
		errs = append(errs, model.CheckError{
			Kind:   model.WrongStringCount,
			Detail: fmt.Sprintf("expected %d strings, got %d", theory.NumStrings, len(doc.Lines)),
		})
	} else {
		labels := make([]string, len(doc.Lines))
		for i, line := range doc.Lines {
			labels[i] = line.Label
		}
		for i, want := range expectedLabels {
			if labels[i] != want {
				errs = append(errs, model.CheckError{
					Kind:   model.WrongStringOrder,
					Detail: fmt.Sprintf("expected labels %v, got %v", expectedLabels[:], labels),
				})
				break
			}
		}
	}

	if !allEqual(doc.Lines, func(l tab.Line) int { return len(l.Raw) }) {
		errs = append(errs, model.CheckError{
			Kind:   model.InconsistentLineLength,
			Detail: fmt.Sprintf("line lengths %v", collect(doc.Lines, func(l tab.Line) int { return len(l.Raw) })),
		})
	}

	// Bar separators are counted over the whole line, label separator
	// included, so the counts line up with what a reader sees.
	if !allEqual(doc.Lines, func(l tab.Line) int { return strings.Count(l.Raw, "|") }) {
		errs = append(errs, model.CheckError{
			Kind:   model.InconsistentBarCount,
			Detail: fmt.Sprintf("bar counts %v", collect(doc.Lines, func(l tab.Line) int { return strings.Count(l.Raw, "|") })),
		})
	}

	for i, line := range doc.Lines {
		if bad := invalidChars(line.Raw); bad != "" {
			errs = append(errs, model.CheckError{
				Kind:   model.InvalidCharacter,
				Detail: fmt.Sprintf("line %d: invalid characters %q", i+1, bad),
			})
		}
	}

	return errs
}

func allEqual(lines []tab.Line, f func(tab.Line) int) bool {
	for i := 1; i < len(lines); i++ {
		if f(lines[i]) != f(lines[0]) {
			return false
		}
	}
	return true
}

func collect(lines []tab.Line, f func(tab.Line) int) []int {
	vals := make([]int, len(lines))
	for i, line := range lines {
		vals[i] = f(line)
	}
	return vals
}

func invalidChars(raw string) string {
	var bad strings.Builder
	seen := make(map[rune]bool)
	for _, r := range raw {
		if !strings.ContainsRune(allowedChars, r) && !seen[r] {
			seen[r] = true
			bad.WriteRune(r)
		}
	}
	return bad.String()
}
