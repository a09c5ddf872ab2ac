// Package report renders verdicts and sweep summaries for the console.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/sweep"
	"github.com/guitarlab/tabcheck/util"
)

var (
	pass = color.New(color.FgGreen)
	fail = color.New(color.FgRed)
)

// Verdict prints one verdict with its notes and errors.
func Verdict(w io.Writer, p model.Params, v model.Verdict) {
	if v.Passed {
		pass.Fprintf(w, "PASS %s\n", p)
	} else {
		fail.Fprintf(w, "FAIL %s\n", p)
	}
	for _, n := range v.Notes {
		fmt.Fprintf(w, "  note: %s\n", n)
	}
	for _, e := range v.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
}

const maxExamples = 5

// Summary prints totals, a failure breakdown grouped by error kind, and
// timing stats. Returns true when every combination passed.
func Summary(w io.Writer, results []sweep.Result) bool {
	var passed int
	byKind := make(map[model.ErrorKind][]string)
	elapsed := make([]time.Duration, 0, len(results))

	for _, r := range results {
		elapsed = append(elapsed, r.Elapsed)
		if r.Verdict.Passed {
			passed++
			continue
		}
		for _, e := range r.Verdict.Errors {
			byKind[e.Kind] = append(byKind[e.Kind], fmt.Sprintf("%s: %s", r.Params, e.Detail))
		}
	}

	total := len(results)
	failed := total - passed
	fmt.Fprintf(w, "\ntotal: %d combinations\n", total)
	if total > 0 {
		pass.Fprintf(w, "passed: %d (%.1f%%)\n", passed, 100*float64(passed)/float64(total))
		fail.Fprintf(w, "failed: %d\n", failed)
	}

	if failed > 0 {
		fmt.Fprintln(w, "\nfailures by kind:")
		kinds := util.Keys(byKind)
		sort.Slice(kinds, func(i, j int) bool {
			if len(byKind[kinds[i]]) != len(byKind[kinds[j]]) {
				return len(byKind[kinds[i]]) > len(byKind[kinds[j]])
			}
			return kinds[i] < kinds[j]
		})
		for _, kind := range kinds {
			examples := byKind[kind]
			fmt.Fprintf(w, "  %s: %d\n", kind, len(examples))
			for _, ex := range examples[:util.Min(len(examples), maxExamples)] {
				fmt.Fprintf(w, "    - %s\n", ex)
			}
			if len(examples) > maxExamples {
				fmt.Fprintf(w, "    ... and %d more\n", len(examples)-maxExamples)
			}
		}
	}

	if total > 0 {
		var max time.Duration
		for _, d := range elapsed {
			max = util.Max(max, d)
		}
		avg := util.Sum(elapsed) / time.Duration(total)
		fmt.Fprintf(w, "\ntiming: avg=%v max=%v\n", avg.Round(time.Millisecond), max.Round(time.Millisecond))
	}

	return failed == 0
}
