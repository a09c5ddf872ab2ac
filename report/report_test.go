package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/sweep"
)

func result(p model.Params, v model.Verdict) sweep.Result {
	return sweep.Result{Params: p, Verdict: v, Elapsed: 10 * time.Millisecond}
}

func TestVerdictOutput(t *testing.T) {
	var buf bytes.Buffer
	p := model.Params{Root: "E", Scale: "minor", Pattern: "ascending"}
	Verdict(&buf, p, model.Verdict{
		Errors: []model.CheckError{{Kind: model.NoteOutsideScale, Detail: "F (string 0, fret 1)"}},
		Notes:  []string{"something informational"},
	})

	out := buf.String()
	assert := assert.New(t)
	assert.Contains(out, "FAIL E/minor/ascending")
	assert.Contains(out, "note_outside_scale")
	assert.Contains(out, "something informational")
}

func TestSummaryAllPassed(t *testing.T) {
	var buf bytes.Buffer
	results := []sweep.Result{
		result(model.Params{Root: "E", Scale: "minor", Pattern: "ascending"}, model.Verdict{Passed: true}),
		result(model.Params{Root: "A", Scale: "minor", Pattern: "ascending"}, model.Verdict{Passed: true}),
	}

	ok := Summary(&buf, results)
	assert := assert.New(t)
	assert.True(ok)
	assert.Contains(buf.String(), "passed: 2")
}

func TestSummaryGroupsFailuresByKind(t *testing.T) {
	var buf bytes.Buffer
	failing := model.Verdict{Errors: []model.CheckError{{Kind: model.FretOutOfRange, Detail: "fret 25 on string 0"}}}
	results := []sweep.Result{
		result(model.Params{Root: "E", Scale: "minor", Pattern: "ascending"}, model.Verdict{Passed: true}),
		result(model.Params{Root: "A", Scale: "minor", Pattern: "ascending"}, failing),
		result(model.Params{Root: "B", Scale: "minor", Pattern: "ascending"}, failing),
	}

	ok := Summary(&buf, results)
	out := buf.String()

	assert := assert.New(t)
	assert.False(ok)
	assert.Contains(out, "failed: 2")
	assert.Contains(out, "fret_out_of_range: 2")
	assert.Contains(out, "A/minor/ascending")
}
