package sweep

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guitarlab/tabcheck/client"
	"github.com/guitarlab/tabcheck/model"
)

func TestCombosCrossesShapesForPentatonics(t *testing.T) {
	roots := []string{"C", "E"}
	scales := []string{"minor", "pentatonic_minor"}
	patterns := []string{"ascending", "power_chords"}

	combos := Combos(roots, scales, patterns, 2)

	// 2 roots × (1 plain scale × 2 patterns + 1 pentatonic × 2 patterns × 5 shapes)
	assert.Len(t, combos, 2*(2+2*5))

	var withShape, withoutShape int
	for _, p := range combos {
		assert.Equal(t, 2, p.Bars)
		if p.CagedShape != "" {
			assert.Equal(t, "pentatonic_minor", p.Scale)
			withShape++
		} else {
			assert.Equal(t, "minor", p.Scale)
			withoutShape++
		}
	}
	assert.Equal(t, 20, withShape)
	assert.Equal(t, 4, withoutShape)
}

const validTab = `e|-----------0---|
B|---------0-----|
G|-------0-------|
D|-----2---------|
A|---2-----------|
E|-0-------------|`

func newProducer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p model.Params
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))

		if model.IsIncompatible(p.Scale, p.Pattern) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(model.ErrorResponse{Detail: "3NPS requires a 7-note scale"})
			return
		}
		json.NewEncoder(w).Encode(model.GenerateResponse{Tab: validTab})
	}))
}

func TestRunnerValidatesEveryCombination(t *testing.T) {
	srv := newProducer(t)
	defer srv.Close()

	combos := []model.Params{
		{Root: "E", Scale: "minor", Pattern: "ascending", Bars: 2},
		{Root: "E", Scale: "minor", Pattern: "descending", Bars: 2},
		{Root: "E", Scale: "pentatonic_minor", Pattern: "3nps", Bars: 2},
		{Root: "B", Scale: "minor", Pattern: "ascending", Bars: 2},
	}

	r := Runner{
		Client:  client.New(srv.URL, 5*time.Second),
		Workers: 3,
		Timeout: 5 * time.Second,
	}
	results := r.Run(context.Background(), combos)

	assert := assert.New(t)
	assert.Len(results, len(combos))
	for i, res := range results {
		// Order is positional: result i belongs to combo i.
		assert.Equal(combos[i], res.Params)
		assert.True(res.Verdict.Passed, res.Params.String())
	}

	// The incompatible combo passed by rejection, with the note to prove it.
	assert.NotEmpty(results[2].Verdict.Notes)
}

func TestRunnerIsolatesFailures(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls%2 == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(model.GenerateResponse{Tab: validTab})
	}))
	defer srv.Close()

	combos := Combos([]string{"E"}, []string{"minor"}, []string{"ascending", "descending"}, 2)
	r := Runner{
		Client:  client.New(srv.URL, 5*time.Second),
		Workers: 1,
		Timeout: 5 * time.Second,
	}
	results := r.Run(context.Background(), combos)

	var passed, failed int
	for _, res := range results {
		if res.Verdict.Passed {
			passed++
		} else {
			failed++
			assert.Equal(t, model.ProtocolError, res.Verdict.Errors[0].Kind)
		}
	}
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
}

func TestRunnerReportsProgress(t *testing.T) {
	srv := newProducer(t)
	defer srv.Close()

	var mu sync.Mutex
	var finalDone, finalTotal int
	r := Runner{
		Client:  client.New(srv.URL, 5*time.Second),
		Workers: 2,
		Timeout: 5 * time.Second,
		OnProgress: func(done, total, failed int) {
			mu.Lock()
			defer mu.Unlock()
			finalDone, finalTotal = done, total
		},
	}
	combos := Combos([]string{"E", "A"}, []string{"minor"}, []string{"ascending"}, 2)
	r.Run(context.Background(), combos)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, len(combos), finalDone)
	assert.Equal(t, len(combos), finalTotal)
}

func TestRunnerProgressStopsAfterRun(t *testing.T) {
	srv := newProducer(t)
	defer srv.Close()

	var mu sync.Mutex
	var calls, lastDone int
	r := Runner{
		Client:  client.New(srv.URL, 5*time.Second),
		Workers: 4,
		Timeout: 5 * time.Second,
		OnProgress: func(done, total, failed int) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			lastDone = done
		},
	}
	combos := Combos([]string{"E", "A", "B", "C"}, []string{"minor"}, []string{"ascending", "descending"}, 2)
	r.Run(context.Background(), combos)

	mu.Lock()
	callsAtReturn, doneAtReturn := calls, lastDone
	mu.Unlock()
	assert.Equal(t, len(combos), doneAtReturn, "the direct call after the pool drains is the last one")

	// A pending debounce would fire within its 250ms interval; it must
	// have been dropped, not merely delayed.
	time.Sleep(400 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, callsAtReturn, calls)
	assert.Equal(t, len(combos), lastDone)
}
