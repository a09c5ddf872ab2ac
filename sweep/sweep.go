// Package sweep enumerates dropdown combinations and drives them through
// the producer and validator with bounded concurrency.
package sweep

import (
	"context"
	"sync"
	"time"

	"github.com/bep/debounce"
	"golang.org/x/sync/errgroup"

	"github.com/guitarlab/tabcheck/client"
	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/validate"
)

var CagedShapes = []string{"E", "D", "C", "A", "G"}

const (
	defaultWorkers = 10
	defaultBars    = 2
)

// Result pairs one combination with its verdict.
type Result struct {
	Params  model.Params
	Verdict model.Verdict
	Elapsed time.Duration
}

// Combos builds every combination to test. CAGED shapes are crossed in for
// pentatonic scales only, matching the producer's UI.
func Combos(roots, scales, patterns []string, bars int) []model.Params {
	if bars <= 0 {
		bars = defaultBars
	}
	var combos []model.Params
	for _, root := range roots {
		for _, scale := range scales {
			for _, pattern := range patterns {
				if !isPentatonic(scale) {
					combos = append(combos, model.Params{Root: root, Scale: scale, Pattern: pattern, Bars: bars})
					continue
				}
				for _, shape := range CagedShapes {
					combos = append(combos, model.Params{Root: root, Scale: scale, Pattern: pattern, Bars: bars, CagedShape: shape})
				}
			}
		}
	}
	return combos
}

func isPentatonic(scale string) bool {
	return scale == "pentatonic_minor" || scale == "pentatonic_major"
}

// Runner issues combinations through a bounded worker pool. Each request is
// independently timeboxed; a slow or failed request degrades only its own
// verdict.
type Runner struct {
	Client  *client.Client
	Workers int
	Timeout time.Duration

	// OnProgress, if set, receives debounced completion counts plus one
	// final call after the pool drains.
	OnProgress func(done, total, failed int)
}

func (r *Runner) Run(ctx context.Context, combos []model.Params) []Result {
	workers := r.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]Result, len(combos))

	var mu sync.Mutex
	var done, failed int
	var finished bool
	emit := debounce.New(250 * time.Millisecond)

	// Debounced emits can fire after the pool drains; the finished flag
	// drops them so the direct call below is always the last one.
	progress := func(final bool) {
		mu.Lock()
		defer mu.Unlock()
		if finished {
			return
		}
		if final {
			finished = true
		}
		r.OnProgress(done, len(combos), failed)
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, p := range combos {
		i, p := i, p
		g.Go(func() error {
			tctx := ctx
			if r.Timeout > 0 {
				var cancel context.CancelFunc
				tctx, cancel = context.WithTimeout(ctx, r.Timeout)
				defer cancel()
			}

			start := time.Now()
			res, err := r.Client.Generate(tctx, p)
			verdict := validate.Evaluate(p, res, err)
			results[i] = Result{Params: p, Verdict: verdict, Elapsed: time.Since(start)}

			mu.Lock()
			done++
			if !verdict.Passed {
				failed++
			}
			mu.Unlock()

			if r.OnProgress != nil {
				emit(func() { progress(false) })
			}
			return nil
		})
	}
	g.Wait()

	if r.OnProgress != nil {
		progress(true)
	}
	return results
}
