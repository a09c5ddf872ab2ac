// Package validate decides whether a generated tab is theoretically correct
// for the parameters that produced it.
package validate

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/guitarlab/tabcheck/model"
	"github.com/guitarlab/tabcheck/tab"
)

// Check validates tab text already in hand: parse, then run the structural
// and harmonic checks and merge their findings. This is the offline path
// used by lint and the validation service.
func Check(p model.Params, tabText string) model.Verdict {
	if strings.TrimSpace(tabText) == "" {
		return model.Verdict{Errors: []model.CheckError{{
			Kind:   model.EmptyTab,
			Detail: "producer returned an empty tab",
		}}}
	}

	doc := tab.Parse(tabText)
	errs := Structure(doc)
	herrs, notes := Harmonic(doc, p)
	errs = append(errs, herrs...)

	return model.Verdict{Passed: len(errs) == 0, Errors: errs, Notes: notes}
}

// Evaluate folds a producer outcome into a verdict. A 400/422 rejection of
// a known-incompatible combination is the correct behavior and passes with
// a note; any other non-200 status, transport failure, or empty tab fails
// without running the tab checks (there is nothing to check).
func Evaluate(p model.Params, res model.ProducerResult, err error) model.Verdict {
	if err != nil {
		return model.Verdict{Errors: []model.CheckError{{
			Kind:   model.ProtocolError,
			Detail: fmt.Sprintf("request failed: %v", err),
		}}}
	}

	switch res.Status {
	case http.StatusOK:
		// Acceptance of a combination that must be rejected is itself
		// the defect under test, however clean the tab looks.
		if model.IsIncompatible(p.Scale, p.Pattern) {
			return model.Verdict{Errors: []model.CheckError{{
				Kind:   model.ProtocolError,
				Detail: fmt.Sprintf("producer accepted a known-incompatible combination (%s with %s)", p.Scale, p.Pattern),
			}}}
		}
		return Check(p, res.Tab)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if model.IsIncompatible(p.Scale, p.Pattern) {
			return model.Verdict{
				Passed: true,
				Notes:  []string{fmt.Sprintf("expected rejection: %s", res.Detail)},
			}
		}
		return model.Verdict{Errors: []model.CheckError{{
			Kind:   model.ProtocolError,
			Detail: fmt.Sprintf("unexpected rejection (status %d): %s", res.Status, res.Detail),
		}}}
	default:
		return model.Verdict{Errors: []model.CheckError{{
			Kind:   model.ProtocolError,
			Detail: fmt.Sprintf("unexpected status %d: %s", res.Status, res.Detail),
		}}}
	}
}
