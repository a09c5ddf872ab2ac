package model

type GenerateResponse struct {
	Tab string `json:"tab"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ScalesResponse struct {
	Scales []string `json:"scales"`
}

type PatternsResponse struct {
	Patterns []string `json:"patterns"`
}

// ProducerResult is what the producer returned for one request, verbatim.
// Non-200 statuses are data here, not errors: an expected rejection is a
// passing outcome for known-incompatible combinations.
type ProducerResult struct {
	Status int
	Tab    string
	Detail string
}

// ValidateRequest is the body of the validation service's POST /validate.
type ValidateRequest struct {
	Params
	Tab string `json:"tab"`
}
