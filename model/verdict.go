package model

import "fmt"

// ErrorKind groups check failures for reporting.
type ErrorKind string

const (
	WrongStringCount       ErrorKind = "wrong_string_count"
	WrongStringOrder       ErrorKind = "wrong_string_order"
	InconsistentLineLength ErrorKind = "inconsistent_line_length"
	InconsistentBarCount   ErrorKind = "inconsistent_bar_count"
	InvalidCharacter       ErrorKind = "invalid_character"
	FretOutOfRange         ErrorKind = "fret_out_of_range"
	NoteOutsideScale       ErrorKind = "note_outside_scale"
	NoteOutsideChordTones  ErrorKind = "note_outside_chord_tones"
	CagedPositionMismatch  ErrorKind = "caged_position_mismatch"
	ProtocolError          ErrorKind = "protocol_error"
	EmptyTab               ErrorKind = "empty_tab"
)

// CheckError is one validation failure. A verdict collects every failure
// found; no check aborts the others.
type CheckError struct {
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail"`
}

func (e CheckError) String() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Verdict is the immutable outcome for one (params, tab) pair. Notes carry
// informational context (expected rejections, skipped checks) and never
// affect Passed.
type Verdict struct {
	Passed bool         `json:"passed"`
	Errors []CheckError `json:"errors,omitempty"`
	Notes  []string     `json:"notes,omitempty"`
}
