package hilbert

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingPremise: deduction requested on a formula that is not a premise.
	ErrMissingPremise = errors.New("not a premise of the proof")
	// ErrUnprovenAntecedent: modus ponens antecedent is not a line yet.
	ErrUnprovenAntecedent = errors.New("antecedent has not been proven")
	// ErrUnprovenImplication: modus ponens implication is not a line yet.
	ErrUnprovenImplication = errors.New("implication has not been proven")
	// ErrMalformedProof: a line does not follow from its justification.
	ErrMalformedProof = errors.New("malformed proof")
	// ErrEmptyProof: the proof has no lines to conclude.
	ErrEmptyProof = errors.New("proof has no lines")
)

// LineError ties a failure to a 1-based proof line.
type LineError struct {
	Line    int
	Formula Formula
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %s: %v", e.Line, e.Formula, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
