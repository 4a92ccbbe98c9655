// ABOUTME: Synthesis error values
// ABOUTME: Sentinel errors wrapped by the synthesizers
package synth

import "errors"

var (
	// ErrInvalidArgument is returned for negative, NaN or infinite inputs
	// and for non-positive sample rates.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is raised for a zero frequency. Synthesize and
	// SynthesizeHarsh recover from it with a single padding sample.
	ErrDivisionByZero = errors.New("division by zero")
)
