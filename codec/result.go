package codec

import (
	"github.com/xlang-go/codeconv/errors"
)

// Result classifies the outcome of a conversion or measurement.
type Result uint8

const (
	// Ok means the complete source range was transcoded.
	Ok Result = iota
	// InvalidInput means the source was malformed or incomplete.
	InvalidInput
	// OutputTooSmall means the destination was exhausted before the
	// source. Units already written remain; there is no rollback.
	OutputTooSmall
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case InvalidInput:
		return "invalid_input"
	case OutputTooSmall:
		return "output_too_small"
	default:
		return "unknown"
	}
}

// Err maps the result to a structured sentinel error, or nil for Ok.
// The sentinels are preallocated; this never allocates for known results.
func (r Result) Err() error {
	switch r {
	case Ok:
		return nil
	case InvalidInput:
		return errors.ErrInvalidInput
	case OutputTooSmall:
		return errors.ErrOutputTooSmall
	default:
		return errors.New(errors.PhaseScan, errors.KindInvalidInput).
			Detail("unknown result code %d", uint8(r)).
			Build()
	}
}
