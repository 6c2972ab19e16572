package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseScan      Phase = "scan"      // walking the source sequence
	PhaseDecode    Phase = "decode"    // source units to codepoint
	PhaseEncode    Phase = "encode"    // codepoint to destination units
	PhaseMeasure   Phase = "measure"   // dry-run output sizing
	PhaseTransform Phase = "transform" // byte-stream adapters
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput       Kind = "invalid_input"
	KindOutputTooSmall     Kind = "output_too_small"
	KindIncompleteSequence Kind = "incomplete_sequence"
	KindOverlongEncoding   Kind = "overlong_encoding"
	KindSurrogateInStream  Kind = "surrogate_in_stream"
	KindOutOfRange         Kind = "out_of_range"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int // unit offset into the source, -1 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at unit %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when
// their Kind is equal and the target's Phase is either equal or unset,
// so sentinel comparisons work regardless of the phase that failed.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && e.Phase != t.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for allocation-free reporting at the public boundary.
// Compare with errors.Is; they match any phase.
var (
	ErrInvalidInput   = &Error{Kind: KindInvalidInput, Detail: "malformed or incomplete source", Offset: -1}
	ErrOutputTooSmall = &Error{Kind: KindOutputTooSmall, Detail: "destination exhausted", Offset: -1}
)

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the source unit offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
		Offset: -1,
	}
}

// OutputTooSmall creates a destination exhaustion error
func OutputTooSmall(phase Phase, written int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutputTooSmall,
		Detail: fmt.Sprintf("destination exhausted after %d units", written),
		Offset: -1,
	}
}

// IncompleteSequence creates an error for a source that ends mid-codepoint
func IncompleteSequence(phase Phase, offset int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIncompleteSequence,
		Detail: "source ends inside a multi-unit sequence",
		Offset: offset,
	}
}

// OverlongEncoding creates an error for a non-minimal UTF-8 form
func OverlongEncoding(phase Phase, offset int, cp rune) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverlongEncoding,
		Detail: fmt.Sprintf("non-minimal encoding of U+%04X", cp),
		Offset: offset,
		Value:  cp,
	}
}

// SurrogateInStream creates an error for a surrogate presented as a scalar
func SurrogateInStream(phase Phase, offset int, v uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSurrogateInStream,
		Detail: fmt.Sprintf("surrogate 0x%04X is not a valid scalar", v),
		Offset: offset,
		Value:  v,
	}
}

// OutOfRange creates an error for a value beyond U+10FFFF
func OutOfRange(phase Phase, offset int, v uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("value 0x%X exceeds U+10FFFF", v),
		Offset: offset,
		Value:  v,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Offset: -1,
	}
}
