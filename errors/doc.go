// Package errors provides structured error types for the codeconv library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes context: the source unit offset, the
// offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverlongEncoding).
//		Offset(3).
//		Value(rune(0)).
//		Detail("2-byte form of U+0000").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SurrogateInStream(errors.PhaseDecode, 7, 0xD800)
//	err := errors.OutputTooSmall(errors.PhaseEncode, 2)
//
// The ErrInvalidInput and ErrOutputTooSmall sentinels match errors of their
// Kind in any Phase, so callers can classify failures with errors.Is without
// caring which stage of a conversion raised them.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
