// Package codec implements allocation-free transcoding between UTF-8,
// UTF-16, and UTF-32 code value sequences.
//
// Every conversion funnels through a canonical 32-bit codepoint:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ source units → [decode] → codepoint → [encode] → dest    │
//	└──────────────────────────────────────────────────────────┘
//
// # Key Types
//
//	UTF8, UTF16, UTF32  - stateless filters, one per encoding
//	Result              - Ok, InvalidInput, or OutputTooSmall
//	Source, Sink        - forward-stepping sequence abstractions
//
// # Filters
//
// A filter decodes one codepoint from its lead unit plus a reader for any
// continuation units, and encodes one codepoint through a writer:
//
//	Filter[U]           - DecodeOne / EncodeOne / EncodeValidated
//	Sizer               - MaxUnits and EncodedLen, width-independent
//
// EncodeValidated skips the scalar range check; it is only called with
// codepoints a decode already proved valid.
//
// # Execution Strategies
//
// Two drivers produce byte-identical output and identical error
// classification:
//
//   - Convert operates on slices (contiguous, known length). While both
//     buffers provably hold a full batch, it runs an unrolled loop with no
//     per-unit bounds checks, then finishes with a checked tail loop.
//   - ConvertSeq operates on arbitrary forward-stepping Source/Sink pairs
//     with every read and write individually checked. When both arguments
//     are the slice-backed cursors from this package, it detects that at
//     call setup and delegates to the batched driver.
//
// Measure and MeasureSeq are dry-run variants: they validate exactly as a
// real conversion would and return the destination unit count without
// writing anything.
//
// # Validation
//
// Malformed input is always a hard failure of the whole call: isolated or
// mismatched surrogate halves, overlong UTF-8 forms, bad continuation
// markers, values past U+10FFFF, and sources that end inside a multi-unit
// sequence all yield InvalidInput. There is no replacement-character
// substitution.
//
// # Concurrency
//
// Filters are zero-size and stateless; drivers hold no shared state.
// Concurrent calls on disjoint buffers are safe without locking. Two calls
// must never target overlapping destination ranges.
//
// # Error Handling
//
// The hot path signals failures with Result codes. Result.Err maps them to
// the structured sentinels in the errors package for error-returning
// callers:
//
//	[decode] invalid_input: malformed or incomplete source
package codec
