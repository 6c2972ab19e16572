// Package codeconv provides allocation-free transcoding between UTF-8,
// UTF-16, and UTF-32 text representations.
//
// The engine is a self-contained, stateless converter: every conversion
// decodes source code values to canonical codepoints and re-encodes them
// in the destination format, validating bit-exactly along the way
// (surrogate pairing, overlong-form rejection, scalar range checks).
// Malformed input is a hard failure of the whole call; there is no
// replacement-character substitution.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct
// responsibilities:
//
//	codeconv/        Root package with string- and buffer-level helpers
//	├── codec/       Filters, conversion drivers, output-size counters
//	├── scalar/      Codepoint validity and surrogate classification
//	├── errors/      Structured error types for debugging
//	└── textconv/    golang.org/x/text transform.Transformer adapters
//
// # Quick Start
//
// Convert between buffers with an exact-size dry run first:
//
//	n, res := codeconv.UTF8ToUTF16Len(input)
//	if res != codec.Ok {
//	    log.Fatal(res.Err())
//	}
//	out := make([]uint16, n)
//	n, res = codeconv.UTF8ToUTF16(out, input)
//
// Or let the string helpers size the destination for you:
//
//	units, err := codeconv.StringToUTF16("héllo \U0001F600")
//	s, err := codeconv.UTF16ToString(units)
//
// Arbitrary encoding pairs go through the codec package directly:
//
//	n, res := codec.Convert(src, dst, codec.UTF32{}, codec.UTF8{})
//
// # Thread Safety
//
// All conversions are pure functions over caller-owned buffers. Concurrent
// calls are safe as long as destination ranges do not overlap.
package codeconv
