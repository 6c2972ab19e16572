package codec

// Unit is the set of native code value widths: 8-bit for UTF-8, 16-bit for
// UTF-16, 32-bit for UTF-32.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Sizer is the width-independent side of a filter, sufficient for
// output-size measurement.
type Sizer interface {
	// MaxUnits is the maximum number of code values one codepoint can
	// occupy in this encoding (4 for UTF-8, 2 for UTF-16, 1 for UTF-32).
	// Batch-size arithmetic relies on it.
	MaxUnits() int

	// EncodedLen returns the number of code values a pre-validated
	// codepoint occupies in this encoding.
	EncodedLen(cp rune) int
}

// Filter converts between code values of width U and codepoints. Filters
// are stateless; the zero value is ready to use.
//
// Readers and writers are per-unit callbacks. A reader reports
// InvalidInput when the source is exhausted mid-sequence; a writer reports
// OutputTooSmall when the destination is full. Filters abort on the first
// failure and never recover locally.
type Filter[U Unit] interface {
	Sizer

	// Passthrough reports whether the source unit v is its own complete,
	// valid encoding in this filter: decoding it yields the codepoint v
	// and encoding that codepoint yields the single identical unit. A
	// unit may be copied verbatim between two filters only when both
	// agree.
	Passthrough(v uint32) bool

	// DecodeOne consumes one codepoint starting at lead, pulling any
	// continuation units through read.
	DecodeOne(lead U, read func() (U, Result)) (rune, Result)

	// EncodeOne validates cp and writes its encoded form, returning the
	// number of units written.
	EncodeOne(cp rune, write func(U) Result) (int, Result)

	// EncodeValidated is EncodeOne without the scalar validity check.
	// The caller guarantees cp came out of a successful decode.
	EncodeValidated(cp rune, write func(U) Result) (int, Result)
}
