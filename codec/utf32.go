package codec

import (
	"github.com/xlang-go/codeconv/scalar"
)

// UTF32 is the filter for raw 32-bit codepoints. Decoding is a validity
// check with no lookahead; encoding writes the codepoint as-is.
type UTF32 struct{}

// MaxUnits implements Sizer.
func (UTF32) MaxUnits() int { return 1 }

// EncodedLen implements Sizer.
func (UTF32) EncodedLen(rune) int { return 1 }

// Passthrough implements Filter: every valid scalar is its own encoding.
func (UTF32) Passthrough(v uint32) bool {
	return scalar.IsValid(rune(v))
}

// DecodeOne implements Filter.
func (UTF32) DecodeOne(lead uint32, _ func() (uint32, Result)) (rune, Result) {
	if !scalar.IsValid(rune(lead)) {
		return 0, InvalidInput
	}
	return rune(lead), Ok
}

// EncodeOne implements Filter.
func (f UTF32) EncodeOne(cp rune, write func(uint32) Result) (int, Result) {
	if !scalar.IsValid(cp) {
		return 0, InvalidInput
	}
	return f.EncodeValidated(cp, write)
}

// EncodeValidated implements Filter.
func (UTF32) EncodeValidated(cp rune, write func(uint32) Result) (int, Result) {
	if res := write(uint32(cp)); res != Ok {
		return 0, res
	}
	return 1, Ok
}
