package codec

import (
	"github.com/xlang-go/codeconv/scalar"
)

// UTF16 is the filter for 16-bit code values in native endianness, with no
// BOM handling. Scalars past U+FFFF are carried by a surrogate pair: a
// high half in [0xD800, 0xDBFF] followed by a low half in [0xDC00, 0xDFFF].
// Either half on its own is malformed data.
type UTF16 struct{}

// MaxUnits implements Sizer.
func (UTF16) MaxUnits() int { return 2 }

// EncodedLen implements Sizer. cp must be a valid scalar.
func (UTF16) EncodedLen(cp rune) int {
	if cp < scalar.SurrogateOffset {
		return 1
	}
	return 2
}

// Passthrough implements Filter: single-unit BMP values that are their own
// codepoint. Surrogate halves must take the decode path so that isolated
// ones are rejected.
func (UTF16) Passthrough(v uint32) bool {
	return v < scalar.SurrogateMin || (v > scalar.SurrogateMax && v <= 0xFFFF)
}

// DecodeOne implements Filter.
func (UTF16) DecodeOne(lead uint16, read func() (uint16, Result)) (rune, Result) {
	if scalar.IsHighSurrogate(uint32(lead)) {
		second, res := read()
		if res != Ok {
			return 0, res
		}
		if !scalar.IsLowSurrogate(uint32(second)) {
			return 0, InvalidInput
		}
		cp := (rune(lead)-scalar.HighSurrogateMin)<<10 +
			(rune(second) - scalar.LowSurrogateMin) +
			scalar.SurrogateOffset
		return cp, Ok
	}
	// rejects a lone low surrogate
	if !scalar.IsValid(rune(lead)) {
		return 0, InvalidInput
	}
	return rune(lead), Ok
}

// EncodeOne implements Filter.
func (f UTF16) EncodeOne(cp rune, write func(uint16) Result) (int, Result) {
	if !scalar.IsValid(cp) {
		return 0, InvalidInput
	}
	return f.EncodeValidated(cp, write)
}

// EncodeValidated implements Filter. For cp >= 0x10000 the shifted value
// is at most 0xFFFFF, so 0xD800+(v>>10) <= 0xDBFF and 0xDC00+(v&0x3FF) <=
// 0xDFFF: both halves are in range with no further checks.
func (UTF16) EncodeValidated(cp rune, write func(uint16) Result) (int, Result) {
	if cp < scalar.SurrogateOffset {
		if res := write(uint16(cp)); res != Ok {
			return 0, res
		}
		return 1, Ok
	}
	v := cp - scalar.SurrogateOffset
	if res := write(uint16(scalar.HighSurrogateMin + v>>10)); res != Ok {
		return 0, res
	}
	if res := write(uint16(scalar.LowSurrogateMin + v&0x3FF)); res != Ok {
		return 1, res
	}
	return 2, Ok
}
