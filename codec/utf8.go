package codec

import (
	"github.com/xlang-go/codeconv/scalar"
)

// UTF8 is the filter for 8-bit code values.
//
// Byte sequence layout, lead byte first:
//
//	units  scalar range        pattern
//	1      U+0000..U+007F      0vvvvvvv
//	2      U+0080..U+07FF      110vvvvv 10vvvvvv
//	3      U+0800..U+FFFF      1110vvvv 10vvvvvv 10vvvvvv
//	4      U+10000..U+10FFFF   11110vvv 10vvvvvv 10vvvvvv 10vvvvvv
//
// Each continuation byte must carry the 10vvvvvv marker; any mismatch
// fails the whole multi-byte unit. Non-minimal (overlong) forms and
// surrogate or out-of-range scalars are rejected.
type UTF8 struct{}

// MaxUnits implements Sizer.
func (UTF8) MaxUnits() int { return 4 }

// EncodedLen implements Sizer. cp must be a valid scalar.
func (UTF8) EncodedLen(cp rune) int {
	switch {
	case cp <= 0x7F:
		return 1
	case cp <= 0x7FF:
		return 2
	case cp <= 0xFFFF:
		return 3
	default:
		return 4
	}
}

// Passthrough implements Filter. Only the ASCII plane is identical across
// all three encodings.
func (UTF8) Passthrough(v uint32) bool {
	return v <= 0x7F
}

// cont extracts the six value bits of a continuation byte after verifying
// its 10vvvvvv marker.
func cont(b uint8) (rune, bool) {
	return rune(b & 0x3F), b&0xC0 == 0x80
}

// DecodeOne implements Filter.
func (UTF8) DecodeOne(lead uint8, read func() (uint8, Result)) (rune, Result) {
	switch {
	case lead < 0x80:
		return rune(lead), Ok

	case lead < 0xC0:
		// continuation byte in the lead position
		return 0, InvalidInput

	case lead < 0xE0:
		b1, res := read()
		if res != Ok {
			return 0, res
		}
		v1, ok := cont(b1)
		if !ok {
			return 0, InvalidInput
		}
		cp := rune(lead&0x1F)<<6 | v1
		if cp < 0x80 { // overlong
			return 0, InvalidInput
		}
		return cp, Ok

	case lead < 0xF0:
		b1, res := read()
		if res != Ok {
			return 0, res
		}
		b2, res := read()
		if res != Ok {
			return 0, res
		}
		v1, ok1 := cont(b1)
		v2, ok2 := cont(b2)
		if !ok1 || !ok2 {
			return 0, InvalidInput
		}
		cp := rune(lead&0x0F)<<12 | v1<<6 | v2
		if cp < 0x800 || !scalar.IsValid(cp) { // overlong or surrogate
			return 0, InvalidInput
		}
		return cp, Ok

	case lead < 0xF8:
		b1, res := read()
		if res != Ok {
			return 0, res
		}
		b2, res := read()
		if res != Ok {
			return 0, res
		}
		b3, res := read()
		if res != Ok {
			return 0, res
		}
		v1, ok1 := cont(b1)
		v2, ok2 := cont(b2)
		v3, ok3 := cont(b3)
		if !ok1 || !ok2 || !ok3 {
			return 0, InvalidInput
		}
		cp := rune(lead&0x07)<<18 | v1<<12 | v2<<6 | v3
		if cp < 0x10000 || cp > scalar.MaxScalar { // overlong or out of range
			return 0, InvalidInput
		}
		return cp, Ok

	default:
		// 0xF8..0xFF never lead a valid sequence
		return 0, InvalidInput
	}
}

// EncodeOne implements Filter.
func (f UTF8) EncodeOne(cp rune, write func(uint8) Result) (int, Result) {
	if !scalar.IsValid(cp) {
		return 0, InvalidInput
	}
	return f.EncodeValidated(cp, write)
}

// EncodeValidated implements Filter.
func (UTF8) EncodeValidated(cp rune, write func(uint8) Result) (int, Result) {
	switch {
	case cp <= 0x7F:
		if res := write(uint8(cp)); res != Ok {
			return 0, res
		}
		return 1, Ok

	case cp <= 0x7FF:
		if res := write(0xC0 | uint8(cp>>6)); res != Ok {
			return 0, res
		}
		if res := write(0x80 | uint8(cp)&0x3F); res != Ok {
			return 1, res
		}
		return 2, Ok

	case cp <= 0xFFFF:
		if res := write(0xE0 | uint8(cp>>12)); res != Ok {
			return 0, res
		}
		if res := write(0x80 | uint8(cp>>6)&0x3F); res != Ok {
			return 1, res
		}
		if res := write(0x80 | uint8(cp)&0x3F); res != Ok {
			return 2, res
		}
		return 3, Ok

	default:
		if res := write(0xF0 | uint8(cp>>18)); res != Ok {
			return 0, res
		}
		if res := write(0x80 | uint8(cp>>12)&0x3F); res != Ok {
			return 1, res
		}
		if res := write(0x80 | uint8(cp>>6)&0x3F); res != Ok {
			return 2, res
		}
		if res := write(0x80 | uint8(cp)&0x3F); res != Ok {
			return 3, res
		}
		return 4, Ok
	}
}
