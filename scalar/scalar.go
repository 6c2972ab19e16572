// Package scalar classifies Unicode scalar values and UTF-16 surrogates.
//
// A codepoint is a valid scalar iff it is at most MaxScalar and not in the
// surrogate range. Surrogates only ever appear as paired UTF-16 code values;
// a surrogate presented as a standalone scalar is always malformed data.
package scalar

// Unicode scalar and surrogate range boundaries.
const (
	MaxScalar        = 0x10FFFF // largest Unicode scalar value
	SurrogateMin     = 0xD800
	SurrogateMax     = 0xDFFF
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF
	SurrogateOffset  = 0x10000 // added/subtracted in surrogate-pair arithmetic
)

// IsValid reports whether r is a valid Unicode scalar value: at most
// MaxScalar and outside the surrogate range. Negative runes are invalid.
func IsValid(r rune) bool {
	u := uint32(r)
	return u < SurrogateMin || (u > SurrogateMax && u <= MaxScalar)
}

// IsHighSurrogate reports whether v is in [0xD800, 0xDBFF].
func IsHighSurrogate(v uint32) bool {
	return v >= HighSurrogateMin && v <= HighSurrogateMax
}

// IsLowSurrogate reports whether v is in [0xDC00, 0xDFFF].
func IsLowSurrogate(v uint32) bool {
	return v >= LowSurrogateMin && v <= LowSurrogateMax
}

// IsSurrogate reports whether v is in [0xD800, 0xDFFF].
func IsSurrogate(v uint32) bool {
	return v >= SurrogateMin && v <= SurrogateMax
}
