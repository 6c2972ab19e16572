package textconv

import (
	"golang.org/x/text/transform"

	"github.com/xlang-go/codeconv/codec"
	"github.com/xlang-go/codeconv/errors"
)

// Endianness selects the byte order of the UTF-16 side of an adapter.
// There is no BOM detection; the caller states the order explicitly.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) unit(b0, b1 byte) uint16 {
	if e == BigEndian {
		return uint16(b0)<<8 | uint16(b1)
	}
	return uint16(b1)<<8 | uint16(b0)
}

func (e Endianness) put(b []byte, u uint16) {
	if e == BigEndian {
		b[0], b[1] = byte(u>>8), byte(u)
	} else {
		b[0], b[1] = byte(u), byte(u>>8)
	}
}

// NewUTF16Decoder returns a transform.Transformer converting UTF-16 bytes
// in the given byte order to UTF-8 bytes. Each Transform call hands the
// engine complete codepoints only: a trailing incomplete sequence yields
// ErrShortSrc until atEOF, where it becomes a hard error.
func NewUTF16Decoder(e Endianness) transform.Transformer {
	return utf16Decoder{order: e}
}

// NewUTF16Encoder returns a transform.Transformer converting UTF-8 bytes
// to UTF-16 bytes in the given byte order.
func NewUTF16Encoder(e Endianness) transform.Transformer {
	return utf16Encoder{order: e}
}

type utf16Decoder struct {
	transform.NopResetter
	order Endianness
}

func (t utf16Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var (
		f16 codec.UTF16
		f8  codec.UTF8
	)
	for nSrc < len(src) {
		if len(src)-nSrc < 2 {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, errors.IncompleteSequence(errors.PhaseTransform, nSrc)
		}

		p := nSrc
		lead := t.order.unit(src[p], src[p+1])
		p += 2

		short := false
		read := func() (uint16, codec.Result) {
			if len(src)-p < 2 {
				short = true
				return 0, codec.InvalidInput
			}
			u := t.order.unit(src[p], src[p+1])
			p += 2
			return u, codec.Ok
		}

		cp, res := f16.DecodeOne(lead, read)
		if res != codec.Ok {
			if short {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, errors.IncompleteSequence(errors.PhaseTransform, nSrc)
			}
			return nDst, nSrc, errors.New(errors.PhaseTransform, errors.KindInvalidInput).
				Offset(nSrc).
				Detail("malformed UTF-16 at byte %d", nSrc).
				Build()
		}

		if len(dst)-nDst < f8.EncodedLen(cp) {
			return nDst, nSrc, transform.ErrShortDst
		}
		w := nDst
		f8.EncodeValidated(cp, func(b byte) codec.Result {
			dst[w] = b
			w++
			return codec.Ok
		})
		nDst = w
		nSrc = p
	}
	return nDst, nSrc, nil
}

type utf16Encoder struct {
	transform.NopResetter
	order Endianness
}

func (t utf16Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var (
		f8  codec.UTF8
		f16 codec.UTF16
	)
	for nSrc < len(src) {
		lead := src[nSrc]
		p := nSrc + 1

		short := false
		read := func() (uint8, codec.Result) {
			if p >= len(src) {
				short = true
				return 0, codec.InvalidInput
			}
			b := src[p]
			p++
			return b, codec.Ok
		}

		cp, res := f8.DecodeOne(lead, read)
		if res != codec.Ok {
			if short {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, errors.IncompleteSequence(errors.PhaseTransform, nSrc)
			}
			return nDst, nSrc, errors.New(errors.PhaseTransform, errors.KindInvalidInput).
				Offset(nSrc).
				Detail("malformed UTF-8 at byte %d", nSrc).
				Build()
		}

		if len(dst)-nDst < f16.EncodedLen(cp)*2 {
			return nDst, nSrc, transform.ErrShortDst
		}
		w := nDst
		f16.EncodeValidated(cp, func(u uint16) codec.Result {
			t.order.put(dst[w:], u)
			w += 2
			return codec.Ok
		})
		nDst = w
		nSrc = p
	}
	return nDst, nSrc, nil
}
