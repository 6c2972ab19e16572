package codeconv

import (
	"github.com/xlang-go/codeconv/codec"
)

// UTF8ToUTF16 transcodes UTF-8 bytes into the 16-bit destination buffer
// and returns the number of units written.
func UTF8ToUTF16(dst []uint16, src []byte) (int, codec.Result) {
	return codec.Convert(src, dst, codec.UTF8{}, codec.UTF16{})
}

// UTF16ToUTF8 transcodes 16-bit units into the byte destination buffer
// and returns the number of bytes written.
func UTF16ToUTF8(dst []byte, src []uint16) (int, codec.Result) {
	return codec.Convert(src, dst, codec.UTF16{}, codec.UTF8{})
}

// UTF8ToUTF32 transcodes UTF-8 bytes into the 32-bit destination buffer
// and returns the number of codepoints written.
func UTF8ToUTF32(dst []uint32, src []byte) (int, codec.Result) {
	return codec.Convert(src, dst, codec.UTF8{}, codec.UTF32{})
}

// UTF32ToUTF8 transcodes 32-bit codepoints into the byte destination
// buffer and returns the number of bytes written.
func UTF32ToUTF8(dst []byte, src []uint32) (int, codec.Result) {
	return codec.Convert(src, dst, codec.UTF32{}, codec.UTF8{})
}

// UTF16ToUTF32 transcodes 16-bit units into the 32-bit destination buffer
// and returns the number of codepoints written.
func UTF16ToUTF32(dst []uint32, src []uint16) (int, codec.Result) {
	return codec.Convert(src, dst, codec.UTF16{}, codec.UTF32{})
}

// UTF32ToUTF16 transcodes 32-bit codepoints into the 16-bit destination
// buffer and returns the number of units written.
func UTF32ToUTF16(dst []uint16, src []uint32) (int, codec.Result) {
	return codec.Convert(src, dst, codec.UTF32{}, codec.UTF16{})
}

// UTF8ToUTF16Len validates src and returns the number of 16-bit units a
// conversion would produce, writing nothing.
func UTF8ToUTF16Len(src []byte) (int, codec.Result) {
	return codec.Measure(src, codec.UTF8{}, codec.UTF16{})
}

// UTF16ToUTF8Len validates src and returns the number of bytes a
// conversion would produce, writing nothing.
func UTF16ToUTF8Len(src []uint16) (int, codec.Result) {
	return codec.Measure(src, codec.UTF16{}, codec.UTF8{})
}

// UTF8ToUTF32Len validates src and returns the number of codepoints a
// conversion would produce, writing nothing.
func UTF8ToUTF32Len(src []byte) (int, codec.Result) {
	return codec.Measure(src, codec.UTF8{}, codec.UTF32{})
}

// UTF32ToUTF8Len validates src and returns the number of bytes a
// conversion would produce, writing nothing.
func UTF32ToUTF8Len(src []uint32) (int, codec.Result) {
	return codec.Measure(src, codec.UTF32{}, codec.UTF8{})
}

// StringToUTF16 converts a UTF-8 string to 16-bit units in an exactly
// sized buffer. The input must be well-formed UTF-8.
func StringToUTF16(s string) ([]uint16, error) {
	src := []byte(s)
	n, res := UTF8ToUTF16Len(src)
	if res != codec.Ok {
		return nil, res.Err()
	}
	out := make([]uint16, n)
	if _, res = UTF8ToUTF16(out, src); res != codec.Ok {
		return nil, res.Err()
	}
	return out, nil
}

// UTF16ToString converts 16-bit units to a UTF-8 string. The input must
// contain no isolated or mismatched surrogate halves.
func UTF16ToString(units []uint16) (string, error) {
	n, res := UTF16ToUTF8Len(units)
	if res != codec.Ok {
		return "", res.Err()
	}
	out := make([]byte, n)
	if _, res = UTF16ToUTF8(out, units); res != codec.Ok {
		return "", res.Err()
	}
	return string(out), nil
}
