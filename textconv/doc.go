// Package textconv bridges the conversion engine to the
// golang.org/x/text/transform ecosystem.
//
// The adapters convert between UTF-16 byte streams in an explicit byte
// order and UTF-8 byte streams. They implement transform.Transformer, so
// they compose with transform.NewReader, transform.NewWriter, and
// transform.String:
//
//	dec := textconv.NewUTF16Decoder(textconv.LittleEndian)
//	utf8Str, _, err := transform.String(dec, string(utf16leBytes))
//
// Unlike the x/text unicode encodings, there is no BOM handling and no
// replacement-character substitution: malformed input fails the
// transform. A codepoint split across the chunk boundary is reported as
// transform.ErrShortSrc so the caller can supply more input; only at EOF
// does an incomplete sequence become an error.
package textconv
