package codec

// transformOne converts a single codepoint: passthrough check, then
// decode through the source filter and encode through the destination
// filter. It returns the number of destination units produced.
//
// The filters are type parameters rather than interface values so every
// instantiation dispatches statically; readers and writers are closures
// over the caller's cursor state.
func transformOne[S, D Unit, SF Filter[S], DF Filter[D]](
	sf SF, df DF, lead S,
	read func() (S, Result), write func(D) Result,
) (int, Result) {
	v := uint32(lead)
	if sf.Passthrough(v) && df.Passthrough(v) {
		if res := write(D(v)); res != Ok {
			return 0, res
		}
		return 1, Ok
	}
	cp, res := sf.DecodeOne(lead, read)
	if res != Ok {
		return 0, res
	}
	return df.EncodeValidated(cp, write)
}

// Convert transcodes the complete src range into dst and returns the
// number of destination units written. A source that ends inside a
// multi-unit sequence yields InvalidInput; a full destination yields
// OutputTooSmall with the units already written left in place.
//
// Both buffers are contiguous with known length, so the driver runs the
// batched strategy: as long as the remaining lengths prove that four more
// codepoints cannot overrun either buffer, it processes four per
// iteration with no per-unit bounds checks, then finishes the remainder
// with the checked loop.
func Convert[S, D Unit, SF Filter[S], DF Filter[D]](src []S, dst []D, sf SF, df DF) (int, Result) {
	_, written, res := convertSlices(src, dst, sf, df)
	return written, res
}

func convertSlices[S, D Unit, SF Filter[S], DF Filter[D]](src []S, dst []D, sf SF, df DF) (consumed, written int, res Result) {
	si, di := 0, 0

	readFast := func() (S, Result) {
		u := src[si]
		si++
		return u, Ok
	}
	readChecked := func() (S, Result) {
		if si < len(src) {
			u := src[si]
			si++
			return u, Ok
		}
		var zero S
		return zero, InvalidInput
	}
	writeFast := func(u D) Result {
		dst[di] = u
		di++
		return Ok
	}
	writeChecked := func(u D) Result {
		if di < len(dst) {
			dst[di] = u
			di++
			return Ok
		}
		return OutputTooSmall
	}

	maxSrc, maxDst := sf.MaxUnits(), df.MaxUnits()

	for si < len(src) {
		// A batch is safe when both buffers hold enough units for every
		// codepoint in it to take its maximum footprint.
		safe := (len(src) - si) / maxSrc
		if d := (len(dst) - di) / maxDst; d < safe {
			safe = d
		}
		batch := safe / 4
		if batch == 0 {
			break
		}
		for b := 0; b < batch; b++ {
			lead, _ := readFast()
			if _, r := transformOne(sf, df, lead, readFast, writeFast); r != Ok {
				return si, di, r
			}
			lead, _ = readFast()
			if _, r := transformOne(sf, df, lead, readFast, writeFast); r != Ok {
				return si, di, r
			}
			lead, _ = readFast()
			if _, r := transformOne(sf, df, lead, readFast, writeFast); r != Ok {
				return si, di, r
			}
			lead, _ = readFast()
			if _, r := transformOne(sf, df, lead, readFast, writeFast); r != Ok {
				return si, di, r
			}
		}
	}

	// Checked tail: whatever the batch arithmetic could not prove safe.
	for si < len(src) {
		lead := src[si]
		si++
		if _, r := transformOne(sf, df, lead, readChecked, writeChecked); r != Ok {
			return si, di, r
		}
	}
	return si, di, Ok
}

// ConvertSeq transcodes an arbitrary forward-stepping source into a
// forward-stepping sink, one codepoint at a time with every read and
// write individually checked.
//
// When both sequences are the slice-backed cursors from this package the
// capability check at call setup routes to the batched driver instead;
// the two strategies produce byte-identical output and identical error
// classification.
func ConvertSeq[S, D Unit, SF Filter[S], DF Filter[D]](src Source[S], dst Sink[D], sf SF, df DF) (int, Result) {
	if rs, ok := src.(*SliceSource[S]); ok {
		if ws, ok := dst.(*SliceSink[D]); ok {
			debugf("convert: random-access path, src=%d dst=%d units", rs.Remaining(), ws.Remaining())
			consumed, written, res := convertSlices(rs.buf[rs.pos:], ws.buf[ws.pos:], sf, df)
			rs.pos += consumed
			ws.pos += written
			return written, res
		}
	}
	debugf("convert: forward-only path")

	read := func() (S, Result) {
		u, ok := src.Next()
		if !ok {
			var zero S
			return zero, InvalidInput
		}
		return u, Ok
	}
	write := func(u D) Result {
		if dst.Put(u) {
			return Ok
		}
		return OutputTooSmall
	}

	written := 0
	for {
		lead, ok := src.Next()
		if !ok {
			return written, Ok
		}
		n, res := transformOne(sf, df, lead, read, write)
		written += n
		if res != Ok {
			return written, res
		}
	}
}

// Measure validates src exactly as Convert would and returns the number
// of destination units the conversion requires, writing nothing. The
// destination side only contributes its width arithmetic, so any Sizer
// (in practice one of the filters) selects the target encoding.
//
// There is no destination to prove batches against, so measurement always
// walks forward with checked reads.
func Measure[S Unit, SF Filter[S]](src []S, sf SF, df Sizer) (int, Result) {
	si := 0
	read := func() (S, Result) {
		if si < len(src) {
			u := src[si]
			si++
			return u, Ok
		}
		var zero S
		return zero, InvalidInput
	}

	count := 0
	for si < len(src) {
		lead := src[si]
		si++
		cp, res := sf.DecodeOne(lead, read)
		if res != Ok {
			return count, res
		}
		count += df.EncodedLen(cp)
	}
	return count, Ok
}

// MeasureSeq is Measure over an arbitrary forward-stepping source. It
// consumes the source.
func MeasureSeq[S Unit, SF Filter[S]](src Source[S], sf SF, df Sizer) (int, Result) {
	read := func() (S, Result) {
		u, ok := src.Next()
		if !ok {
			var zero S
			return zero, InvalidInput
		}
		return u, Ok
	}

	count := 0
	for {
		lead, ok := src.Next()
		if !ok {
			return count, Ok
		}
		cp, res := sf.DecodeOne(lead, read)
		if res != Ok {
			return count, res
		}
		count += df.EncodedLen(cp)
	}
}
