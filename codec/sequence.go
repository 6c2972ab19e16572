package codec

// Source is an arbitrary forward-stepping sequence of code values. Next
// returns the next unit, or ok=false once the sequence is exhausted.
type Source[U Unit] interface {
	Next() (U, bool)
}

// Sink consumes code values. Put reports false when the destination is
// full; the unit is not stored in that case.
type Sink[U Unit] interface {
	Put(U) bool
}

// SliceSource is a Source backed by a contiguous buffer. The drivers
// recognize it at call setup and take the batched random-access path.
type SliceSource[U Unit] struct {
	buf []U
	pos int
}

// NewSliceSource returns a cursor over buf.
func NewSliceSource[U Unit](buf []U) *SliceSource[U] {
	return &SliceSource[U]{buf: buf}
}

// Next implements Source.
func (s *SliceSource[U]) Next() (U, bool) {
	if s.pos >= len(s.buf) {
		var zero U
		return zero, false
	}
	u := s.buf[s.pos]
	s.pos++
	return u, true
}

// Remaining returns the number of units not yet consumed.
func (s *SliceSource[U]) Remaining() int {
	return len(s.buf) - s.pos
}

// SliceSink is a Sink backed by a contiguous buffer.
type SliceSink[U Unit] struct {
	buf []U
	pos int
}

// NewSliceSink returns a cursor writing into buf.
func NewSliceSink[U Unit](buf []U) *SliceSink[U] {
	return &SliceSink[U]{buf: buf}
}

// Put implements Sink.
func (s *SliceSink[U]) Put(u U) bool {
	if s.pos >= len(s.buf) {
		return false
	}
	s.buf[s.pos] = u
	s.pos++
	return true
}

// Remaining returns the number of units of free space left.
func (s *SliceSink[U]) Remaining() int {
	return len(s.buf) - s.pos
}

// Written returns the number of units written so far.
func (s *SliceSink[U]) Written() int {
	return s.pos
}
