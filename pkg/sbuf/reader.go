package sbuf

import (
	"encoding/binary"
	"math"

	"github.com/joshuapare/bufkit/internal/bounds"
)

// Reader is a sequential decoding cursor over a borrowed, immutable byte
// span. The span is caller-owned; the reader never copies it and must not
// outlive it.
//
// Decode operations are silent on underrun: when fewer bytes remain than the
// value needs, they return the zero value and leave the cursor where it was.
// See the package documentation for the full failure policy.
type Reader struct {
	pos int
	buf []byte
}

// NewReader returns a reader positioned at the start of buf. A nil buf
// behaves as a zero-length span.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the cursor position within the span.
func (r *Reader) Pos() int { return r.pos }

// BytesRead returns the number of bytes consumed so far. It equals Pos.
func (r *Reader) BytesRead() int { return r.pos }

// BytesRemaining returns the number of unread bytes left in the span.
func (r *Reader) BytesRemaining() int {
	if r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// IsEmpty reports whether nothing has been consumed yet.
func (r *Reader) IsEmpty() bool { return r.pos == 0 }

// IsFull reports whether the cursor has reached the end of the span.
func (r *Reader) IsFull() bool { return r.pos >= len(r.buf) }

// HasRemaining reports whether n more bytes can be read from the cursor.
// Negative n is never satisfiable.
func (r *Reader) HasRemaining(n int) bool {
	if n < 0 {
		return false
	}
	end, ok := bounds.AddOverflowSafe(r.pos, n)
	return ok && end <= len(r.buf)
}

// Bytes returns the entire backing span, including bytes past the cursor.
func (r *Reader) Bytes() []byte { return r.buf }

// Consumed returns the prefix of the span that has already been read.
func (r *Reader) Consumed() []byte { return r.buf[:r.pos] }

// At returns the byte at absolute index i, independent of the cursor. An
// index outside the span panics: unlike a short read, which is a data-length
// condition, an out-of-range index is a logic bug.
func (r *Reader) At(i int) byte { return r.buf[i] }

// Advance moves the cursor forward n bytes, stopping at the end of the span.
// Non-positive n leaves the cursor in place; the position never moves
// backward except through Reset.
func (r *Reader) Advance(n int) {
	if n <= 0 {
		return
	}
	end, ok := bounds.AddOverflowSafe(r.pos, n)
	if !ok || end > len(r.buf) {
		r.pos = len(r.buf)
		return
	}
	r.pos = end
}

// Reset moves the cursor back to the start of the span. The bytes themselves
// are untouched.
func (r *Reader) Reset() { r.pos = 0 }

// U8 decodes one byte. Returns 0 without advancing when the span is
// exhausted.
func (r *Reader) U8() uint8 {
	if !r.HasRemaining(1) {
		return 0
	}
	v := r.buf[r.pos]
	r.pos++
	return v
}

// U16 decodes a little-endian uint16. Returns 0 without advancing when fewer
// than 2 bytes remain.
func (r *Reader) U16() uint16 {
	if !r.HasRemaining(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v
}

// U32 decodes a little-endian uint32. Returns 0 without advancing when fewer
// than 4 bytes remain.
func (r *Reader) U32() uint32 {
	if !r.HasRemaining(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

// U64 decodes a little-endian uint64. Returns 0 without advancing when fewer
// than 8 bytes remain.
func (r *Reader) U64() uint64 {
	if !r.HasRemaining(8) {
		return 0
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v
}

// U16BE decodes a big-endian uint16. Returns 0 without advancing when fewer
// than 2 bytes remain.
func (r *Reader) U16BE() uint16 {
	if !r.HasRemaining(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v
}

// U32BE decodes a big-endian uint32. Returns 0 without advancing when fewer
// than 4 bytes remain.
func (r *Reader) U32BE() uint32 {
	if !r.HasRemaining(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

// U64BE decodes a big-endian uint64. Returns 0 without advancing when fewer
// than 8 bytes remain.
func (r *Reader) U64BE() uint64 {
	if !r.HasRemaining(8) {
		return 0
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v
}

// I32 decodes a little-endian int32. Returns 0 without advancing when fewer
// than 4 bytes remain.
func (r *Reader) I32() int32 {
	if !r.HasRemaining(4) {
		return 0
	}
	v := int32(binary.LittleEndian.Uint32(r.buf[r.pos:]))
	r.pos += 4
	return v
}

// F32 decodes a little-endian IEEE-754 single-precision float from its raw
// bit pattern. Returns 0 without advancing when fewer than 4 bytes remain.
func (r *Reader) F32() float32 {
	if !r.HasRemaining(4) {
		return 0
	}
	bits := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return math.Float32frombits(bits)
}

// F64 decodes a little-endian IEEE-754 double-precision float from its raw
// bit pattern. Returns 0 without advancing when fewer than 8 bytes remain.
func (r *Reader) F64() float64 {
	if !r.HasRemaining(8) {
		return 0
	}
	bits := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits)
}

// Read copies exactly len(dst) bytes from the cursor into dst and returns
// len(dst). When fewer bytes remain the copy is not attempted at all: Read
// returns 0 and neither dst nor the cursor change.
func (r *Reader) Read(dst []byte) int {
	n := len(dst)
	if !r.HasRemaining(n) {
		return 0
	}
	copy(dst, r.buf[r.pos:r.pos+n])
	r.pos += n
	return n
}
