package sbuf

import (
	"encoding/binary"
	"math"

	"github.com/joshuapare/bufkit/internal/bounds"
)

// Writer is a sequential encoding cursor over a borrowed, mutable byte span.
// The span is caller-owned and its length is the writer's capacity: the
// writer never grows it, never allocates, and must not outlive it.
//
// Encode operations are silent on overflow: a value that does not fit in the
// remaining capacity is simply not written and the cursor stays put. See the
// package documentation for the full failure policy.
type Writer struct {
	pos int
	buf []byte
}

// NewWriter returns a writer positioned at the start of buf. A nil buf
// behaves as a zero-capacity span.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Pos returns the cursor position within the span.
func (w *Writer) Pos() int { return w.pos }

// BytesWritten returns the number of bytes encoded so far. It equals Pos.
func (w *Writer) BytesWritten() int { return w.pos }

// BytesRemaining returns the capacity left between the cursor and the end of
// the span.
func (w *Writer) BytesRemaining() int {
	if w.pos >= len(w.buf) {
		return 0
	}
	return len(w.buf) - w.pos
}

// IsEmpty reports whether nothing has been written yet.
func (w *Writer) IsEmpty() bool { return w.pos == 0 }

// IsFull reports whether the cursor has reached the end of the span.
func (w *Writer) IsFull() bool { return w.pos >= len(w.buf) }

// HasAvailable reports whether n more bytes fit between the cursor and the
// end of the span. Negative n is never satisfiable.
func (w *Writer) HasAvailable(n int) bool {
	if n < 0 {
		return false
	}
	end, ok := bounds.AddOverflowSafe(w.pos, n)
	return ok && end <= len(w.buf)
}

// Bytes returns the entire backing span, including unwritten tail capacity.
func (w *Writer) Bytes() []byte { return w.buf }

// Written returns the prefix of the span that has been encoded so far.
func (w *Writer) Written() []byte { return w.buf[:w.pos] }

// At returns the byte at absolute index i, independent of the cursor. An
// index outside the span panics.
func (w *Writer) At(i int) byte { return w.buf[i] }

// SetAt stores v at absolute index i, independent of the cursor. Like At, an
// index outside the span panics; this is a logic bug, not a capacity
// condition.
func (w *Writer) SetAt(i int, v byte) { w.buf[i] = v }

// Advance moves the cursor forward n bytes without writing anything,
// stopping at the end of the span. Non-positive n leaves the cursor in
// place. The skipped bytes keep whatever value they already had.
func (w *Writer) Advance(n int) {
	if n <= 0 {
		return
	}
	end, ok := bounds.AddOverflowSafe(w.pos, n)
	if !ok || end > len(w.buf) {
		w.pos = len(w.buf)
		return
	}
	w.pos = end
}

// Reset moves the cursor back to the start of the span. Previously written
// bytes are not zeroed.
func (w *Writer) Reset() { w.pos = 0 }

// PutU8 writes one byte at the cursor. With no capacity left the call is a
// no-op.
func (w *Writer) PutU8(v uint8) {
	if !w.HasAvailable(1) {
		return
	}
	w.buf[w.pos] = v
	w.pos++
}

// PutU16 writes v as a little-endian uint16. Needs 2 bytes of capacity or
// the call is a no-op.
func (w *Writer) PutU16(v uint16) {
	if !w.HasAvailable(2) {
		return
	}
	binary.LittleEndian.PutUint16(w.buf[w.pos:], v)
	w.pos += 2
}

// PutU32 writes v as a little-endian uint32. Needs 4 bytes of capacity or
// the call is a no-op.
func (w *Writer) PutU32(v uint32) {
	if !w.HasAvailable(4) {
		return
	}
	binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
}

// PutU64 writes v as a little-endian uint64. Needs 8 bytes of capacity or
// the call is a no-op.
func (w *Writer) PutU64(v uint64) {
	if !w.HasAvailable(8) {
		return
	}
	binary.LittleEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8
}

// PutU16BE writes v as a big-endian uint16. Needs 2 bytes of capacity or the
// call is a no-op.
func (w *Writer) PutU16BE(v uint16) {
	if !w.HasAvailable(2) {
		return
	}
	binary.BigEndian.PutUint16(w.buf[w.pos:], v)
	w.pos += 2
}

// PutU32BE writes v as a big-endian uint32. Needs 4 bytes of capacity or the
// call is a no-op.
func (w *Writer) PutU32BE(v uint32) {
	if !w.HasAvailable(4) {
		return
	}
	binary.BigEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
}

// PutU64BE writes v as a big-endian uint64. Needs 8 bytes of capacity or the
// call is a no-op.
func (w *Writer) PutU64BE(v uint64) {
	if !w.HasAvailable(8) {
		return
	}
	binary.BigEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8
}

// PutI32 writes v as a little-endian int32. Needs 4 bytes of capacity or the
// call is a no-op.
func (w *Writer) PutI32(v int32) {
	if !w.HasAvailable(4) {
		return
	}
	binary.LittleEndian.PutUint32(w.buf[w.pos:], uint32(v))
	w.pos += 4
}

// PutF32 writes the raw IEEE-754 bit pattern of v as a little-endian uint32.
// Needs 4 bytes of capacity or the call is a no-op.
func (w *Writer) PutF32(v float32) {
	if !w.HasAvailable(4) {
		return
	}
	binary.LittleEndian.PutUint32(w.buf[w.pos:], math.Float32bits(v))
	w.pos += 4
}

// PutF64 writes the raw IEEE-754 bit pattern of v as a little-endian uint64.
// Needs 8 bytes of capacity or the call is a no-op.
func (w *Writer) PutF64(v float64) {
	if !w.HasAvailable(8) {
		return
	}
	binary.LittleEndian.PutUint64(w.buf[w.pos:], math.Float64bits(v))
	w.pos += 8
}

// FillAhead overwrites the next n bytes with v without moving the cursor. It
// reports whether the run fit within the span; when it does not, nothing is
// written.
func (w *Writer) FillAhead(v byte, n int) bool {
	if !w.HasAvailable(n) {
		return false
	}
	run := w.buf[w.pos : w.pos+n]
	for i := range run {
		run[i] = v
	}
	return true
}

// Fill overwrites the next n bytes with v and advances the cursor past them.
// When the run does not fit, nothing is written and the cursor stays put.
func (w *Writer) Fill(v byte, n int) {
	if w.FillAhead(v, n) {
		w.pos += n
	}
}

// Write copies all of src at the cursor and returns len(src). When src does
// not fit the copy is not attempted at all: Write returns 0 and the span is
// untouched.
func (w *Writer) Write(src []byte) int {
	n := len(src)
	if !w.HasAvailable(n) {
		return 0
	}
	copy(w.buf[w.pos:], src)
	w.pos += n
	return n
}

// WriteString copies the raw bytes of s at the cursor. No length prefix and
// no encoding conversion are applied; s is assumed to already be in the
// target byte encoding. All-or-nothing like Write.
func (w *Writer) WriteString(s string) int {
	n := len(s)
	if !w.HasAvailable(n) {
		return 0
	}
	copy(w.buf[w.pos:], s)
	w.pos += n
	return n
}

// WriteStringZ writes the raw bytes of s followed by a single NUL byte. The
// combined length is checked up front, so a span too small for both parts
// stays untouched. Returns len(s)+1, or 0 when it did not fit.
func (w *Writer) WriteStringZ(s string) int {
	total := len(s) + 1
	if !w.HasAvailable(total) {
		return 0
	}
	copy(w.buf[w.pos:], s)
	w.buf[w.pos+len(s)] = 0
	w.pos += total
	return total
}

// Reader detaches the writer from its span and returns a reader over exactly
// the bytes written so far. The unwritten tail capacity is not carried over:
// writing 7 bytes into a 256-byte span yields a 7-byte reader.
//
// The transfer is one-shot. Afterwards the writer holds no span: every Put,
// Fill, and Write is an inert no-op, and At/SetAt panic. This keeps a single
// owner on the underlying bytes through an encode-then-verify sequence.
func (w *Writer) Reader() *Reader {
	r := NewReader(w.buf[:w.pos])
	w.buf = nil
	w.pos = 0
	return r
}
