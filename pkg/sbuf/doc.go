/*
Package sbuf provides a pair of minimal, bounds-checked cursors over
fixed-size byte buffers: a read-only Reader for sequential decoding and a
mutable Writer for sequential encoding of fixed-width binary values
(integers, floats, raw byte runs, fixed-length strings).

# Quick Start

Encode into a caller-owned buffer, then read it straight back:

	var buf [64]byte
	w := sbuf.NewWriter(buf[:])
	w.PutU16BE(0x0102)      // message tag, big-endian
	w.PutU32(1234)          // payload, little-endian
	w.WriteStringZ("probe") // NUL-terminated name

	r := w.Reader() // reader over exactly the bytes written
	tag := r.U16BE()
	count := r.U32()
	// ...

A reader can also be constructed directly over any span, for example bytes
received from I/O:

	r := sbuf.NewReader(frame)
	if !r.HasRemaining(8) {
	    // short frame, reject before decoding
	}

# Failure Policy

Cursor operations never allocate and never return errors. A decode or encode
that does not fit in the remaining span is a silent no-op: numeric operations
return the zero value, bulk operations report 0 bytes processed, and the
cursor does not move. Multi-byte operations are all-or-nothing; a partial
value is never read or written. Callers that need to tell a decoded zero from
a short span pre-check with HasRemaining/HasAvailable, or rely on an outer
framing layer that has already validated the length.

Absolute indexed access (At, SetAt) is the deliberate exception: an index
outside the span is a programmer error, not a data-length condition, and
panics unconditionally.

# Ownership

A cursor borrows its span for its whole lifetime. It never copies, grows, or
frees the bytes, and it must not outlive their owner. Spans are single-owner:
while a cursor holds one, nothing else should touch it. Converting a Writer
into a Reader transfers the written prefix to the new cursor and detaches the
writer, which keeps exactly one owner on the bytes through an
encode-then-verify sequence.

Cursors are not safe for concurrent use; each instance belongs to a single
goroutine.
*/
package sbuf
