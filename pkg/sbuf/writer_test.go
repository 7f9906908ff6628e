package sbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// 1) Happy path: sequential little-endian encode, then decode it back
// -----------------------------------------------------------------------------.
func TestWriter_SequentialEncodeThenReadBack(t *testing.T) {
	buf := make([]byte, 7)
	w := NewWriter(buf)

	require.True(t, w.IsEmpty())
	require.Equal(t, 7, w.BytesRemaining())

	w.PutU8(0x0a)
	require.Equal(t, 1, w.Pos())
	w.PutU16(0x2c1b)
	require.Equal(t, 3, w.Pos())
	w.PutU32(0x605f4e3d)
	require.Equal(t, 7, w.Pos())
	require.True(t, w.IsFull())

	require.Equal(t, []byte{0x0a, 0x1b, 0x2c, 0x3d, 0x4e, 0x5f, 0x60}, w.Written())

	r := w.Reader()
	require.Equal(t, uint8(0x0a), r.U8())
	require.Equal(t, uint16(0x2c1b), r.U16())
	require.Equal(t, uint32(0x605f4e3d), r.U32())
	require.True(t, r.IsFull())
}

// -----------------------------------------------------------------------------
// 2) Big-endian encode round-trips through big-endian decode
// -----------------------------------------------------------------------------.
func TestWriter_BigEndianRoundTrip(t *testing.T) {
	w := NewWriter(make([]byte, 6))

	w.PutU16BE(0x0a1b)
	w.PutU32BE(0x0a1b2c3d)
	require.Equal(t, []byte{0x0a, 0x1b, 0x0a, 0x1b, 0x2c, 0x3d}, w.Written())

	r := w.Reader()
	require.Equal(t, uint16(0x0a1b), r.U16BE())
	require.Equal(t, uint32(0x0a1b2c3d), r.U32BE())

	// same value little-endian reverses the bytes
	w = NewWriter(make([]byte, 4))
	w.PutU32(0x0a1b2c3d)
	require.Equal(t, []byte{0x3d, 0x2c, 0x1b, 0x0a}, w.Written())
}

// -----------------------------------------------------------------------------
// 3) Wide and signed encode: u64 both orders, negative i32
// -----------------------------------------------------------------------------.
func TestWriter_WideAndSignedEncode(t *testing.T) {
	w := NewWriter(make([]byte, 8))
	w.PutU64(0xefcdab8967452301)
	require.Equal(t, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, w.Written())

	w = NewWriter(make([]byte, 8))
	w.PutU64BE(0x0123456789abcdef)
	require.Equal(t, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, w.Written())

	w = NewWriter(make([]byte, 4))
	w.PutI32(-2)
	require.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, w.Written())
	require.Equal(t, int32(-2), w.Reader().I32())
}

// -----------------------------------------------------------------------------
// 4) Floats encode as raw IEEE-754 bit patterns and round-trip exactly
// -----------------------------------------------------------------------------.
func TestWriter_FloatEncode(t *testing.T) {
	w := NewWriter(make([]byte, 4))
	w.PutF32(1234.56)
	require.Equal(t, []byte{0xec, 0x51, 0x9a, 0x44}, w.Written())

	w = NewWriter(make([]byte, 8))
	w.PutF64(1.5)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x3f}, w.Written())

	// a small sequence survives the trip bit-for-bit
	w = NewWriter(make([]byte, 16))
	w.PutF32(18.9)
	w.PutF32(3.14159)
	w.PutF64(2.718281828459045)
	require.Equal(t, 16, w.BytesWritten())

	r := w.Reader()
	require.Equal(t, float32(18.9), r.F32())
	require.Equal(t, float32(3.14159), r.F32())
	require.Equal(t, 2.718281828459045, r.F64())
}

// -----------------------------------------------------------------------------
// 5) Overflow is a silent no-op: nothing written, cursor holds
// -----------------------------------------------------------------------------.
func TestWriter_OverflowIsSilentNoOp(t *testing.T) {
	w := NewWriter(make([]byte, 2))

	require.True(t, w.HasAvailable(0))
	require.True(t, w.HasAvailable(1))
	require.True(t, w.HasAvailable(2))
	require.False(t, w.HasAvailable(3))
	require.False(t, w.HasAvailable(-1))

	// u32 needs 4 bytes, only 2 exist
	w.PutU32(0xdeadbeef)
	require.Equal(t, 0, w.Pos())
	require.Equal(t, []byte{0x00, 0x00}, w.Bytes())

	// exact fit still succeeds
	w.PutU16(0x0201)
	require.True(t, w.IsFull())
	require.Equal(t, []byte{0x01, 0x02}, w.Bytes())

	// full span: every put is inert
	w.PutU8(0xff)
	w.PutU16(0xffff)
	w.PutU64(0xffffffffffffffff)
	w.PutF64(1.0)
	require.Equal(t, 2, w.Pos())
	require.Equal(t, []byte{0x01, 0x02}, w.Bytes())
}

// -----------------------------------------------------------------------------
// 6) Fill advances, FillAhead stamps in place; both refuse partial runs
// -----------------------------------------------------------------------------.
func TestWriter_FillAndFillAhead(t *testing.T) {
	w := NewWriter(make([]byte, 6))

	require.True(t, w.FillAhead(0xff, 4))
	require.Equal(t, 0, w.Pos())
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00}, w.Bytes())

	w.Fill(0xee, 2)
	require.Equal(t, 2, w.Pos())
	require.Equal(t, []byte{0xee, 0xee, 0xff, 0xff, 0x00, 0x00}, w.Bytes())

	// 4 bytes left, 5 requested: span untouched, cursor holds
	require.False(t, w.FillAhead(0x11, 5))
	w.Fill(0x11, 5)
	require.Equal(t, 2, w.Pos())
	require.Equal(t, []byte{0xee, 0xee, 0xff, 0xff, 0x00, 0x00}, w.Bytes())

	// zero-length run is trivially satisfied
	require.True(t, w.FillAhead(0x22, 0))
	w.Fill(0x22, 0)
	require.Equal(t, 2, w.Pos())

	require.False(t, w.FillAhead(0x33, -1))
}

// -----------------------------------------------------------------------------
// 7) Write and WriteString copy everything or nothing
// -----------------------------------------------------------------------------.
func TestWriter_WriteAllOrNothing(t *testing.T) {
	w := NewWriter(make([]byte, 5))

	require.Equal(t, 3, w.Write([]byte{0x01, 0x02, 0x03}))
	require.Equal(t, 3, w.Pos())

	// 2 bytes left, 3 offered: tail stays zero
	require.Equal(t, 0, w.Write([]byte{0x04, 0x05, 0x06}))
	require.Equal(t, 3, w.Pos())
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x00, 0x00}, w.Bytes())

	require.Equal(t, 2, w.Write([]byte{0x04, 0x05}))
	require.True(t, w.IsFull())

	w = NewWriter(make([]byte, 4))
	require.Equal(t, 0, w.WriteString("hello"))
	require.Equal(t, 0, w.Pos())
	require.Equal(t, 4, w.WriteString("hell"))
	require.Equal(t, []byte("hell"), w.Written())
}

// -----------------------------------------------------------------------------
// 8) WriteStringZ accounts for the terminator up front
// -----------------------------------------------------------------------------.
func TestWriter_StringZTerminatorNeedsRoom(t *testing.T) {
	// 6 bytes: "Hello" plus NUL fits exactly
	w := NewWriter(make([]byte, 6))
	require.Equal(t, 6, w.WriteStringZ("Hello"))
	require.Equal(t, []byte{'H', 'e', 'l', 'l', 'o', 0x00}, w.Written())
	require.True(t, w.IsFull())

	// 5 bytes: the characters alone would fit, the terminator does not
	w = NewWriter(make([]byte, 5))
	require.Equal(t, 0, w.WriteStringZ("Hello"))
	require.Equal(t, 0, w.Pos())
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00}, w.Bytes())

	// WriteString has no terminator and takes the same 5 bytes fine
	require.Equal(t, 5, w.WriteString("Hello"))
	require.True(t, w.IsFull())

	// empty string still costs one byte
	w = NewWriter(make([]byte, 1))
	require.Equal(t, 1, w.WriteStringZ(""))
	require.Equal(t, []byte{0x00}, w.Written())
}

// -----------------------------------------------------------------------------
// 9) SetAt patches anywhere in the span; OOB indexing panics
// -----------------------------------------------------------------------------.
func TestWriter_SetAtPatchesAbsoluteIndex(t *testing.T) {
	w := NewWriter(make([]byte, 4))

	// reserve a length slot, write the payload, patch the slot after
	w.PutU8(0x00)
	w.Write([]byte{0xca, 0xfe})
	w.SetAt(0, 0x02)

	require.Equal(t, []byte{0x02, 0xca, 0xfe}, w.Written())
	require.Equal(t, byte(0xca), w.At(1))
	require.Equal(t, 3, w.Pos())

	// absolute indexing covers the unwritten tail too
	w.SetAt(3, 0x99)
	require.Equal(t, byte(0x99), w.At(3))

	require.Panics(t, func() { w.SetAt(4, 0x00) })
	require.Panics(t, func() { w.At(4) })
	require.Panics(t, func() { w.SetAt(-1, 0x00) })
}

// -----------------------------------------------------------------------------
// 10) Advance skips bytes without touching them and clamps at capacity
// -----------------------------------------------------------------------------.
func TestWriter_AdvanceSkipsAndClamps(t *testing.T) {
	buf := []byte{0xaa, 0xaa, 0xaa, 0xaa}
	w := NewWriter(buf)

	w.Advance(2)
	require.Equal(t, 2, w.Pos())
	require.Equal(t, []byte{0xaa, 0xaa, 0xaa, 0xaa}, buf)

	w.Advance(-3)
	require.Equal(t, 2, w.Pos())

	w.Advance(100)
	require.True(t, w.IsFull())
	require.Equal(t, []byte{0xaa, 0xaa, 0xaa, 0xaa}, buf)
}

// -----------------------------------------------------------------------------
// 11) Reset rewinds and later writes overwrite the old prefix
// -----------------------------------------------------------------------------.
func TestWriter_ResetOverwritesFromStart(t *testing.T) {
	w := NewWriter(make([]byte, 4))

	w.PutU32(0x44332211)
	require.True(t, w.IsFull())

	w.Reset()
	require.True(t, w.IsEmpty())
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, w.Bytes())

	w.PutU16(0xbbaa)
	require.Equal(t, []byte{0xaa, 0xbb}, w.Written())
	require.Equal(t, []byte{0xaa, 0xbb, 0x33, 0x44}, w.Bytes())
}

// -----------------------------------------------------------------------------
// 12) Reader() hands over only the written prefix and detaches the writer
// -----------------------------------------------------------------------------.
func TestWriter_ReaderDetachesWriter(t *testing.T) {
	w := NewWriter(make([]byte, 256))
	w.Write([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})

	r := w.Reader()

	// the reader sees exactly the written prefix, not the full capacity
	require.Equal(t, 7, r.BytesRemaining())
	require.Equal(t, 7, len(r.Bytes()))
	require.Equal(t, uint8(0x01), r.U8())

	// the writer is left with no span at all
	require.Nil(t, w.Bytes())
	require.Equal(t, 0, w.Pos())
	require.True(t, w.IsFull())
	require.False(t, w.HasAvailable(1))

	w.PutU32(0xdeadbeef)
	require.Equal(t, 0, w.Write([]byte{0x01}))
	require.Panics(t, func() { w.At(0) })
	require.Panics(t, func() { w.SetAt(0, 0x00) })

	// detaching again yields an empty reader
	require.Equal(t, 0, w.Reader().BytesRemaining())
}

// -----------------------------------------------------------------------------
// 13) Every scalar op round-trips through its decode counterpart
// -----------------------------------------------------------------------------.
func TestWriter_ScalarRoundTripSweep(t *testing.T) {
	w := NewWriter(make([]byte, 64))

	w.PutU8(0x7f)
	w.PutU16(0xbeef)
	w.PutU32(0xdeadbeef)
	w.PutU64(0x0102030405060708)
	w.PutU16BE(0xbeef)
	w.PutU32BE(0xdeadbeef)
	w.PutU64BE(0x0102030405060708)
	w.PutI32(-123456789)
	w.PutF32(-0.25)
	w.PutF64(6.02214076e23)
	require.Equal(t, 45, w.BytesWritten())

	r := w.Reader()
	require.Equal(t, uint8(0x7f), r.U8())
	require.Equal(t, uint16(0xbeef), r.U16())
	require.Equal(t, uint32(0xdeadbeef), r.U32())
	require.Equal(t, uint64(0x0102030405060708), r.U64())
	require.Equal(t, uint16(0xbeef), r.U16BE())
	require.Equal(t, uint32(0xdeadbeef), r.U32BE())
	require.Equal(t, uint64(0x0102030405060708), r.U64BE())
	require.Equal(t, int32(-123456789), r.I32())
	require.Equal(t, float32(-0.25), r.F32())
	require.Equal(t, 6.02214076e23, r.F64())
	require.True(t, r.IsFull())
}
