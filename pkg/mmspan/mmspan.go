// Package mmspan provides file-backed byte spans for the sbuf cursors.
//
// A Region is a fixed-size window onto a file: read-only through Map, or
// read-write through Create. On unix platforms the window is memory-mapped,
// so cursors decode straight out of the page cache and Flush is an msync. On
// other platforms the file is read into memory and Flush writes it back
// atomically through a temp file and rename.
//
// Regions never grow. That is deliberate: the cursors are bounds-checked
// against a fixed capacity, and a fixed-size mapping is what makes the
// no-allocation contract hold end to end.
package mmspan

import (
	"errors"

	"github.com/joshuapare/bufkit/internal/bounds"
)

var (
	// ErrReadOnly indicates a write-side operation on a region opened with Map.
	ErrReadOnly = errors.New("mmspan: region is read-only")
	// ErrClosed indicates an operation on a region after Close.
	ErrClosed = errors.New("mmspan: region is closed")
)

// Region is a file-backed byte span. It is not safe for concurrent use.
type Region struct {
	data     []byte
	path     string
	writable bool
	closed   bool

	// unmap releases a live mapping; nil when the data is heap-backed.
	unmap func() error
	// sync persists the span; nil for read-only regions.
	sync func() error
}

// Map opens the file at path as a read-only region.
func Map(path string) (*Region, error) {
	return openRegion(path)
}

// Create truncates or creates the file at path to exactly size bytes and
// returns a writable region over it. Existing content within size is
// preserved on platforms that map in place; the fallback starts from the
// file's bytes as well.
func Create(path string, size int) (*Region, error) {
	if size < 0 {
		return nil, errors.New("mmspan: negative region size")
	}
	return createRegion(path, size)
}

// Bytes returns the backing span. Hand it to sbuf.NewReader or, for writable
// regions, sbuf.NewWriter. Returns nil after Close.
func (r *Region) Bytes() []byte {
	if r.closed {
		return nil
	}
	return r.data
}

// Len returns the span length in bytes, 0 after Close.
func (r *Region) Len() int {
	if r.closed {
		return 0
	}
	return len(r.data)
}

// Writable reports whether the region was opened through Create.
func (r *Region) Writable() bool { return r.writable && !r.closed }

// Slice returns a window of n bytes starting at off, for running a cursor
// over part of the file. The second return is false when the window falls
// outside the span or the region is closed.
func (r *Region) Slice(off, n int) ([]byte, bool) {
	if r.closed {
		return nil, false
	}
	return bounds.Slice(r.data, off, n)
}

// Flush persists the span to the file. Read-only regions fail with
// ErrReadOnly, closed regions with ErrClosed.
func (r *Region) Flush() error {
	if r.closed {
		return ErrClosed
	}
	if !r.writable {
		return ErrReadOnly
	}
	if r.sync == nil {
		return nil
	}
	return r.sync()
}

// Close releases the region. Writable changes that were not flushed may or
// may not reach the file, depending on the platform. Close is idempotent.
func (r *Region) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.data = nil
	if r.unmap == nil {
		return nil
	}
	return r.unmap()
}
