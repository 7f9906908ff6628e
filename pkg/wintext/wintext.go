// Package wintext moves legacy Windows string encodings through sbuf cursors.
//
// The core cursors are deliberately conversion-free: Writer.WriteString copies
// raw bytes and Reader hands back raw bytes. Wire formats that carry UTF-16LE
// or Windows-1252 text (registry values, legacy file headers, COM structures)
// need a conversion step, and that step lives here so the core can stay
// allocation-free.
//
// Write helpers follow the core failure policy: the encoded size is computed
// up front, and a span without room for the whole string receives nothing.
// Read helpers return errors instead, because a decode can fail for reasons
// other than length (odd byte counts, missing terminators) and the caller
// needs to tell those apart. In both directions the cursor moves only when the
// operation succeeds.
package wintext

import (
	"errors"

	"github.com/joshuapare/bufkit/internal/bounds"
)

var (
	// ErrShort indicates the span lacked the bytes the operation required.
	ErrShort = errors.New("wintext: span too short")
	// ErrOddLength indicates a UTF-16 byte count that is not a multiple of two.
	ErrOddLength = errors.New("wintext: odd utf-16 byte length")
	// ErrNoTerminator indicates no NUL terminator inside the remaining span.
	ErrNoTerminator = errors.New("wintext: terminator not found")
)

// UTF-16 surrogate range, shared by the encode and decode paths.
const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
	surrogateBase    = 0x10000
)

// utf16ByteLen returns the UTF-16LE encoded size of s in bytes. Supplementary
// plane runes take a surrogate pair, everything else a single code unit.
func utf16ByteLen(s string) (int, bool) {
	units := 0
	for _, r := range s {
		if r >= surrogateBase {
			units += 2
		} else {
			units++
		}
	}
	return bounds.MulOverflowSafe(units, 2)
}

// isASCII reports whether every byte in data is below 0x80. ASCII bytes have
// the same meaning in UTF-8 and Windows-1252, so they need no conversion.
func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
