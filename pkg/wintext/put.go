package wintext

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/bufkit/internal/bounds"
	"github.com/joshuapare/bufkit/pkg/sbuf"
)

// PutUTF16 encodes s as UTF-16LE code units at the writer's cursor, with no
// terminator. The full encoded size is checked before anything is written;
// when it does not fit, the span is untouched and PutUTF16 returns 0.
// Otherwise it returns the number of bytes written.
func PutUTF16(w *sbuf.Writer, s string) int {
	size, ok := utf16ByteLen(s)
	if !ok || !w.HasAvailable(size) {
		return 0
	}
	putUnits(w, s)
	return size
}

// PutUTF16Z encodes s as UTF-16LE followed by a two-byte NUL terminator, the
// REG_SZ layout. The combined size is checked up front. Returns the encoded
// size plus 2, or 0 when it did not fit.
func PutUTF16Z(w *sbuf.Writer, s string) int {
	size, ok := utf16ByteLen(s)
	if !ok {
		return 0
	}
	total, ok := bounds.AddOverflowSafe(size, 2)
	if !ok || !w.HasAvailable(total) {
		return 0
	}
	putUnits(w, s)
	w.PutU16(0)
	return total
}

// putUnits emits the UTF-16LE code units of s. Capacity must already be
// checked, so every PutU16 below succeeds. Ranging over a string never yields
// an unpaired surrogate or an out-of-range rune, which keeps the split simple:
// below 0x10000 is one unit, everything else is a pair.
func putUnits(w *sbuf.Writer, s string) {
	for _, r := range s {
		if r < surrogateBase {
			w.PutU16(uint16(r))
			continue
		}
		hi, lo := utf16.EncodeRune(r)
		w.PutU16(uint16(hi))
		w.PutU16(uint16(lo))
	}
}

// PutWindows1252 encodes s as Windows-1252 at the writer's cursor. Runes with
// no Windows-1252 mapping make the whole call fail with nothing written. A
// span too small for the encoded bytes fails with ErrShort, also writing
// nothing. On success it returns the number of bytes written.
func PutWindows1252(w *sbuf.Writer, s string) (int, error) {
	var encoded []byte
	if b := []byte(s); isASCII(b) {
		encoded = b
	} else {
		var err error
		encoded, err = charmap.Windows1252.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return 0, fmt.Errorf("failed to encode Windows-1252 text: %w", err)
		}
	}
	if !w.HasAvailable(len(encoded)) {
		return 0, ErrShort
	}
	return w.Write(encoded), nil
}
