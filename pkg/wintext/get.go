package wintext

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/bufkit/pkg/sbuf"
)

// UTF16 decodes n bytes at the reader's cursor as UTF-16LE and advances past
// them. An odd n fails with ErrOddLength and fewer than n remaining bytes
// fail with ErrShort; in both cases the cursor holds.
func UTF16(r *sbuf.Reader, n int) (string, error) {
	if n%2 != 0 {
		return "", ErrOddLength
	}
	if !r.HasRemaining(n) {
		return "", ErrShort
	}
	data := r.Bytes()[r.Pos() : r.Pos()+n]
	s := decodeUTF16LE(data)
	r.Advance(n)
	return s, nil
}

// UTF16Z scans the remaining span for a two-byte NUL terminator, decodes the
// bytes before it as UTF-16LE, and advances past the terminator. Without a
// terminator it fails with ErrNoTerminator and the cursor holds.
func UTF16Z(r *sbuf.Reader) (string, error) {
	data := r.Bytes()[r.Pos():]
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			s := decodeUTF16LE(data[:i])
			r.Advance(i + 2)
			return s, nil
		}
	}
	return "", ErrNoTerminator
}

// Windows1252 decodes n bytes at the reader's cursor as Windows-1252 and
// advances past them. Fewer than n remaining bytes fail with ErrShort and the
// cursor holds. Every byte has a Windows-1252 decoding, so length is the only
// failure.
func Windows1252(r *sbuf.Reader, n int) (string, error) {
	if !r.HasRemaining(n) {
		return "", ErrShort
	}
	data := r.Bytes()[r.Pos() : r.Pos()+n]

	// Fast path: ASCII bytes mean the same thing in Windows-1252 and UTF-8.
	if isASCII(data) {
		r.Advance(n)
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode Windows-1252 text: %w", err)
	}
	r.Advance(n)
	return string(decoded), nil
}

// StringZ scans the remaining span for a single NUL byte and returns the raw
// bytes before it, advancing past the terminator. It is the read-side dual of
// Writer.WriteStringZ. Without a terminator it reports false and the cursor
// holds.
func StringZ(r *sbuf.Reader) (string, bool) {
	data := r.Bytes()[r.Pos():]
	i := bytes.IndexByte(data, 0)
	if i < 0 {
		return "", false
	}
	s := string(data[:i])
	r.Advance(i + 1)
	return s, true
}

// decodeUTF16LE decodes UTF-16LE bytes to a UTF-8 string without an
// intermediate []uint16 allocation. len(data) must be even.
func decodeUTF16LE(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	// Fast path: in UTF-16LE an ASCII char is [byte, 0x00], the dominant
	// shape for identifiers and paths.
	allASCII := true
	for i := 0; i < len(data); i += 2 {
		if data[i+1] != 0 || data[i] >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return b.String()
	}

	// Slow path: combine surrogate pairs, pass everything else through.
	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8

		if r >= highSurrogateMin && r <= highSurrogateMax && i+3 < len(data) {
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 >= lowSurrogateMin && r2 <= lowSurrogateMax {
				r = surrogateBase + ((r-highSurrogateMin)<<10 | (r2 - lowSurrogateMin))
				i += 2
			}
		}

		b.WriteRune(r)
	}
	return b.String()
}
