// Package bounds contains overflow-safe arithmetic for cursor positions and
// span windows. Every capacity check in the cursor packages funnels through
// these helpers so that a hostile or buggy size can never wrap an int and
// sneak past a bounds test.
package bounds

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would
// overflow int. Positions and sizes are ints, so pos+size must be computed
// through this rather than directly.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. Used for count * elementSize calculations, e.g. UTF-16
// code units to byte lengths.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// Slice returns the window b[off:off+n] if it lies within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether the window b[off:off+n] lies within len(b).
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
