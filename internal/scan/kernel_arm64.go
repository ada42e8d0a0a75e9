//go:build arm64

package scan

// findByteNEON and friends are stubs: no NEON assembly ships with this
// package, so they always signal "no match, fall back" and the scalar
// scanner runs instead. Kept separate from the scalar path (rather than
// folded into it) so the dispatch structure is ready for a real NEON
// kernel to be dropped in later without touching call sites.

func findByteNEON(data []byte, b byte) (int, bool)          { return 0, false }
func findAny2NEON(data []byte, b1, b2 byte) (int, bool)     { return 0, false }
func findAny3NEON(data []byte, b1, b2, b3 byte) (int, bool) { return 0, false }

func hasSIMD() bool { return hasNEON() }

// FindByte returns the index of the first occurrence of b in data, or
// len(data) if absent.
func FindByte(data []byte, b byte) int {
	if !preferScalar && hasNEON() {
		if pos, ok := findByteNEON(data, b); ok {
			return pos
		}
	}
	return findByteScalar(data, b)
}

// FindAny2 returns the index of the first occurrence of either b1 or b2.
func FindAny2(data []byte, b1, b2 byte) int {
	if !preferScalar && hasNEON() {
		if pos, ok := findAny2NEON(data, b1, b2); ok {
			return pos
		}
	}
	return findAny2Scalar(data, b1, b2)
}

// FindAny3 returns the index of the first occurrence of b1, b2, or b3.
func FindAny3(data []byte, b1, b2, b3 byte) int {
	if !preferScalar && hasNEON() {
		if pos, ok := findAny3NEON(data, b1, b2, b3); ok {
			return pos
		}
	}
	return findAny3Scalar(data, b1, b2, b3)
}
