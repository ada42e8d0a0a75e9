//go:build amd64

package scan

// The AVX2/SSE4.2 entry points below are deliberately honest Go stubs, not
// cgo or assembly-backed intrinsics: this package ships no .s file, so the
// "wide" kernels always report themselves unavailable and every call falls
// through to the scalar scanner. Capability detection still runs (hasAVX2,
// hasSSE42) so the dispatch shape -- and the benchmarks that compare the
// "wide" path against scalar -- match a build that does carry real vector
// kernels, which is the point of keeping them separate from the fallback.

func findByteAVX2(data []byte, b byte) (int, bool)           { return 0, false }
func findByteSSE42(data []byte, b byte) (int, bool)          { return 0, false }
func findAny2AVX2(data []byte, b1, b2 byte) (int, bool)      { return 0, false }
func findAny2SSE42(data []byte, b1, b2 byte) (int, bool)     { return 0, false }
func findAny3AVX2(data []byte, b1, b2, b3 byte) (int, bool)  { return 0, false }
func findAny3SSE42(data []byte, b1, b2, b3 byte) (int, bool) { return 0, false }

func hasSIMD() bool { return hasAVX2() || hasSSE42() }

// FindByte returns the index of the first occurrence of b in data, or
// len(data) if absent.
func FindByte(data []byte, b byte) int {
	if !preferScalar {
		if hasAVX2() {
			if pos, ok := findByteAVX2(data, b); ok {
				return pos
			}
		}
		if hasSSE42() {
			if pos, ok := findByteSSE42(data, b); ok {
				return pos
			}
		}
	}
	return findByteScalar(data, b)
}

// FindAny2 returns the index of the first occurrence of either b1 or b2.
func FindAny2(data []byte, b1, b2 byte) int {
	if !preferScalar {
		if hasAVX2() {
			if pos, ok := findAny2AVX2(data, b1, b2); ok {
				return pos
			}
		}
		if hasSSE42() {
			if pos, ok := findAny2SSE42(data, b1, b2); ok {
				return pos
			}
		}
	}
	return findAny2Scalar(data, b1, b2)
}

// FindAny3 returns the index of the first occurrence of b1, b2, or b3.
func FindAny3(data []byte, b1, b2, b3 byte) int {
	if !preferScalar {
		if hasAVX2() {
			if pos, ok := findAny3AVX2(data, b1, b2, b3); ok {
				return pos
			}
		}
		if hasSSE42() {
			if pos, ok := findAny3SSE42(data, b1, b2, b3); ok {
				return pos
			}
		}
	}
	return findAny3Scalar(data, b1, b2, b3)
}
