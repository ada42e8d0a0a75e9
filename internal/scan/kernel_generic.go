//go:build !amd64 && !arm64

package scan

func hasSIMD() bool { return false }

// FindByte returns the index of the first occurrence of b in data, or
// len(data) if absent.
func FindByte(data []byte, b byte) int { return findByteScalar(data, b) }

// FindAny2 returns the index of the first occurrence of either b1 or b2.
func FindAny2(data []byte, b1, b2 byte) int { return findAny2Scalar(data, b1, b2) }

// FindAny3 returns the index of the first occurrence of b1, b2, or b3.
func FindAny3(data []byte, b1, b2, b3 byte) int { return findAny3Scalar(data, b1, b2, b3) }
