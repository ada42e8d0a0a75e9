package scan

// Chunk sizes of the wide kernels this package dispatches to once real
// vector implementations are linked in.
const (
	AVX2ChunkSize = 32
	SSE4ChunkSize = 16
	NEONChunkSize = 16
)

// HasSIMD reports whether the scalar path is not pinned and the running
// CPU has a vector extension the dispatch checks for (AVX2 or SSE4.2 on
// amd64, ASIMD on arm64; always false on other targets). The wide kernels
// themselves are stubs (see kernel_amd64.go / kernel_arm64.go) that fall
// back to the scalar scanner, so a true result does not mean a vector
// kernel ran.
func HasSIMD() bool { return !preferScalar && hasSIMD() }

// preferScalar pins every FindByte/FindAny call to the scalar kernel
// even when the CPU reports wide-vector support. Not synchronized: set
// it once before parsing starts.
var preferScalar bool

// SetPreferScalar forces (or releases) the scalar scan path, used to
// isolate a suspected kernel bug or to measure the scalar baseline.
func SetPreferScalar(v bool) { preferScalar = v }
