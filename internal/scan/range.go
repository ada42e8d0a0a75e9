// Package scan provides the byte-scan kernels and structural tokenizer
// that turn a raw IRC line into a set of borrowed byte ranges.
package scan

// Range is a half-open byte interval [Start, End) into a caller-owned
// buffer. It never copies; callers slice the original buffer themselves.
type Range struct {
	Start uint32
	End   uint32
}

// Len returns the number of bytes the range covers.
func (r Range) Len() uint32 { return r.End - r.Start }

// Empty reports whether the range covers zero bytes.
func (r Range) Empty() bool { return r.Start == r.End }

// Slice returns the bytes the range covers in buf.
func (r Range) Slice(buf []byte) []byte { return buf[r.Start:r.End] }
