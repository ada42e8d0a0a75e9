package scan

import (
	"math/rand"
	"strings"
	"testing"
)

// randomLine builds a syntactically well-formed line from seeded
// randomness: optional tags, optional prefix, command, params, optional
// trailing. Returns the line plus the tag count it wrote.
func randomLine(rng *rand.Rand) (string, int) {
	var sb strings.Builder
	tagCount := 0

	if rng.Intn(2) == 0 {
		sb.WriteByte('@')
		tagCount = 1 + rng.Intn(5)
		for i := 0; i < tagCount; i++ {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString("key")
			sb.WriteByte(byte('a' + i))
			if rng.Intn(3) > 0 {
				sb.WriteByte('=')
				sb.WriteString("val")
			}
		}
		sb.WriteByte(' ')
	}

	if rng.Intn(2) == 0 {
		sb.WriteString(":nick!user@host.tmi.twitch.tv ")
	}

	sb.WriteString("PRIVMSG")

	for i := rng.Intn(3); i > 0; i-- {
		sb.WriteString(" #chan")
	}

	if rng.Intn(2) == 0 {
		sb.WriteString(" :trailing text here")
	}

	return sb.String(), tagCount
}

// Reassembling the tokenized regions with their separators must
// reproduce the input, modulo the stripped CR/LF.
func TestTokenizeLineReassembly(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		line, _ := randomLine(rng)
		data := []byte(line + "\r\n")
		ln := TokenizeLine(data)

		var sb strings.Builder
		if ln.HasTags {
			sb.WriteByte('@')
			sb.Write(ln.Tags.Slice(data))
			sb.WriteByte(' ')
		}
		if ln.HasPrefix {
			sb.WriteByte(':')
			sb.Write(ln.Prefix.Slice(data))
			sb.WriteByte(' ')
		}
		sb.Write(ln.Command.Slice(data))
		for _, p := range ln.Params {
			sb.WriteByte(' ')
			sb.Write(p.Slice(data))
		}
		if ln.HasTrailing {
			sb.WriteString(" :")
			sb.Write(ln.Trailing.Slice(data))
		}

		if sb.String() != line {
			t.Fatalf("reassembly mismatch:\n in: %q\nout: %q", line, sb.String())
		}
		ln.Release()
	}
}

// The tokenizer must emit exactly as many TagPairs as the generator
// wrote tags.
func TestTokenizeTagCount(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		line, wantTags := randomLine(rng)
		data := []byte(line)
		ln := TokenizeLine(data)
		if got := len(ln.TagPairs); got != wantTags {
			t.Fatalf("line %q: %d tag pairs, want %d", line, got, wantTags)
		}
		ln.Release()
	}
}

// Differential check of the dispatching kernels against the scalar
// reference on random inputs, including slices longer than any vector
// width and needles that never occur.
func TestKernelDifferential(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	needles := []byte{' ', '=', ';', '\n', 0x00, 0xFF}
	for i := 0; i < 1000; i++ {
		data := make([]byte, rng.Intn(200))
		for j := range data {
			data[j] = byte(rng.Intn(256))
		}
		for _, n := range needles {
			if got, want := FindByte(data, n), findByteScalar(data, n); got != want {
				t.Fatalf("FindByte(%v, %q) = %d, want %d", data, n, got, want)
			}
		}
		if got, want := FindAny2(data, '=', ';'), findAny2Scalar(data, '=', ';'); got != want {
			t.Fatalf("FindAny2 = %d, want %d", got, want)
		}
		if got, want := FindAny3(data, '=', ';', ' '), findAny3Scalar(data, '=', ';', ' '); got != want {
			t.Fatalf("FindAny3 = %d, want %d", got, want)
		}
	}
}
