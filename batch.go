package twirc

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"

	"github.com/biggeezerdevelopment/twirc/internal/scan"
)

// Message is the result of one successful BatchDecoder.Next call: the
// raw View is always populated; Typed is only set when the decoder's
// Config enables the typed layer and the line's command has a known
// projection.
type Message struct {
	View  View
	Typed any
	Err   error
}

// BatchDecoder reads newline-delimited IRC lines from a stream and
// decodes them one at a time, reusing its internal line buffer and View
// pools across calls the way the package's scan kernels reuse Range
// slices. It is not safe for concurrent use by multiple goroutines.
type BatchDecoder struct {
	scanner *bufio.Scanner
	cfg     Config
	log     zerolog.Logger
	count   uint64
	dropped uint64
	prev    View
}

// NewBatchDecoder wraps r, decoding lines as they arrive. log receives
// one sampled event per malformed line, at the rate cfg.LogSampleRate
// specifies.
func NewBatchDecoder(r io.Reader, cfg Config, log zerolog.Logger) *BatchDecoder {
	scan.SetPreferScalar(cfg.PreferScalar)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &BatchDecoder{scanner: scanner, cfg: cfg, log: log}
}

// Next decodes the next line from the stream. It returns false once the
// underlying reader is exhausted or returns an error; callers should
// check Err after a false return to distinguish EOF from a read error.
//
// Message.View borrows bufio.Scanner's internal buffer, which the next
// Next call overwrites: do not retain View past the following call. The
// same limit applies to the Typed projection (when enabled): its string
// fields taken from View.Channel or from Unescape on a value with no
// escapes borrow that buffer rather than copying it.
func (d *BatchDecoder) Next() (Message, bool) {
	// The previous View's pooled slices are safe to recycle now: the
	// caller's license to read it ends at this call.
	d.prev.Release()

	if !d.scanner.Scan() {
		return Message{}, false
	}
	d.count++

	line := d.scanner.Bytes()
	view := Parse(line)
	d.prev = view

	msg := Message{View: view}

	if view.Command() == CommandUnknown {
		d.dropped++
		if d.shouldLog() {
			d.log.Warn().
				Uint64("line", d.count).
				Bytes("raw", line).
				Msg("unrecognized command")
		}
	}

	if d.cfg.TypedLayerEnabled {
		msg.Typed, msg.Err = view.AsTyped()
		if msg.Err == ErrNoProjection {
			// Not an error for a stream consumer; the View is the result.
			msg.Typed, msg.Err = nil, nil
		}
		if msg.Err != nil {
			// AsTyped's half-filled struct is useless to type switches
			// downstream; drop it.
			msg.Typed = nil
			if d.shouldLog() {
				d.log.Warn().
					Uint64("line", d.count).
					Err(msg.Err).
					Msg("typed projection failed")
			}
		}
	}

	return msg, true
}

// Err returns the first non-EOF error the underlying reader produced.
func (d *BatchDecoder) Err() error { return d.scanner.Err() }

// Stats returns the total lines seen and the count that failed to
// classify as a known command.
func (d *BatchDecoder) Stats() (total, dropped uint64) { return d.count, d.dropped }

func (d *BatchDecoder) shouldLog() bool {
	if d.cfg.LogSampleRate <= 0 {
		return false
	}
	if d.cfg.LogSampleRate >= 1 {
		return true
	}
	// Deterministic sampling keyed off the line counter avoids pulling in
	// a PRNG dependency for a log-volume knob.
	step := uint64(1 / d.cfg.LogSampleRate)
	if step == 0 {
		step = 1
	}
	return d.count%step == 0
}
