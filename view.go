package twirc

import (
	"github.com/biggeezerdevelopment/twirc/internal/scan"
)

// View is a read-only, zero-copy handle to one parsed IRC line. Every
// accessor returns a slice or substring borrowed from buf; View must not
// outlive the buffer it was constructed from, and nothing in this
// package ever mutates buf.
type View struct {
	buf  []byte
	line scan.Line
	cmd  Command
}

// Parse tokenizes one raw protocol line (CRLF or LF tolerated, neither
// required) into a View. Parse never fails: malformed input surfaces as
// Command() == CommandUnknown or as absent tags/params, never as an
// error return.
func Parse(raw []byte) View {
	ln := scan.TokenizeLine(raw)
	return View{
		buf:  raw,
		line: ln,
		cmd:  Classify(ln.Command.Slice(raw)),
	}
}

// Release returns the View's pooled internal slices for reuse by a
// future Parse call. The View must not be used after calling Release.
func (v *View) Release() { v.line.Release() }

// Command returns the classified command of the line.
func (v View) Command() Command { return v.cmd }

// RawCommand returns the raw command bytes as seen on the wire, useful
// when Command() == CommandUnknown.
func (v View) RawCommand() []byte { return v.line.Command.Slice(v.buf) }

// Tags returns the tag pairs in the order they appeared on the wire.
// Values are raw (not unescaped); use Unescape or Tag's decoded
// counterparts in the typed layer for that.
func (v View) Tags() []scan.TagPair { return v.line.TagPairs }

// Tag looks up a tag by name via a linear scan over TagPairs (documented
// O(tag count) cost -- typical lines carry fewer than 20 tags). When the
// same key appears more than once, the last occurrence wins, matching
// observed (if undocumented) Twitch behavior; TagPairs remains in
// insertion order regardless.
func (v View) Tag(name string) ([]byte, bool) {
	for i := len(v.line.TagPairs) - 1; i >= 0; i-- {
		tp := v.line.TagPairs[i]
		if string(tp.Key.Slice(v.buf)) == name {
			return tp.Value.Slice(v.buf), true
		}
	}
	return nil, false
}

// TagByID looks up a tag by its registered TagID, resolving each key
// through LookupTag. Like Tag, it scans from the end, so the last
// occurrence of a key wins.
func (v View) TagByID(id TagID) ([]byte, bool) {
	for i := len(v.line.TagPairs) - 1; i >= 0; i-- {
		tp := v.line.TagPairs[i]
		if LookupTag(tp.Key.Slice(v.buf)) == id {
			return tp.Value.Slice(v.buf), true
		}
	}
	return nil, false
}

// Prefix returns the raw hostmask (e.g. "nick!user@host.tmi.twitch.tv"),
// if the line carried one.
func (v View) Prefix() ([]byte, bool) {
	if !v.line.HasPrefix {
		return nil, false
	}
	return v.line.Prefix.Slice(v.buf), true
}

// Nick returns the nickname portion of the prefix, up to the first '!',
// or the entire prefix if it contains no '!'.
func (v View) Nick() ([]byte, bool) {
	prefix, ok := v.Prefix()
	if !ok {
		return nil, false
	}
	bang := scan.FindByte(prefix, '!')
	if bang == len(prefix) {
		return prefix, true
	}
	return prefix[:bang], true
}

// Params returns the space-separated parameters after the command,
// excluding the trailing.
func (v View) Params() []scan.Range { return v.line.Params }

// Param returns the i-th parameter's bytes, or nil, false if there is no
// such parameter.
func (v View) Param(i int) ([]byte, bool) {
	if i < 0 || i >= len(v.line.Params) {
		return nil, false
	}
	return v.line.Params[i].Slice(v.buf), true
}

// Trailing returns the trailing slice exactly as sent, with no
// last-parameter fallback. Most typed constructors want Text instead;
// Trailing exists for the handful of commands (CLEARCHAT's no-target
// "clear everything" form among them) where a message with no trailing
// is semantically different from one whose only parameter happens to
// look like text.
func (v View) Trailing() ([]byte, bool) {
	if !v.line.HasTrailing {
		return nil, false
	}
	return v.line.Trailing.Slice(v.buf), true
}

// Text returns the trailing slice if present; otherwise the last
// parameter verbatim, which is where PING tokens and NAMES channel
// lists land when the server skips the colon. Returns false only when
// the line has neither a trailing nor any parameters.
func (v View) Text() ([]byte, bool) {
	if v.line.HasTrailing {
		return v.line.Trailing.Slice(v.buf), true
	}
	if n := len(v.line.Params); n > 0 {
		return v.line.Params[n-1].Slice(v.buf), true
	}
	return nil, false
}

// Channel returns the first parameter with its leading '#' stripped, or
// false if there is no parameter.
func (v View) Channel() (string, bool) {
	p, ok := v.Param(0)
	if !ok {
		return "", false
	}
	if len(p) > 0 && p[0] == '#' {
		p = p[1:]
	}
	return unsafeString(p), true
}
