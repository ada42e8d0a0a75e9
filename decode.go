package twirc

import (
	"strconv"
	"unsafe"

	"github.com/biggeezerdevelopment/twirc/internal/scan"
)

// unsafeString borrows b as a string without copying. Callers must not
// retain b after mutating the buffer it points into; within this package
// it is only ever used on ranges borrowed from a caller-owned RawLine
// that the package contract says is immutable for the View's lifetime.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}

// Unescape decodes the IRCv3 tag-value escape alphabet: \s->space,
// \:->semicolon, \r->CR, \n->LF, \\->backslash; any other \x decodes to
// x, and a trailing lone backslash decodes to nothing. When value
// contains no backslash, it is returned as a zero-copy borrow.
func Unescape(value []byte) string {
	if scan.FindByte(value, '\\') == len(value) {
		return unsafeString(value)
	}
	out := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if i+1 >= len(value) {
			break // trailing lone backslash decodes to nothing
		}
		i++
		switch value[i] {
		case 's':
			out = append(out, ' ')
		case ':':
			out = append(out, ';')
		case 'r':
			out = append(out, '\r')
		case 'n':
			out = append(out, '\n')
		case '\\':
			out = append(out, '\\')
		default:
			out = append(out, value[i])
		}
	}
	return string(out)
}

// DecodeBool implements Twitch's observed leniency: "1" is true,
// everything else (including "0" and empty) is false.
func DecodeBool(value []byte) bool {
	return len(value) == 1 && value[0] == '1'
}

// DecodeInt parses an optionally negative run of ASCII digits. An empty
// slice decodes to 0. Overflow is reported via ErrOverflow.
func DecodeInt(value []byte) (int64, error) {
	if len(value) == 0 {
		return 0, nil
	}
	neg := false
	i := 0
	if value[0] == '-' {
		neg = true
		i = 1
		if len(value) == 1 {
			return 0, ErrNotANumber
		}
	}
	var result int64
	for ; i < len(value); i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return 0, ErrNotANumber
		}
		digit := int64(c - '0')
		if result > (maxInt64-digit)/10 {
			return 0, ErrOverflow
		}
		result = result*10 + digit
	}
	if neg {
		result = -result
	}
	return result, nil
}

const maxInt64 = 1<<63 - 1

// DecodeTimestampMS parses a tag value as milliseconds since the Unix
// epoch. The wire representation is identical to DecodeInt; this wrapper
// exists purely to carry the semantic contract at call sites.
func DecodeTimestampMS(value []byte) (int64, error) {
	return DecodeInt(value)
}

// Badge is one `name/version` entry from a badges or badge-info tag.
type Badge struct {
	Name    string
	Version string
}

// ParseBadges splits a comma-separated `name/version,name2/version2` tag
// value. A token with no `/` becomes a Badge with an empty Version.
func ParseBadges(value []byte) []Badge {
	if len(value) == 0 {
		return nil
	}
	var badges []Badge
	start := 0
	for start <= len(value) {
		rel := scan.FindByte(value[start:], ',')
		end := start + rel
		token := value[start:end]
		if len(token) > 0 {
			slash := scan.FindByte(token, '/')
			if slash == len(token) {
				badges = append(badges, Badge{Name: string(token)})
			} else {
				badges = append(badges, Badge{Name: string(token[:slash]), Version: string(token[slash+1:])})
			}
		}
		if end >= len(value) {
			break
		}
		start = end + 1
	}
	return badges
}

// BadgeVersion returns the version string for name, preferring
// badgeInfo over badges when both carry the entry: badge-info carries
// the authoritative subscriber month count, badges only the tier
// badge's display version.
func BadgeVersion(name string, badges, badgeInfo []Badge) (string, bool) {
	for _, b := range badgeInfo {
		if b.Name == name {
			return b.Version, true
		}
	}
	for _, b := range badges {
		if b.Name == name {
			return b.Version, true
		}
	}
	return "", false
}

// Emote is one occurrence of an emote in a message, with Start/End as
// UTF-16 code-unit offsets into the message text (Twitch's own
// convention; this package does not re-index into the UTF-8 byte
// offsets of the decoded text).
type Emote struct {
	ID    string
	Start int
	End   int
}

// ParseEmotes decodes the Twitch emotes expression
// `id1:start-end,start-end/id2:start-end`. Malformed segments are
// skipped rather than aborting the whole parse.
func ParseEmotes(value []byte) []Emote {
	if len(value) == 0 {
		return nil
	}
	var emotes []Emote
	for _, idGroup := range splitBytes(value, '/') {
		colon := scan.FindByte(idGroup, ':')
		if colon == len(idGroup) {
			continue
		}
		id := string(idGroup[:colon])
		for _, rng := range splitBytes(idGroup[colon+1:], ',') {
			dash := scan.FindByte(rng, '-')
			if dash == len(rng) {
				continue
			}
			start, errS := strconv.Atoi(string(rng[:dash]))
			end, errE := strconv.Atoi(string(rng[dash+1:]))
			if errS != nil || errE != nil {
				continue
			}
			emotes = append(emotes, Emote{ID: id, Start: start, End: end})
		}
	}
	return emotes
}

const actionPrefix = "\x01ACTION "
const actionSuffix = "\x01"

// unwrapAction strips PRIVMSG's /me CTCP ACTION wrapping
// (\x01ACTION <text>\x01), a content-layer convention rather than
// anything the tokenizer needs to know about. Text without the wrapping
// is returned unchanged with isAction false.
func unwrapAction(text []byte) (body string, isAction bool) {
	s := string(text)
	if len(s) < len(actionPrefix)+len(actionSuffix) {
		return s, false
	}
	if s[:len(actionPrefix)] != actionPrefix || s[len(s)-1] != '\x01' {
		return s, false
	}
	return s[len(actionPrefix) : len(s)-1], true
}

// splitBytes splits data on sep without allocating a []string of copies;
// it returns sub-slices of data.
func splitBytes(data []byte, sep byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	var parts [][]byte
	start := 0
	for start <= len(data) {
		rel := scan.FindByte(data[start:], sep)
		end := start + rel
		parts = append(parts, data[start:end])
		if end >= len(data) {
			break
		}
		start = end + 1
	}
	return parts
}
