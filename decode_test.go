package twirc

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestUnescape(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`a\sb`, "a b"},
		{`a\:b`, "a;b"},
		{`a\rb`, "a\rb"},
		{`a\nb`, "a\nb"},
		{`a\\b`, `a\b`},
		{`a\sb\:c\r\n\\`, "a b;c\r\n\\"},
		{`\x`, "x"},
		{`trailing\`, "trailing"},
		{`\`, ""},
	}
	for _, c := range cases {
		if got := Unescape([]byte(c.in)); got != c.want {
			t.Errorf("Unescape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// escape is the inverse of Unescape for the five recognized escapes, used
// only by the round-trip property test below.
func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, " ", `\s`, ";", `\:`, "\r", `\r`, "\n", `\n`)
	return r.Replace(s)
}

func TestUnescapeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte(" ;\r\n\\abc0")
	for i := 0; i < 500; i++ {
		buf := make([]byte, rng.Intn(40))
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		want := string(buf)
		if got := Unescape([]byte(escape(want))); got != want {
			t.Fatalf("round-trip %q: got %q", want, got)
		}
	}
}

func TestUnescapeNoBackslashBorrows(t *testing.T) {
	// The short-circuit must not copy: the returned string's data pointer
	// is inside the input slice. Observable here via zero allocations.
	val := []byte("no-escapes-here")
	allocs := testing.AllocsPerRun(100, func() {
		_ = Unescape(val)
	})
	if allocs != 0 {
		t.Errorf("Unescape without escapes allocated %.1f times per run", allocs)
	}
}

func TestDecodeBool(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"0", false},
		{"", false},
		{"true", false},
		{"2", false},
	}
	for _, c := range cases {
		if got := DecodeBool([]byte(c.in)); got != c.want {
			t.Errorf("DecodeBool(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDecodeInt(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{"", 0, nil},
		{"0", 0, nil},
		{"42", 42, nil},
		{"-1", -1, nil},
		{"1679231590118", 1679231590118, nil},
		{"-", 0, ErrNotANumber},
		{"12a", 0, ErrNotANumber},
		{"99999999999999999999", 0, ErrOverflow},
	}
	for _, c := range cases {
		got, err := DecodeInt([]byte(c.in))
		if !errors.Is(err, c.wantErr) {
			t.Errorf("DecodeInt(%q) err = %v, want %v", c.in, err, c.wantErr)
			continue
		}
		if err == nil && got != c.want {
			t.Errorf("DecodeInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseBadges(t *testing.T) {
	cases := []struct {
		in   string
		want []Badge
	}{
		{"", nil},
		{"subscriber/6", []Badge{{"subscriber", "6"}}},
		{"subscriber/6,moderator/1", []Badge{{"subscriber", "6"}, {"moderator", "1"}}},
		{"noversion", []Badge{{"noversion", ""}}},
		{"a/1,,b/2", []Badge{{"a", "1"}, {"b", "2"}}},
	}
	for _, c := range cases {
		got := ParseBadges([]byte(c.in))
		if len(got) != len(c.want) {
			t.Errorf("ParseBadges(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ParseBadges(%q)[%d] = %v, want %v", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestBadgeVersionPrefersBadgeInfo(t *testing.T) {
	badges := []Badge{{"subscriber", "6"}}
	info := []Badge{{"subscriber", "10"}}
	got, ok := BadgeVersion("subscriber", badges, info)
	if !ok || got != "10" {
		t.Errorf("BadgeVersion = %q, %v, want \"10\", true", got, ok)
	}
	got, ok = BadgeVersion("moderator", badges, info)
	if ok || got != "" {
		t.Errorf("BadgeVersion(moderator) = %q, %v, want absent", got, ok)
	}
}

func TestParseEmotes(t *testing.T) {
	cases := []struct {
		in   string
		want []Emote
	}{
		{"", nil},
		{"25:0-4", []Emote{{"25", 0, 4}}},
		{"25:0-4,6-10", []Emote{{"25", 0, 4}, {"25", 6, 10}}},
		{"25:0-4/1902:6-10", []Emote{{"25", 0, 4}, {"1902", 6, 10}}},
		{"garbage", nil},
		{"25:0-4,borked/1902:6-10", []Emote{{"25", 0, 4}, {"1902", 6, 10}}},
	}
	for _, c := range cases {
		got := ParseEmotes([]byte(c.in))
		if len(got) != len(c.want) {
			t.Errorf("ParseEmotes(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ParseEmotes(%q)[%d] = %v, want %v", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestUnwrapAction(t *testing.T) {
	body, isAction := unwrapAction([]byte("\x01ACTION waves\x01"))
	if !isAction || body != "waves" {
		t.Errorf("unwrapAction = %q, %v", body, isAction)
	}
	body, isAction = unwrapAction([]byte("just text"))
	if isAction || body != "just text" {
		t.Errorf("unwrapAction plain = %q, %v", body, isAction)
	}
}
