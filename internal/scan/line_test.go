package scan

import "testing"

func slice(data []byte, r Range) string { return string(r.Slice(data)) }

func TestTokenizeLinePing(t *testing.T) {
	data := []byte("PING :tmi.twitch.tv\r\n")
	ln := TokenizeLine(data)
	if ln.HasTags || ln.HasPrefix {
		t.Fatalf("unexpected tags/prefix on PING")
	}
	if slice(data, ln.Command) != "PING" {
		t.Errorf("command = %q", slice(data, ln.Command))
	}
	if len(ln.Params) != 0 {
		t.Errorf("params = %v, want none", ln.Params)
	}
	if !ln.HasTrailing || slice(data, ln.Trailing) != "tmi.twitch.tv" {
		t.Errorf("trailing = %q", slice(data, ln.Trailing))
	}
}

func TestTokenizeLinePrivmsg(t *testing.T) {
	data := []byte("@badge-info=subscriber/10;badges=subscriber/6;color=#F2647B;display-name=occluder;id=1eef01e3-634a-493b-b1a7-4f65040fa986;mod=0;room-id=11148817;subscriber=1;tmi-sent-ts=1679231590118;user-id=783267696;user-type= :occluder!occluder@occluder.tmi.twitch.tv PRIVMSG #pajlada :-tags lol!")
	ln := TokenizeLine(data)

	if !ln.HasTags {
		t.Fatal("expected tags block")
	}
	if !ln.HasPrefix || slice(data, ln.Prefix) != "occluder!occluder@occluder.tmi.twitch.tv" {
		t.Errorf("prefix = %q", slice(data, ln.Prefix))
	}
	if slice(data, ln.Command) != "PRIVMSG" {
		t.Errorf("command = %q", slice(data, ln.Command))
	}
	if len(ln.Params) != 1 || slice(data, ln.Params[0]) != "#pajlada" {
		t.Errorf("params = %v", ln.Params)
	}
	if !ln.HasTrailing || slice(data, ln.Trailing) != "-tags lol!" {
		t.Errorf("trailing = %q", slice(data, ln.Trailing))
	}

	want := map[string]string{
		"display-name": "occluder",
		"id":           "1eef01e3-634a-493b-b1a7-4f65040fa986",
		"mod":          "0",
		"room-id":      "11148817",
		"subscriber":   "1",
		"tmi-sent-ts":  "1679231590118",
		"user-id":      "783267696",
		"user-type":    "",
		"color":        "#F2647B",
		"badge-info":   "subscriber/10",
		"badges":       "subscriber/6",
	}
	got := map[string]string{}
	for _, tp := range ln.TagPairs {
		got[slice(data, tp.Key)] = slice(data, tp.Value)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("tag %q = %q, want %q", k, got[k], v)
		}
	}
}

func TestTokenizeLineEqualsInsideTagValue(t *testing.T) {
	// Regression: a tag value containing a literal '=' must not truncate
	// the value at the first '=' once the key has already been closed.
	data := []byte("@reply-parent-msg-body=a=b\\sc :tmi.twitch.tv PRIVMSG #x :hi")
	ln := TokenizeLine(data)
	for _, tp := range ln.TagPairs {
		if slice(data, tp.Key) == "reply-parent-msg-body" {
			if slice(data, tp.Value) != "a=b\\sc" {
				t.Errorf("value = %q, want %q", slice(data, tp.Value), "a=b\\sc")
			}
		}
	}
}

func TestTokenizeLineRoomstate(t *testing.T) {
	data := []byte("@emote-only=0;followers-only=-1;r9k=0;room-id=783267696;slow=0;subs-only=0 :tmi.twitch.tv ROOMSTATE #occluder")
	ln := TokenizeLine(data)
	if len(ln.TagPairs) != 6 {
		t.Fatalf("got %d tag pairs, want 6", len(ln.TagPairs))
	}
	if ln.HasTrailing {
		t.Errorf("unexpected trailing")
	}
	if len(ln.Params) != 1 || slice(data, ln.Params[0]) != "#occluder" {
		t.Errorf("params = %v", ln.Params)
	}
}

func TestTokenizeLineEmptyCommand(t *testing.T) {
	ln := TokenizeLine([]byte("\n"))
	if !ln.Command.Empty() {
		t.Errorf("expected empty command, got %v", ln.Command)
	}
}

func TestTokenizeLineBareKeyTag(t *testing.T) {
	data := []byte("@flag;room-id=1 :tmi.twitch.tv NOTICE #x :hi")
	ln := TokenizeLine(data)
	if len(ln.TagPairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(ln.TagPairs))
	}
	if slice(data, ln.TagPairs[0].Key) != "flag" || !ln.TagPairs[0].Value.Empty() {
		t.Errorf("bare tag = %+v", ln.TagPairs[0])
	}
}
