package twirc

import "testing"

func TestClassifyKnownCommands(t *testing.T) {
	cases := []struct {
		in   string
		want Command
	}{
		{"PING", CommandPing},
		{"PONG", CommandPong},
		{"JOIN", CommandJoin},
		{"PART", CommandPart},
		{"PRIVMSG", CommandPrivmsg},
		{"WHISPER", CommandWhisper},
		{"CLEARCHAT", CommandClearChat},
		{"CLEARMSG", CommandClearMsg},
		{"GLOBALUSERSTATE", CommandGlobalUserState},
		{"NOTICE", CommandNotice},
		{"RECONNECT", CommandReconnect},
		{"ROOMSTATE", CommandRoomState},
		{"USERNOTICE", CommandUserNotice},
		{"USERSTATE", CommandUserState},
		{"CAP", CommandCapability},
		{"NICK", CommandNick},
		{"PASS", CommandPass},
		{"MODE", CommandMode},
		{"001", CommandRplWelcome},
		{"002", CommandRplYourHost},
		{"003", CommandRplCreated},
		{"004", CommandRplMyInfo},
		{"353", CommandRplNames},
		{"366", CommandRplEndOfNames},
		{"372", CommandRplMotd},
		{"375", CommandRplMotdStart},
		{"376", CommandRplEndOfMotd},
	}
	for _, c := range cases {
		if got := Classify([]byte(c.in)); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// Classify is case-sensitive: Twitch sends uppercase, and lowercasing a
// command should not accidentally match.
func TestClassifyCaseSensitive(t *testing.T) {
	for _, in := range []string{"privmsg", "Privmsg", "ping", "notice"} {
		if got := Classify([]byte(in)); got != CommandUnknown {
			t.Errorf("Classify(%q) = %v, want Unknown", in, got)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, in := range []string{"", "BOGUS", "005", "42"} {
		if got := Classify([]byte(in)); got != CommandUnknown {
			t.Errorf("Classify(%q) = %v, want Unknown", in, got)
		}
	}
}

// Classify(cmd.String()) == cmd for every known command: String and
// Classify are inverses over the closed set.
func TestClassifyStringRoundTrip(t *testing.T) {
	for c := CommandPing; c <= CommandRplEndOfMotd; c++ {
		if got := Classify([]byte(c.String())); got != c {
			t.Errorf("Classify(%q) = %v, want %v", c.String(), got, c)
		}
	}
}
