package twirc

import "strings"

// Numeric is a typed projection of a server numeric reply (001-004,
// 366 end-of-names, 372/375/376 MOTD lines) that carries no structure
// beyond "a line of text for this client".
type Numeric struct {
	Command Command
	Target  string
	Text    string
}

// NewNumeric projects v as a Numeric. It fails with WrongCommandError
// for every command outside that set, including 353/NAMES, which has
// its own projection, NewNamesReply.
func NewNumeric(v View) (Numeric, error) {
	var m Numeric
	switch v.Command() {
	case CommandRplWelcome, CommandRplYourHost, CommandRplCreated, CommandRplMyInfo,
		CommandRplMotd, CommandRplMotdStart, CommandRplEndOfMotd, CommandRplEndOfNames:
	default:
		return m, &WrongCommandError{Expected: CommandRplWelcome, Actual: v.Command()}
	}
	m.Command = v.Command()
	if p, ok := v.Param(0); ok {
		m.Target = string(p)
	}
	if text, ok := v.Text(); ok {
		m.Text = string(text)
	}
	return m, nil
}

// NamesReply is a typed projection of a 353 (RPL_NAMREPLY) line: the
// list of logins currently in a channel. Twitch sends the channel name
// with a leading '#'; this projection reports it without the '#',
// matching Channel()'s normalization elsewhere in this package.
type NamesReply struct {
	Target  string
	Channel string
	Names   []string
}

// NewNamesReply projects v as a NamesReply. It fails with
// WrongCommandError if v.Command() is not CommandRplNames.
func NewNamesReply(v View) (NamesReply, error) {
	var m NamesReply
	if v.Command() != CommandRplNames {
		return m, &WrongCommandError{Expected: CommandRplNames, Actual: v.Command()}
	}
	if p, ok := v.Param(0); ok {
		m.Target = string(p)
	}
	// Params are [target, "=", "#channel"] for Twitch's NAMES replies;
	// the channel is always the last parameter rather than a trailing.
	// Some servers glue a server-name segment onto the channel token, so
	// normalize by cutting at the '#' rather than only stripping a
	// leading one.
	if n := len(v.Params()); n > 0 {
		if ch, ok := v.Param(n - 1); ok {
			chs := string(ch)
			if i := strings.IndexByte(chs, '#'); i >= 0 {
				chs = chs[i+1:]
			}
			m.Channel = chs
		}
	}
	if text, ok := v.Text(); ok {
		m.Names = splitWords(string(text))
	}
	return m, nil
}
