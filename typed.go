package twirc

import "errors"

// ErrNoProjection is returned by AsTyped for commands this package
// classifies but gives no typed structure to (NICK, PASS, MODE, and
// anything that classified as CommandUnknown). The generic View is the
// full surface for those lines.
var ErrNoProjection = errors.New("twirc: command has no typed projection")

// AsTyped projects the view into the typed variant matching its
// command. The concrete type of the returned value is one of the
// message structs in this package (Privmsg, UserNotice, ClearChat,
// ...); callers dispatch with a type switch. Unlike the per-variant
// constructors, AsTyped never returns WrongCommandError -- the variant
// is chosen by the command itself -- but it propagates their
// MissingRequiredError/BadTagValueError failures unchanged, and
// returns ErrNoProjection for commands outside the typed set.
func (v View) AsTyped() (any, error) {
	switch v.Command() {
	case CommandPrivmsg:
		return NewPrivmsg(v)
	case CommandWhisper:
		return NewWhisper(v)
	case CommandClearChat:
		return NewClearChat(v)
	case CommandClearMsg:
		return NewClearMsg(v)
	case CommandRoomState:
		return NewRoomState(v)
	case CommandUserState:
		return NewUserState(v)
	case CommandGlobalUserState:
		return NewGlobalUserState(v)
	case CommandUserNotice:
		return NewUserNotice(v)
	case CommandNotice:
		return NewNotice(v)
	case CommandPing:
		return NewPing(v)
	case CommandPong:
		return NewPong(v)
	case CommandJoin:
		return NewJoin(v)
	case CommandPart:
		return NewPart(v)
	case CommandReconnect:
		return NewReconnect(v)
	case CommandCapability:
		return NewCapability(v)
	case CommandRplNames:
		return NewNamesReply(v)
	case CommandRplWelcome, CommandRplYourHost, CommandRplCreated, CommandRplMyInfo,
		CommandRplMotd, CommandRplMotdStart, CommandRplEndOfMotd, CommandRplEndOfNames:
		return NewNumeric(v)
	default:
		return nil, ErrNoProjection
	}
}
