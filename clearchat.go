package twirc

// ClearChatAction is the closed set of actions a CLEARCHAT line can
// represent, matching the three shapes Twitch actually sends: a full
// channel clear (no target user), a permanent ban, and a timeout (which
// carries a duration).
type ClearChatAction uint8

const (
	ClearChatClear ClearChatAction = iota
	ClearChatBan
	ClearChatTimeout
)

func (a ClearChatAction) String() string {
	switch a {
	case ClearChatBan:
		return "ban"
	case ClearChatTimeout:
		return "timeout"
	default:
		return "clear"
	}
}

// ClearChat is a typed projection of a CLEARCHAT line.
type ClearChat struct {
	Channel      string
	Action       ClearChatAction
	TargetUserID string
	TargetLogin  string
	// BanDuration is only meaningful when Action == ClearChatTimeout, in
	// seconds.
	BanDuration int64
	RoomID      string
	TmiSentTS   int64
}

// NewClearChat projects v as a ClearChat. It fails with
// WrongCommandError if v.Command() is not CommandClearChat.
func NewClearChat(v View) (ClearChat, error) {
	var m ClearChat
	if v.Command() != CommandClearChat {
		return m, &WrongCommandError{Expected: CommandClearChat, Actual: v.Command()}
	}

	if ch, ok := v.Channel(); ok {
		m.Channel = ch
	}
	if login, ok := v.Trailing(); ok {
		m.TargetLogin = string(login)
	}
	if val, ok := v.TagByID(TagTargetUserID); ok {
		m.TargetUserID = Unescape(val)
	}
	if val, ok := v.TagByID(TagRoomID); ok {
		m.RoomID = Unescape(val)
	}
	if val, ok := v.TagByID(TagTmiSentTs); ok {
		ts, err := DecodeTimestampMS(val)
		if err != nil {
			return m, &BadTagValueError{Tag: "tmi-sent-ts", RawValue: string(val), Reason: err}
		}
		m.TmiSentTS = ts
	}

	switch {
	case m.TargetLogin == "":
		m.Action = ClearChatClear
	default:
		if val, ok := v.TagByID(TagBanDuration); ok {
			n, err := DecodeInt(val)
			if err != nil {
				return m, &BadTagValueError{Tag: "ban-duration", RawValue: string(val), Reason: err}
			}
			if n == 0 {
				// A zero duration is a permanent ban, same as no duration.
				m.Action = ClearChatBan
			} else {
				m.Action = ClearChatTimeout
				m.BanDuration = n
			}
		} else {
			m.Action = ClearChatBan
		}
	}

	return m, nil
}
