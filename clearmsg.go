package twirc

// ClearMsg is a typed projection of a CLEARMSG line: one chat message was
// deleted by a moderator.
type ClearMsg struct {
	Channel     string
	Text        string
	Login       string
	TargetMsgID string
	RoomID      string
	TmiSentTS   int64
}

// NewClearMsg projects v as a ClearMsg. It fails with WrongCommandError
// if v.Command() is not CommandClearMsg.
func NewClearMsg(v View) (ClearMsg, error) {
	var m ClearMsg
	if v.Command() != CommandClearMsg {
		return m, &WrongCommandError{Expected: CommandClearMsg, Actual: v.Command()}
	}

	if ch, ok := v.Channel(); ok {
		m.Channel = ch
	}
	if text, ok := v.Text(); ok {
		m.Text = string(text)
	}
	if val, ok := v.TagByID(TagLogin); ok {
		m.Login = Unescape(val)
	}
	if val, ok := v.TagByID(TagTargetMsgID); ok {
		m.TargetMsgID = Unescape(val)
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

	if m.TargetMsgID == "" {
		return m, &MissingRequiredError{Field: "target-msg-id"}
	}
	return m, nil
}
