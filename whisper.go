package twirc

// Whisper is a typed projection of a WHISPER line: a direct message
// between two users, routed outside any channel.
type Whisper struct {
	RecipientLogin string
	Text           string
	SenderLogin    string
	DisplayName    string
	UserID         string
	ThreadID       string
	Badges         []Badge
	Color          string
	Emotes         []Emote
	Turbo          bool
	MessageID      string
}

// NewWhisper projects v as a Whisper. It fails with WrongCommandError if
// v.Command() is not CommandWhisper.
func NewWhisper(v View) (Whisper, error) {
	var m Whisper
	if v.Command() != CommandWhisper {
		return m, &WrongCommandError{Expected: CommandWhisper, Actual: v.Command()}
	}

	if p, ok := v.Param(0); ok {
		m.RecipientLogin = string(p)
	}
	if text, ok := v.Text(); ok {
		m.Text = string(text)
	}
	if nick, ok := v.Nick(); ok {
		m.SenderLogin = string(nick)
	}
	if val, ok := v.TagByID(TagDisplayName); ok {
		m.DisplayName = Unescape(val)
	}
	if val, ok := v.TagByID(TagUserID); ok {
		m.UserID = Unescape(val)
	}
	if val, ok := v.TagByID(TagThreadID); ok {
		m.ThreadID = Unescape(val)
	}
	if val, ok := v.TagByID(TagBadges); ok {
		m.Badges = ParseBadges(val)
	}
	if val, ok := v.TagByID(TagColor); ok {
		m.Color = Unescape(val)
	}
	if val, ok := v.TagByID(TagEmotes); ok {
		m.Emotes = ParseEmotes(val)
	}
	if val, ok := v.TagByID(TagTurbo); ok {
		m.Turbo = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagIDKey); ok {
		m.MessageID = Unescape(val)
	}

	if m.RecipientLogin == "" {
		return m, &MissingRequiredError{Field: "recipient"}
	}
	return m, nil
}
