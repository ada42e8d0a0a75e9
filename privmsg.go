package twirc

// Privmsg is a typed projection of a PRIVMSG line: a chat message sent to
// a channel (or, via WHISPER's sibling variant, see Whisper).
type Privmsg struct {
	Channel     string
	Text        string
	IsAction    bool
	SenderLogin string
	DisplayName string
	UserID      string
	RoomID      string
	Badges      []Badge
	BadgeInfo   []Badge
	Color       string
	Emotes      []Emote
	Bits        int64
	Mod         bool
	Subscriber  bool
	Turbo       bool
	FirstMsg    bool
	TmiSentTS   int64
	MessageID   string
	ClientNonce string
	Flags       string

	ReturningChatter bool

	// PinnedPaid fields are populated when the message was sent while
	// pinned via Hype Chat; PinnedCurrency is the ISO 4217 code and
	// PinnedAmount is in the currency's smallest unit (e.g. cents for
	// USD).
	HasPinnedPaid  bool
	PinnedAmount   int64
	PinnedCurrency string
	PinnedLevel    string

	// Reply metadata, present only when the message is a reply to
	// another message.
	IsReply            bool
	ReplyParentMsgID   string
	ReplyParentUserID  string
	ReplyParentLogin   string
	ReplyParentDisplay string
	ReplyParentBody    string
	ReplyThreadMsgID   string
	ReplyThreadLogin   string
}

// BitsUSD returns the bits cheer converted to US dollars, at Twitch's
// fixed rate of 1 bit = $0.01.
func (m Privmsg) BitsUSD() float64 { return float64(m.Bits) / 100 }

// IsVIP reports whether the sender's badges carry the vip badge.
func (m Privmsg) IsVIP() bool { return hasBadge(m.Badges, "vip") }

// IsStaff reports whether the sender's badges carry the staff badge.
func (m Privmsg) IsStaff() bool { return hasBadge(m.Badges, "staff") }

// IsPartner reports whether the sender's badges carry the partner badge.
func (m Privmsg) IsPartner() bool { return hasBadge(m.Badges, "partner") }

func hasBadge(badges []Badge, name string) bool {
	for _, b := range badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// NewPrivmsg projects v as a Privmsg. It fails with WrongCommandError if
// v.Command() is not CommandPrivmsg.
func NewPrivmsg(v View) (Privmsg, error) {
	var m Privmsg
	if v.Command() != CommandPrivmsg {
		return m, &WrongCommandError{Expected: CommandPrivmsg, Actual: v.Command()}
	}

	if ch, ok := v.Channel(); ok {
		m.Channel = ch
	}
	if text, ok := v.Text(); ok {
		m.Text, m.IsAction = unwrapAction(text)
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
	if val, ok := v.TagByID(TagRoomID); ok {
		m.RoomID = Unescape(val)
	}
	if val, ok := v.TagByID(TagBadges); ok {
		m.Badges = ParseBadges(val)
	}
	if val, ok := v.TagByID(TagBadgeInfo); ok {
		m.BadgeInfo = ParseBadges(val)
	}
	if val, ok := v.TagByID(TagColor); ok {
		m.Color = Unescape(val)
	}
	if val, ok := v.TagByID(TagEmotes); ok {
		m.Emotes = ParseEmotes(val)
	}
	if val, ok := v.TagByID(TagBits); ok {
		n, err := DecodeInt(val)
		if err != nil {
			return m, &BadTagValueError{Tag: "bits", RawValue: string(val), Reason: err}
		}
		m.Bits = n
	}
	if val, ok := v.TagByID(TagMod); ok {
		m.Mod = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagSubscriber); ok {
		m.Subscriber = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagTurbo); ok {
		m.Turbo = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagFirstMsg); ok {
		m.FirstMsg = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagTmiSentTs); ok {
		ts, err := DecodeTimestampMS(val)
		if err != nil {
			return m, &BadTagValueError{Tag: "tmi-sent-ts", RawValue: string(val), Reason: err}
		}
		m.TmiSentTS = ts
	}
	if val, ok := v.TagByID(TagIDKey); ok {
		m.MessageID = Unescape(val)
	}
	if val, ok := v.TagByID(TagClientNonce); ok {
		m.ClientNonce = Unescape(val)
	}
	if val, ok := v.TagByID(TagFlags); ok {
		m.Flags = Unescape(val)
	}
	if val, ok := v.TagByID(TagReturningChatter); ok {
		m.ReturningChatter = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagPinnedChatPaidAmount); ok {
		n, err := DecodeInt(val)
		if err != nil {
			return m, &BadTagValueError{Tag: "pinned-chat-paid-amount", RawValue: string(val), Reason: err}
		}
		m.HasPinnedPaid = true
		m.PinnedAmount = n
	}
	if val, ok := v.TagByID(TagPinnedChatPaidCurrency); ok {
		m.PinnedCurrency = Unescape(val)
	}
	if val, ok := v.TagByID(TagPinnedChatPaidLevel); ok {
		m.PinnedLevel = Unescape(val)
	}

	if val, ok := v.TagByID(TagReplyParentMsgID); ok {
		m.IsReply = true
		m.ReplyParentMsgID = Unescape(val)
	}
	if val, ok := v.TagByID(TagReplyParentUserID); ok {
		m.ReplyParentUserID = Unescape(val)
	}
	if val, ok := v.TagByID(TagReplyParentUserLogin); ok {
		m.ReplyParentLogin = Unescape(val)
	}
	if val, ok := v.TagByID(TagReplyParentDisplayName); ok {
		m.ReplyParentDisplay = Unescape(val)
	}
	if val, ok := v.TagByID(TagReplyParentMsgBody); ok {
		m.ReplyParentBody = Unescape(val)
	}
	if val, ok := v.TagByID(TagReplyThreadParentMsgID); ok {
		m.ReplyThreadMsgID = Unescape(val)
	}
	if val, ok := v.TagByID(TagReplyThreadParentUserLogin); ok {
		m.ReplyThreadLogin = Unescape(val)
	}

	// Twitch has attached a message id to every PRIVMSG for years; its
	// absence means the line is not something downstream deduplication or
	// deletion handling can work with.
	if m.MessageID == "" {
		return m, &MissingRequiredError{Field: "id"}
	}
	return m, nil
}
