package twirc

// NoticeKind classifies the msg-id tag Twitch attaches to most NOTICE
// lines. Values not in this closed set classify as NoticeOther; the raw
// string remains available via Notice.MsgID.
type NoticeKind uint8

const (
	NoticeOther NoticeKind = iota

	// Mode toggles, sent to the whole channel when a moderator flips the
	// corresponding ROOMSTATE setting.
	NoticeSubsOn
	NoticeSubsOff
	NoticeEmoteOnlyOn
	NoticeEmoteOnlyOff
	NoticeSlowOn
	NoticeSlowOff
	NoticeR9KOn
	NoticeR9KOff
	NoticeFollowersOn
	NoticeFollowersOnZero
	NoticeFollowersOff

	// Rejections of the client's own message, sent only to the sender.
	// Distinct from the toggles above: NoticeMsgSubsOnly means "your
	// message was dropped because the channel is sub-only", not "sub-only
	// was switched on".
	NoticeMsgChannelSuspended
	NoticeMsgBanned
	NoticeMsgTimedOut
	NoticeMsgDuplicate
	NoticeMsgRateLimit
	NoticeMsgSubsOnly
	NoticeMsgFollowersOnly
	NoticeMsgEmoteOnly
	NoticeMsgSlowMode
	NoticeMsgR9K

	// Pre-join failures. NoticeBadAuth lines carry no msg-id tag at all;
	// NewNotice recognizes them by shape instead.
	NoticeBadAuth
	NoticeUnrecognizedCmd
	NoticeNoPermission
)

func classifyNoticeKind(msgID string) NoticeKind {
	switch msgID {
	case "subs_on":
		return NoticeSubsOn
	case "subs_off":
		return NoticeSubsOff
	case "emote_only_on":
		return NoticeEmoteOnlyOn
	case "emote_only_off":
		return NoticeEmoteOnlyOff
	case "slow_on":
		return NoticeSlowOn
	case "slow_off":
		return NoticeSlowOff
	case "r9k_on":
		return NoticeR9KOn
	case "r9k_off":
		return NoticeR9KOff
	case "followers_on":
		return NoticeFollowersOn
	case "followers_on_zero":
		return NoticeFollowersOnZero
	case "followers_off":
		return NoticeFollowersOff
	case "msg_channel_suspended":
		return NoticeMsgChannelSuspended
	case "msg_banned":
		return NoticeMsgBanned
	case "msg_timedout":
		return NoticeMsgTimedOut
	case "msg_duplicate":
		return NoticeMsgDuplicate
	case "msg_ratelimit":
		return NoticeMsgRateLimit
	case "msg_subsonly":
		return NoticeMsgSubsOnly
	case "msg_followersonly":
		return NoticeMsgFollowersOnly
	case "msg_emoteonly":
		return NoticeMsgEmoteOnly
	case "msg_slowmode":
		return NoticeMsgSlowMode
	case "msg_r9k":
		return NoticeMsgR9K
	case "unrecognized_cmd":
		return NoticeUnrecognizedCmd
	case "no_permission":
		return NoticeNoPermission
	default:
		return NoticeOther
	}
}

// Notice is a typed projection of a NOTICE line: a server-to-client
// informational or error message, optionally scoped to a channel.
type Notice struct {
	Channel string
	Text    string
	MsgID   string
	Kind    NoticeKind
}

// NewNotice projects v as a Notice. It fails with WrongCommandError if
// v.Command() is not CommandNotice.
func NewNotice(v View) (Notice, error) {
	var m Notice
	if v.Command() != CommandNotice {
		return m, &WrongCommandError{Expected: CommandNotice, Actual: v.Command()}
	}
	if ch, ok := v.Channel(); ok && ch != "*" {
		m.Channel = ch
	}
	if text, ok := v.Text(); ok {
		m.Text = string(text)
	}
	if val, ok := v.TagByID(TagMsgID); ok {
		m.MsgID = Unescape(val)
		m.Kind = classifyNoticeKind(m.MsgID)
	} else if m.Channel == "" {
		// Authentication failures arrive before any JOIN, addressed to the
		// '*' pseudo-target with no msg-id tag.
		m.Kind = NoticeBadAuth
	}
	return m, nil
}

// Ping is a typed projection of a PING line. The server sends this with
// a token in the trailing that PONG must echo back verbatim.
type Ping struct {
	Token string
}

// NewPing projects v as a Ping. It fails with WrongCommandError if
// v.Command() is not CommandPing.
func NewPing(v View) (Ping, error) {
	var m Ping
	if v.Command() != CommandPing {
		return m, &WrongCommandError{Expected: CommandPing, Actual: v.Command()}
	}
	if text, ok := v.Text(); ok {
		m.Token = string(text)
	}
	return m, nil
}

// Pong is a typed projection of a PONG line.
type Pong struct {
	Token string
}

// NewPong projects v as a Pong. It fails with WrongCommandError if
// v.Command() is not CommandPong.
func NewPong(v View) (Pong, error) {
	var m Pong
	if v.Command() != CommandPong {
		return m, &WrongCommandError{Expected: CommandPong, Actual: v.Command()}
	}
	if text, ok := v.Text(); ok {
		m.Token = string(text)
	}
	return m, nil
}

// Join is a typed projection of a JOIN line.
type Join struct {
	Channel string
	Login   string
}

// NewJoin projects v as a Join. It fails with WrongCommandError if
// v.Command() is not CommandJoin.
func NewJoin(v View) (Join, error) {
	var m Join
	if v.Command() != CommandJoin {
		return m, &WrongCommandError{Expected: CommandJoin, Actual: v.Command()}
	}
	if ch, ok := v.Channel(); ok {
		m.Channel = ch
	}
	if nick, ok := v.Nick(); ok {
		m.Login = string(nick)
	}
	return m, nil
}

// Part is a typed projection of a PART line.
type Part struct {
	Channel string
	Login   string
}

// NewPart projects v as a Part. It fails with WrongCommandError if
// v.Command() is not CommandPart.
func NewPart(v View) (Part, error) {
	var m Part
	if v.Command() != CommandPart {
		return m, &WrongCommandError{Expected: CommandPart, Actual: v.Command()}
	}
	if ch, ok := v.Channel(); ok {
		m.Channel = ch
	}
	if nick, ok := v.Nick(); ok {
		m.Login = string(nick)
	}
	return m, nil
}

// Reconnect is a typed projection of a RECONNECT line: the server is
// about to restart its end of the connection and clients should
// reconnect, applying their own backoff.
type Reconnect struct{}

// NewReconnect projects v as a Reconnect. It fails with
// WrongCommandError if v.Command() is not CommandReconnect.
func NewReconnect(v View) (Reconnect, error) {
	if v.Command() != CommandReconnect {
		return Reconnect{}, &WrongCommandError{Expected: CommandReconnect, Actual: v.Command()}
	}
	return Reconnect{}, nil
}

// Capability is a typed projection of a CAP line (capability
// negotiation acknowledgement or rejection).
type Capability struct {
	Subcommand   string
	Capabilities []string
}

// NewCapability projects v as a Capability. It fails with
// WrongCommandError if v.Command() is not CommandCapability.
func NewCapability(v View) (Capability, error) {
	var m Capability
	if v.Command() != CommandCapability {
		return m, &WrongCommandError{Expected: CommandCapability, Actual: v.Command()}
	}
	if p, ok := v.Param(1); ok {
		m.Subcommand = string(p)
	}
	// Trailing, not Text: on a CAP line with no capability list, Text's
	// last-parameter fallback would hand back the subcommand itself.
	if caps, ok := v.Trailing(); ok {
		m.Capabilities = splitWords(string(caps))
	}
	return m, nil
}

func splitWords(s string) []string {
	var words []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ' ' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, s[start:i])
			start = -1
		}
	}
	return words
}
