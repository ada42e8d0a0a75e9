package twirc

// UserState is a typed projection of a USERSTATE line: the bot's own
// state in the channel it just spoke in.
type UserState struct {
	Channel     string
	DisplayName string
	Badges      []Badge
	BadgeInfo   []Badge
	Color       string
	EmoteSets   string
	Mod         bool
	Subscriber  bool
	VIP         bool
	Turbo       bool
}

// NewUserState projects v as a UserState. It fails with
// WrongCommandError if v.Command() is not CommandUserState.
func NewUserState(v View) (UserState, error) {
	var m UserState
	if v.Command() != CommandUserState {
		return m, &WrongCommandError{Expected: CommandUserState, Actual: v.Command()}
	}
	if ch, ok := v.Channel(); ok {
		m.Channel = ch
	}
	populateUserStateTags(v, &m.DisplayName, &m.Badges, &m.BadgeInfo, &m.Color, &m.EmoteSets, &m.Mod, &m.Subscriber, &m.VIP, &m.Turbo)
	return m, nil
}

// GlobalUserState is a typed projection of a GLOBALUSERSTATE line: sent
// once after successful capability-negotiated login.
type GlobalUserState struct {
	DisplayName string
	UserID      string
	Badges      []Badge
	BadgeInfo   []Badge
	Color       string
	EmoteSets   string
	VIP         bool
	Turbo       bool
}

// NewGlobalUserState projects v as a GlobalUserState. It fails with
// WrongCommandError if v.Command() is not CommandGlobalUserState.
func NewGlobalUserState(v View) (GlobalUserState, error) {
	var m GlobalUserState
	if v.Command() != CommandGlobalUserState {
		return m, &WrongCommandError{Expected: CommandGlobalUserState, Actual: v.Command()}
	}
	var mod, sub bool
	populateUserStateTags(v, &m.DisplayName, &m.Badges, &m.BadgeInfo, &m.Color, &m.EmoteSets, &mod, &sub, &m.VIP, &m.Turbo)
	if val, ok := v.TagByID(TagUserID); ok {
		m.UserID = Unescape(val)
	}
	return m, nil
}

func populateUserStateTags(v View, displayName *string, badges, badgeInfo *[]Badge, color, emoteSets *string, mod, subscriber, vip, turbo *bool) {
	if val, ok := v.TagByID(TagDisplayName); ok {
		*displayName = Unescape(val)
	}
	if val, ok := v.TagByID(TagBadges); ok {
		*badges = ParseBadges(val)
	}
	if val, ok := v.TagByID(TagBadgeInfo); ok {
		*badgeInfo = ParseBadges(val)
	}
	if val, ok := v.TagByID(TagColor); ok {
		*color = Unescape(val)
	}
	if val, ok := v.TagByID(TagEmoteSets); ok {
		*emoteSets = Unescape(val)
	}
	if val, ok := v.TagByID(TagMod); ok {
		*mod = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagSubscriber); ok {
		*subscriber = DecodeBool(val)
	}
	// When the vip tag is present its value decides the flag; the vip
	// badge is the fallback for servers that omit the tag.
	if val, ok := v.TagByID(TagVIP); ok {
		*vip = DecodeBool(val)
	} else {
		*vip = hasBadge(*badges, "vip")
	}
	if val, ok := v.TagByID(TagTurbo); ok {
		*turbo = DecodeBool(val)
	}
}
