package twirc

// RoomState is a typed projection of a ROOMSTATE line. Twitch sends this
// as a sparse delta: on join it carries every field, but later updates
// (e.g. a mod toggling slow mode) carry only the tags that changed.
// Absent fields are reported via the Has* flags rather than a zero
// value, since zero is a meaningful value for some of them (e.g.
// FollowersOnly == 0 means "no wait, everyone can follow-chat").
type RoomState struct {
	Channel string
	RoomID  string

	HasEmoteOnly bool
	EmoteOnly    bool

	HasR9K bool
	R9K    bool

	// HasFollowersOnly reports whether followers-only was present.
	// FollowersOnly holds the wait time in minutes; -1 means the mode is
	// disabled, 0 means any follower may chat immediately.
	HasFollowersOnly bool
	FollowersOnly    int64

	HasSlow bool
	// Slow holds the cooldown in seconds; 0 means disabled.
	Slow int64

	HasSubsOnly bool
	SubsOnly    bool
}

// NewRoomState projects v as a RoomState. It fails with
// WrongCommandError if v.Command() is not CommandRoomState.
func NewRoomState(v View) (RoomState, error) {
	var m RoomState
	if v.Command() != CommandRoomState {
		return m, &WrongCommandError{Expected: CommandRoomState, Actual: v.Command()}
	}

	if ch, ok := v.Channel(); ok {
		m.Channel = ch
	}
	if val, ok := v.TagByID(TagRoomID); ok {
		m.RoomID = Unescape(val)
	}
	if val, ok := v.TagByID(TagEmoteOnly); ok {
		m.HasEmoteOnly = true
		m.EmoteOnly = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagR9K); ok {
		m.HasR9K = true
		m.R9K = DecodeBool(val)
	}
	if val, ok := v.TagByID(TagFollowersOnly); ok {
		n, err := DecodeInt(val)
		if err != nil {
			return m, &BadTagValueError{Tag: "followers-only", RawValue: string(val), Reason: err}
		}
		m.HasFollowersOnly = true
		m.FollowersOnly = n
	}
	if val, ok := v.TagByID(TagSlow); ok {
		n, err := DecodeInt(val)
		if err != nil {
			return m, &BadTagValueError{Tag: "slow", RawValue: string(val), Reason: err}
		}
		m.HasSlow = true
		m.Slow = n
	}
	if val, ok := v.TagByID(TagSubsOnly); ok {
		m.HasSubsOnly = true
		m.SubsOnly = DecodeBool(val)
	}

	return m, nil
}
