package twirc

// UserNoticeKind classifies the msg-id tag a USERNOTICE line carries.
// Kind-specific fields on UserNotice are only populated for the kind
// they belong to; check Kind before reading them.
type UserNoticeKind uint8

const (
	UserNoticeOther UserNoticeKind = iota
	UserNoticeSub
	UserNoticeResub
	UserNoticeSubgift
	UserNoticeSubMysteryGift
	UserNoticeGiftPaidUpgrade
	UserNoticeAnonGiftPaidUpgrade
	UserNoticePrimePaidUpgrade
	UserNoticeRaid
	UserNoticeUnraid
	UserNoticeBitsBadgeTier
	UserNoticeAnnouncement
	UserNoticeStandardPayForward
)

func classifyUserNoticeKind(msgID string) UserNoticeKind {
	switch msgID {
	case "sub":
		return UserNoticeSub
	case "resub":
		return UserNoticeResub
	case "subgift":
		return UserNoticeSubgift
	case "submysterygift":
		return UserNoticeSubMysteryGift
	case "giftpaidupgrade":
		return UserNoticeGiftPaidUpgrade
	case "anongiftpaidupgrade":
		return UserNoticeAnonGiftPaidUpgrade
	case "primepaidupgrade":
		return UserNoticePrimePaidUpgrade
	case "raid":
		return UserNoticeRaid
	case "unraid":
		return UserNoticeUnraid
	case "bitsbadgetier":
		return UserNoticeBitsBadgeTier
	case "announcement":
		return UserNoticeAnnouncement
	case "standardpayforward":
		return UserNoticeStandardPayForward
	default:
		return UserNoticeOther
	}
}

// AnnouncementColor is the closed set of highlight colors an
// announcement USERNOTICE can carry. An announcement with no
// msg-param-color tag, or with a color name outside this set, reports
// AnnouncementPrimary.
type AnnouncementColor uint8

const (
	AnnouncementPrimary AnnouncementColor = iota
	AnnouncementBlue
	AnnouncementGreen
	AnnouncementOrange
	AnnouncementPurple
)

// Twitch sends the color names uppercase ("PRIMARY", "PURPLE", ...).
func parseAnnouncementColor(s string) AnnouncementColor {
	switch s {
	case "BLUE":
		return AnnouncementBlue
	case "GREEN":
		return AnnouncementGreen
	case "ORANGE":
		return AnnouncementOrange
	case "PURPLE":
		return AnnouncementPurple
	default:
		return AnnouncementPrimary
	}
}

// UserNotice is a typed projection of a USERNOTICE line: one of
// Twitch's celebratory or administrative channel events (subscriptions,
// raids, announcements, bit badge unlocks, and the like). Kind
// identifies which event this is; only the fields relevant to that
// Kind are populated.
type UserNotice struct {
	Channel     string
	SystemMsg   string
	Text        string
	HasText     bool
	Login       string
	DisplayName string
	RoomID      string
	UserID      string
	Badges      []Badge
	BadgeInfo   []Badge
	Color       string
	Emotes      []Emote
	MsgID       string
	Kind        UserNoticeKind

	CumulativeMonths  int64
	StreakMonths      int64
	ShouldShareStreak bool
	SubPlan           string
	SubPlanName       string

	RecipientID          string
	RecipientLogin       string
	RecipientDisplayName string
	GiftMonths           int64
	SenderCount          int64
	MassGiftCount        int64

	PriorGifterAnonymous   bool
	PriorGifterDisplayName string
	PriorGifterID          string
	PriorGifterUserName    string

	MultimonthDuration int64
	MultimonthTenure   int64
	WasGifted          bool
	AnonGift           bool

	ViewerCount int64 // raid

	Threshold int64 // bitsbadgetier

	AnnouncementColor AnnouncementColor

	PromoName      string
	PromoGiftTotal int64
}

// NewUserNotice projects v as a UserNotice. It fails with
// WrongCommandError if v.Command() is not CommandUserNotice.
func NewUserNotice(v View) (UserNotice, error) {
	var m UserNotice
	if v.Command() != CommandUserNotice {
		return m, &WrongCommandError{Expected: CommandUserNotice, Actual: v.Command()}
	}

	if ch, ok := v.Channel(); ok {
		m.Channel = ch
	}
	if text, ok := v.Text(); ok {
		m.Text = string(text)
		m.HasText = true
	}
	if nick, ok := v.Nick(); ok {
		m.Login = string(nick)
	}
	if val, ok := v.TagByID(TagSystemMsg); ok {
		m.SystemMsg = Unescape(val)
	}
	if val, ok := v.TagByID(TagDisplayName); ok {
		m.DisplayName = Unescape(val)
	}
	if val, ok := v.TagByID(TagRoomID); ok {
		m.RoomID = Unescape(val)
	}
	if val, ok := v.TagByID(TagUserID); ok {
		m.UserID = Unescape(val)
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

	var msgID string
	if val, ok := v.TagByID(TagMsgID); ok {
		msgID = Unescape(val)
		m.MsgID = msgID
		m.Kind = classifyUserNoticeKind(msgID)
	}

	if err := populateUserNoticeKindFields(v, &m); err != nil {
		return m, err
	}

	return m, nil
}

func populateUserNoticeKindFields(v View, m *UserNotice) error {
	optInt := func(id TagID, tag string) (int64, bool, error) {
		val, ok := v.TagByID(id)
		if !ok {
			return 0, false, nil
		}
		n, err := DecodeInt(val)
		if err != nil {
			return 0, true, &BadTagValueError{Tag: tag, RawValue: string(val), Reason: err}
		}
		return n, true, nil
	}

	switch m.Kind {
	case UserNoticeSub, UserNoticeResub:
		if n, _, err := optInt(TagMsgParamCumulativeMonths, "msg-param-cumulative-months"); err != nil {
			return err
		} else {
			m.CumulativeMonths = n
		}
		if n, _, err := optInt(TagMsgParamStreakMonths, "msg-param-streak-months"); err != nil {
			return err
		} else {
			m.StreakMonths = n
		}
		if val, ok := v.TagByID(TagMsgParamShouldShareStreak); ok {
			m.ShouldShareStreak = DecodeBool(val)
		}
		if val, ok := v.TagByID(TagMsgParamSubPlan); ok {
			m.SubPlan = Unescape(val)
		}
		if val, ok := v.TagByID(TagMsgParamSubPlanName); ok {
			m.SubPlanName = Unescape(val)
		}

	case UserNoticeSubgift, UserNoticeSubMysteryGift:
		if val, ok := v.TagByID(TagMsgParamRecipientID); ok {
			m.RecipientID = Unescape(val)
		}
		if val, ok := v.TagByID(TagMsgParamRecipientUserName); ok {
			m.RecipientLogin = Unescape(val)
		}
		if val, ok := v.TagByID(TagMsgParamRecipientDisplayName); ok {
			m.RecipientDisplayName = Unescape(val)
		}
		if n, _, err := optInt(TagMsgParamGiftMonths, "msg-param-gift-months"); err != nil {
			return err
		} else {
			m.GiftMonths = n
		}
		if n, _, err := optInt(TagMsgParamSenderCount, "msg-param-sender-count"); err != nil {
			return err
		} else {
			m.SenderCount = n
		}
		if n, _, err := optInt(TagMsgParamMassGiftCount, "msg-param-mass-gift-count"); err != nil {
			return err
		} else {
			m.MassGiftCount = n
		}
		if val, ok := v.TagByID(TagMsgParamSubPlan); ok {
			m.SubPlan = Unescape(val)
		}

	case UserNoticeGiftPaidUpgrade, UserNoticeAnonGiftPaidUpgrade:
		if val, ok := v.TagByID(TagMsgParamSenderLogin); ok {
			m.RecipientLogin = Unescape(val) // gifter login, reused field
		}
		if val, ok := v.TagByID(TagMsgParamSenderName); ok {
			m.RecipientDisplayName = Unescape(val) // gifter display name
		}
		if val, ok := v.TagByID(TagMsgParamPriorGifterAnonymous); ok {
			m.PriorGifterAnonymous = DecodeBool(val)
		}
		if val, ok := v.TagByID(TagMsgParamPriorGifterDisplayName); ok {
			m.PriorGifterDisplayName = Unescape(val)
		}
		if val, ok := v.TagByID(TagMsgParamPriorGifterID); ok {
			m.PriorGifterID = Unescape(val)
		}
		if val, ok := v.TagByID(TagMsgParamPriorGifterUserName); ok {
			m.PriorGifterUserName = Unescape(val)
		}

	case UserNoticeRaid:
		if val, ok := v.TagByID(TagMsgParamDisplayName); ok {
			m.RecipientDisplayName = Unescape(val) // raiding channel's display name
		}
		if val, ok := v.TagByID(TagMsgParamLogin); ok {
			m.RecipientLogin = Unescape(val)
		}
		if n, _, err := optInt(TagMsgParamViewerCount, "msg-param-viewerCount"); err != nil {
			return err
		} else {
			m.ViewerCount = n
		}

	case UserNoticeBitsBadgeTier:
		if n, _, err := optInt(TagMsgParamThreshold, "msg-param-threshold"); err != nil {
			return err
		} else {
			m.Threshold = n
		}

	case UserNoticeAnnouncement:
		if val, ok := v.TagByID(TagMsgParamColor); ok {
			m.AnnouncementColor = parseAnnouncementColor(Unescape(val))
		} else {
			m.AnnouncementColor = AnnouncementPrimary
		}

	case UserNoticeStandardPayForward:
		if n, _, err := optInt(TagMsgParamMultimonthDuration, "msg-param-multimonth-duration"); err != nil {
			return err
		} else {
			m.MultimonthDuration = n
		}
		if n, _, err := optInt(TagMsgParamMultimonthTenure, "msg-param-multimonth-tenure"); err != nil {
			return err
		} else {
			m.MultimonthTenure = n
		}
		if val, ok := v.TagByID(TagMsgParamWasGifted); ok {
			m.WasGifted = DecodeBool(val)
		}
		if val, ok := v.TagByID(TagMsgParamAnonGift); ok {
			m.AnonGift = DecodeBool(val)
		}
		if val, ok := v.TagByID(TagMsgParamPriorGifterDisplayName); ok {
			m.PriorGifterDisplayName = Unescape(val)
		}
	}

	if val, ok := v.TagByID(TagMsgParamPromoName); ok {
		m.PromoName = Unescape(val)
	}
	if n, _, err := optInt(TagMsgParamPromoGiftTotal, "msg-param-promo-gift-total"); err != nil {
		return err
	} else if n != 0 {
		m.PromoGiftTotal = n
	}

	return nil
}
