package twirc

// TagID is the closed set of tag keys this package gives semantic
// meaning to. Tags outside this set remain visible through View.Tag but
// are never consulted by the typed projection layer.
type TagID uint8

const (
	TagUnknown TagID = iota
	TagBadges
	TagBadgeInfo
	TagBanDuration
	TagBanReason
	TagBits
	TagClientNonce
	TagColor
	TagCustomRewardID
	TagDisplayName
	TagEmotes
	TagEmoteOnly
	TagEmoteSets
	TagFirstMsg
	TagFlags
	TagFollowersOnly
	TagIDKey
	TagLogin
	TagMessageID
	TagMod
	TagMsgID
	TagMsgParamColor
	TagMsgParamCumulativeMonths
	TagMsgParamDisplayName
	TagMsgParamGiftMonths
	TagMsgParamLogin
	TagMsgParamMassGiftCount
	TagMsgParamMonths
	TagMsgParamPromoGiftTotal
	TagMsgParamPromoName
	TagMsgParamRecipientDisplayName
	TagMsgParamRecipientID
	TagMsgParamRecipientUserName
	TagMsgParamSenderCount
	TagMsgParamSenderLogin
	TagMsgParamSenderName
	TagMsgParamShouldShareStreak
	TagMsgParamStreakMonths
	TagMsgParamSubPlan
	TagMsgParamSubPlanName
	TagMsgParamThreshold
	TagMsgParamViewerCount
	TagPinnedChatPaidAmount
	TagPinnedChatPaidCurrency
	TagPinnedChatPaidLevel
	TagR9K
	TagReplyParentDisplayName
	TagReplyParentMsgBody
	TagReplyParentMsgID
	TagReplyParentUserID
	TagReplyParentUserLogin
	TagReplyThreadParentMsgID
	TagReplyThreadParentUserLogin
	TagReturningChatter
	TagRituals
	TagRoomID
	TagSlow
	TagSubscriber
	TagSubsOnly
	TagSystemMsg
	TagTargetMsgID
	TagTargetUserID
	TagThreadID
	TagTmiSentTs
	TagTurbo
	TagUserID
	TagUserType
	TagVIP
	TagMsgParamPriorGifterAnonymous
	TagMsgParamPriorGifterDisplayName
	TagMsgParamPriorGifterID
	TagMsgParamPriorGifterUserName
	TagMsgParamMultimonthDuration
	TagMsgParamMultimonthTenure
	TagMsgParamWasGifted
	TagMsgParamAnonGift
	TagMsgParamFunString
	TagMsgParamOriginID
	TagMsgParamProfileImageURL
	TagSentTs
	TagHistorical
)

// LookupTag resolves a raw tag key (bytes, not unescaped -- keys never
// contain escapes) to its TagID. Unrecognized keys report TagUnknown;
// the caller still has the raw bytes via View.Tag.
func LookupTag(key []byte) TagID {
	// pinned-chat-paid-* is a prefix family, not a fixed name; check it
	// before the exact-match switch below.
	if hasPrefix(key, "pinned-chat-paid-") {
		switch string(key[len("pinned-chat-paid-"):]) {
		case "amount":
			return TagPinnedChatPaidAmount
		case "currency":
			return TagPinnedChatPaidCurrency
		case "level":
			return TagPinnedChatPaidLevel
		default:
			return TagUnknown
		}
	}

	switch string(key) {
	case "badges":
		return TagBadges
	case "badge-info":
		return TagBadgeInfo
	case "ban-duration":
		return TagBanDuration
	case "ban-reason":
		return TagBanReason
	case "bits":
		return TagBits
	case "client-nonce":
		return TagClientNonce
	case "color":
		return TagColor
	case "custom-reward-id":
		return TagCustomRewardID
	case "display-name":
		return TagDisplayName
	case "emotes":
		return TagEmotes
	case "emote-only":
		return TagEmoteOnly
	case "emote-sets":
		return TagEmoteSets
	case "first-msg":
		return TagFirstMsg
	case "flags":
		return TagFlags
	case "followers-only":
		return TagFollowersOnly
	case "id":
		return TagIDKey
	case "login":
		return TagLogin
	case "message-id":
		return TagMessageID
	case "mod":
		return TagMod
	case "msg-id":
		return TagMsgID
	case "msg-param-color":
		return TagMsgParamColor
	case "msg-param-cumulative-months":
		return TagMsgParamCumulativeMonths
	case "msg-param-displayName":
		return TagMsgParamDisplayName
	case "msg-param-gift-months":
		return TagMsgParamGiftMonths
	case "msg-param-login":
		return TagMsgParamLogin
	case "msg-param-mass-gift-count":
		return TagMsgParamMassGiftCount
	case "msg-param-months":
		return TagMsgParamMonths
	case "msg-param-promo-gift-total":
		return TagMsgParamPromoGiftTotal
	case "msg-param-promo-name":
		return TagMsgParamPromoName
	case "msg-param-recipient-display-name":
		return TagMsgParamRecipientDisplayName
	case "msg-param-recipient-id":
		return TagMsgParamRecipientID
	case "msg-param-recipient-user-name":
		return TagMsgParamRecipientUserName
	case "msg-param-sender-count":
		return TagMsgParamSenderCount
	case "msg-param-sender-login":
		return TagMsgParamSenderLogin
	case "msg-param-sender-name":
		return TagMsgParamSenderName
	case "msg-param-should-share-streak":
		return TagMsgParamShouldShareStreak
	case "msg-param-streak-months":
		return TagMsgParamStreakMonths
	case "msg-param-sub-plan":
		return TagMsgParamSubPlan
	case "msg-param-sub-plan-name":
		return TagMsgParamSubPlanName
	case "msg-param-threshold":
		return TagMsgParamThreshold
	case "msg-param-viewerCount":
		return TagMsgParamViewerCount
	case "r9k":
		return TagR9K
	case "reply-parent-display-name":
		return TagReplyParentDisplayName
	case "reply-parent-msg-body":
		return TagReplyParentMsgBody
	case "reply-parent-msg-id":
		return TagReplyParentMsgID
	case "reply-parent-user-id":
		return TagReplyParentUserID
	case "reply-parent-user-login":
		return TagReplyParentUserLogin
	case "reply-thread-parent-msg-id":
		return TagReplyThreadParentMsgID
	case "reply-thread-parent-user-login":
		return TagReplyThreadParentUserLogin
	case "returning-chatter":
		return TagReturningChatter
	case "rituals":
		return TagRituals
	case "room-id":
		return TagRoomID
	case "slow":
		return TagSlow
	case "subscriber":
		return TagSubscriber
	case "subs-only":
		return TagSubsOnly
	case "system-msg":
		return TagSystemMsg
	case "target-msg-id":
		return TagTargetMsgID
	case "target-user-id":
		return TagTargetUserID
	case "thread-id":
		return TagThreadID
	case "tmi-sent-ts":
		return TagTmiSentTs
	case "turbo":
		return TagTurbo
	case "user-id":
		return TagUserID
	case "user-type":
		return TagUserType
	case "vip":
		return TagVIP
	case "msg-param-prior-gifter-anonymous":
		return TagMsgParamPriorGifterAnonymous
	case "msg-param-prior-gifter-display-name":
		return TagMsgParamPriorGifterDisplayName
	case "msg-param-prior-gifter-id":
		return TagMsgParamPriorGifterID
	case "msg-param-prior-gifter-user-name":
		return TagMsgParamPriorGifterUserName
	case "msg-param-multimonth-duration":
		return TagMsgParamMultimonthDuration
	case "msg-param-multimonth-tenure":
		return TagMsgParamMultimonthTenure
	case "msg-param-was-gifted":
		return TagMsgParamWasGifted
	case "msg-param-anon-gift":
		return TagMsgParamAnonGift
	case "msg-param-fun-string":
		return TagMsgParamFunString
	case "msg-param-origin-id":
		return TagMsgParamOriginID
	case "msg-param-profileImageURL":
		return TagMsgParamProfileImageURL
	case "sent-ts":
		return TagSentTs
	case "historical":
		return TagHistorical
	default:
		return TagUnknown
	}
}

func hasPrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	return string(b[:len(prefix)]) == prefix
}
