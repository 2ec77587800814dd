package room

import (
	"errors"

	"github.com/draftroomhq/draftroom/internal/auction"
	"github.com/draftroomhq/draftroom/internal/draft"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrTooFewPlayers  = errors.New("room needs at least two participants")
	ErrDuplicateEntry = errors.New("duplicate participant in room order")
	ErrNotParticipant = errors.New("not a participant in this room")
	ErrWrongRoomKind  = errors.New("operation does not apply to this room kind")
	ErrNotPaused      = errors.New("room is not paused")
	ErrAlreadyPaused  = errors.New("room is already paused")
	ErrPlayerUnknown  = errors.New("player not in the draft pool")
)

// ReasonCode maps a rejection to the stable string clients key on. Unknown
// errors map to INTERNAL and should not be surfaced verbatim.
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "ROOM_NOT_FOUND"
	case errors.Is(err, draft.ErrNotWaiting), errors.Is(err, auction.ErrNotWaiting):
		return "ROOM_NOT_WAITING"
	case errors.Is(err, ErrTooFewPlayers):
		return "TOO_FEW_PLAYERS"
	case errors.Is(err, ErrDuplicateEntry):
		return "DUPLICATE_PARTICIPANT"
	case errors.Is(err, ErrNotParticipant):
		return "NOT_PARTICIPANT"
	case errors.Is(err, ErrWrongRoomKind):
		return "WRONG_ROOM_KIND"
	case errors.Is(err, ErrNotPaused):
		return "NOT_PAUSED"
	case errors.Is(err, ErrAlreadyPaused):
		return "ALREADY_PAUSED"
	case errors.Is(err, ErrPlayerUnknown):
		return "PLAYER_UNKNOWN"
	case errors.Is(err, draft.ErrNotInProgress), errors.Is(err, auction.ErrNotInProgress):
		return "ROOM_NOT_IN_PROGRESS"
	case errors.Is(err, draft.ErrWrongTurn):
		return "NOT_YOUR_TURN"
	case errors.Is(err, draft.ErrPlayerTaken):
		return "PLAYER_TAKEN"
	case errors.Is(err, draft.ErrRosterFull), errors.Is(err, auction.ErrRosterFull):
		return "ROSTER_FULL"
	case errors.Is(err, auction.ErrNotNominatorTurn):
		return "NOT_NOMINATOR_TURN"
	case errors.Is(err, auction.ErrLotAlreadyOpen):
		return "LOT_ALREADY_OPEN"
	case errors.Is(err, auction.ErrNoActiveLot):
		return "NO_ACTIVE_LOT"
	case errors.Is(err, auction.ErrPlayerAlreadySold):
		return "PLAYER_ALREADY_SOLD"
	case errors.Is(err, auction.ErrBiddingClosed):
		return "BIDDING_CLOSED"
	case errors.Is(err, auction.ErrBudgetExceeded):
		return "BUDGET_EXCEEDED"
	case errors.Is(err, auction.ErrBidTooLow):
		return "BID_TOO_LOW"
	case errors.Is(err, auction.ErrDeadlineNotDue):
		return "DEADLINE_NOT_DUE"
	default:
		return "INTERNAL"
	}
}

// IsRejection reports whether the error is a rule violation rather than an
// infrastructure failure. Rejections are normal traffic and log at debug.
func IsRejection(err error) bool {
	return ReasonCode(err) != "INTERNAL"
}
