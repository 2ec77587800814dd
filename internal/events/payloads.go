package events

import (
	"time"
)

// Event types written to the outbox and fanned out to room subscribers.
// Payload structs live here so the room and gateway packages can share them
// without a cyclic import.
const (
	TypeRoomStarted   = "RoomStarted"
	TypeRoomPaused    = "RoomPaused"
	TypeRoomResumed   = "RoomResumed"
	TypeRoomCompleted = "RoomCompleted"
	TypeRoomCancelled = "RoomCancelled"
	TypePickMade      = "PickMade"
	TypeTurnStarted   = "TurnStarted"
	TypeLotNominated  = "LotNominated"
	TypeBidPlaced     = "BidPlaced"
	TypePhaseAdvanced = "PhaseAdvanced"
	TypeLotSold       = "LotSold"
	TypeLotPassed     = "LotPassed"
)

// RoomStartedPayload is emitted when a room leaves WAITING.
type RoomStartedPayload struct {
	RoomID       string     `json:"room_id"`
	Kind         string     `json:"kind"`
	StartedAt    time.Time  `json:"started_at"`
	Participants []string   `json:"participants"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// TurnStartedPayload announces whose action is pending and until when.
type TurnStartedPayload struct {
	RoomID        string    `json:"room_id"`
	ParticipantID string    `json:"participant_id"`
	Round         int       `json:"round"`
	PickNumber    int       `json:"pick_number"`
	Deadline      time.Time `json:"deadline"`
}

// PickMadePayload is emitted for every accepted draft pick.
type PickMadePayload struct {
	RoomID        string    `json:"room_id"`
	ParticipantID string    `json:"participant_id"`
	PlayerID      string    `json:"player_id"`
	PlayerName    string    `json:"player_name"`
	PickNumber    int       `json:"pick_number"`
	Round         int       `json:"round"`
	AutoPicked    bool      `json:"auto_picked"`
	MadeAt        time.Time `json:"made_at"`
}

// LotNominatedPayload is emitted when a player goes up for auction.
type LotNominatedPayload struct {
	RoomID      string    `json:"room_id"`
	NominatorID string    `json:"nominator_id"`
	PlayerID    string    `json:"player_id"`
	PlayerName  string    `json:"player_name"`
	Deadline    time.Time `json:"deadline"`
}

// BidPlacedPayload is emitted for every accepted bid.
type BidPlacedPayload struct {
	RoomID        string    `json:"room_id"`
	ParticipantID string    `json:"participant_id"`
	PlayerID      string    `json:"player_id"`
	Amount        int       `json:"amount"`
	Deadline      time.Time `json:"deadline"`
	PlacedAt      time.Time `json:"placed_at"`
}

// PhaseAdvancedPayload is emitted when a lot's closing countdown steps.
type PhaseAdvancedPayload struct {
	RoomID   string    `json:"room_id"`
	PlayerID string    `json:"player_id"`
	Phase    string    `json:"phase"`
	Deadline time.Time `json:"deadline"`
}

// LotSoldPayload is emitted when a lot resolves to the high bidder.
type LotSoldPayload struct {
	RoomID        string    `json:"room_id"`
	ParticipantID string    `json:"participant_id"`
	PlayerID      string    `json:"player_id"`
	Amount        int       `json:"amount"`
	SaleNumber    int       `json:"sale_number"`
	SoldAt        time.Time `json:"sold_at"`
}

// LotPassedPayload is emitted when a lot closes with no bids.
type LotPassedPayload struct {
	RoomID    string    `json:"room_id"`
	PlayerID  string    `json:"player_id"`
	ReAuction bool      `json:"re_auction"`
	PassedAt  time.Time `json:"passed_at"`
}

// RoomCompletedPayload is emitted once when a room reaches COMPLETED.
type RoomCompletedPayload struct {
	RoomID      string    `json:"room_id"`
	CompletedAt time.Time `json:"completed_at"`
	TotalPicks  int       `json:"total_picks,omitempty"`
	TotalSales  int       `json:"total_sales,omitempty"`
}

// RoomPausedPayload is emitted when a draft room is paused.
type RoomPausedPayload struct {
	RoomID   string    `json:"room_id"`
	PausedAt time.Time `json:"paused_at"`
	Reason   string    `json:"reason"`
}

// RoomResumedPayload is emitted when a paused room resumes.
type RoomResumedPayload struct {
	RoomID    string     `json:"room_id"`
	ResumedAt time.Time  `json:"resumed_at"`
	Deadline  *time.Time `json:"deadline,omitempty"`
}

// RoomCancelledPayload is emitted when a room is torn down.
type RoomCancelledPayload struct {
	RoomID      string    `json:"room_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}
