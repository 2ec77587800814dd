package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoomKind defines the kind of drafting room.
type RoomKind string

const (
	RoomKindSnake   RoomKind = "SNAKE"
	RoomKindAuction RoomKind = "AUCTION"
)

// RoomStatus defines the lifecycle status of a room.
type RoomStatus string

const (
	RoomStatusWaiting    RoomStatus = "WAITING"
	RoomStatusInProgress RoomStatus = "IN_PROGRESS"
	RoomStatusPaused     RoomStatus = "PAUSED"
	RoomStatusCompleted  RoomStatus = "COMPLETED"
	RoomStatusCancelled  RoomStatus = "CANCELLED"
)

// RoomSettings holds JSONB configuration for a room. Immutable once the room
// leaves WAITING.
type RoomSettings struct {
	Rounds               int  `json:"rounds"`
	SecondsPerPick       int  `json:"seconds_per_pick"`
	SnakeEnabled         bool `json:"snake_enabled,omitempty"`
	AuctionBudget        int  `json:"auction_budget,omitempty"`          // auction
	MinBid               int  `json:"min_bid,omitempty"`                 // auction
	BidIncrement         int  `json:"bid_increment,omitempty"`           // auction
	MaxBidTimeSec        int  `json:"max_bid_time_sec,omitempty"`        // auction
	GoingOnceTimeSec     int  `json:"going_once_time_sec,omitempty"`     // auction
	GoingTwiceTimeSec    int  `json:"going_twice_time_sec,omitempty"`    // auction
	MaxPlayersPerTeam    int  `json:"max_players_per_team,omitempty"`    // auction
	UnsoldPlayerReAuction bool `json:"unsold_player_reauction,omitempty"` // auction
	AutoPickOnTimeout    bool `json:"auto_pick_on_timeout"`              // draft: pick top ranked vs skip
}

// Validate rejects settings that would leave a room unable to run before it
// becomes startable.
func (s RoomSettings) Validate(kind RoomKind) error {
	switch kind {
	case RoomKindSnake:
		if s.Rounds <= 0 {
			return fmt.Errorf("rounds must be greater than 0")
		}
		if s.SecondsPerPick <= 0 {
			return fmt.Errorf("seconds_per_pick must be greater than 0")
		}
	case RoomKindAuction:
		if s.AuctionBudget <= 0 {
			return fmt.Errorf("auction_budget must be greater than 0")
		}
		if s.MinBid <= 0 {
			return fmt.Errorf("min_bid must be greater than 0")
		}
		if s.BidIncrement <= 0 {
			return fmt.Errorf("bid_increment must be greater than 0")
		}
		if s.MaxBidTimeSec <= 0 || s.GoingOnceTimeSec <= 0 || s.GoingTwiceTimeSec <= 0 {
			return fmt.Errorf("countdown durations must all be greater than 0")
		}
		if s.MaxPlayersPerTeam <= 0 {
			return fmt.Errorf("max_players_per_team must be greater than 0")
		}
		if s.MinBid > s.AuctionBudget {
			return fmt.Errorf("min_bid cannot exceed auction_budget")
		}
	default:
		return fmt.Errorf("invalid room kind: %s", kind)
	}
	return nil
}

// AuctionPhase is the phase of the current lot inside an auction room.
type AuctionPhase string

const (
	PhaseNominating AuctionPhase = "NOMINATING"
	PhaseBidding    AuctionPhase = "BIDDING"
	PhaseGoingOnce  AuctionPhase = "GOING_ONCE"
	PhaseGoingTwice AuctionPhase = "GOING_TWICE"
)

// Bid is one bid on the current lot. Bids are transient: only the current
// lot's history is kept, persisted on the room row while the lot is open.
type Bid struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	Amount        int       `json:"amount"`
	PlacedAt      time.Time `json:"placed_at"`
}

// Lot is the player currently open for bidding in an auction room. Nil when
// the room is between nominations.
type Lot struct {
	PlayerID uuid.UUID    `json:"player_id"`
	Phase    AuctionPhase `json:"phase"`
	Bids     []Bid        `json:"bids,omitempty"`
}

// HighBid returns the current high bid, or nil if no bid has been accepted.
// Bids are only appended when they beat the previous high, so the last entry
// is always the highest.
func (l *Lot) HighBid() *Bid {
	if l == nil || len(l.Bids) == 0 {
		return nil
	}
	return &l.Bids[len(l.Bids)-1]
}

// Room identifies one draft or auction event for one league. The turn
// pointer, deadline, lot, and passed set are the mutable progress fields;
// everything else is fixed at creation.
type Room struct {
	ID               uuid.UUID    `json:"id"`
	LeagueID         uuid.UUID    `json:"league_id"`
	Kind             RoomKind     `json:"kind"`
	Status           RoomStatus   `json:"status"`
	Settings         RoomSettings `json:"settings"`
	ParticipantOrder []uuid.UUID  `json:"participant_order"`
	RoundNumber      int          `json:"round_number"`
	TurnIndex        int          `json:"turn_index"`      // snake
	NominatorIndex   int          `json:"nominator_index"` // auction
	Deadline         *time.Time   `json:"deadline,omitempty"`
	Lot              *Lot         `json:"lot,omitempty"`            // auction
	PassedPlayers    []uuid.UUID  `json:"passed_players,omitempty"` // auction, unsold and out of pool
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
