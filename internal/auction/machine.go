// Package auction is the pure state machine for auction rooms. One lot is
// open at a time; a valid bid always resets the closing countdown, so a lot
// can only close after the full bidding window elapses with no new bid.
package auction

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/draftroomhq/draftroom/internal/models"
)

var (
	ErrNotWaiting        = errors.New("room is not in a startable state")
	ErrNotInProgress     = errors.New("room is not in progress")
	ErrNotNominatorTurn  = errors.New("not this participant's nomination turn")
	ErrLotAlreadyOpen    = errors.New("a player is already up for auction")
	ErrNoActiveLot       = errors.New("no player is up for auction")
	ErrPlayerAlreadySold = errors.New("player already sold or closed")
	ErrBiddingClosed     = errors.New("bidding is closed for this lot")
	ErrBudgetExceeded    = errors.New("bid exceeds remaining budget")
	ErrBidTooLow         = errors.New("bid below minimum raise")
	ErrRosterFull        = errors.New("participant roster is full")
	ErrDeadlineNotDue    = errors.New("phase deadline has not elapsed")
)

// Outcome describes how AdvancePhase resolved a lot, if it did.
type Outcome string

const (
	OutcomeNone   Outcome = ""       // countdown advanced, lot still open
	OutcomeSold   Outcome = "SOLD"   // lot sold to the high bidder
	OutcomePassed Outcome = "PASSED" // no bids, lot closed unsold
)

// State is the in-memory view of an auction room. Budgets, roster sizes, and
// the sold set are derived from the sale log via Rebuild; the open lot and
// its bid history come from the room row.
type State struct {
	Status models.RoomStatus
	Order  []uuid.UUID

	Budget       int
	MinBid       int
	BidIncrement int
	MaxBidTime   time.Duration
	GoingOnce    time.Duration
	GoingTwice   time.Duration
	RosterCap    int
	ReAuction    bool

	NominatorIndex int
	Deadline       *time.Time
	Lot            *models.Lot
	Passed         map[uuid.UUID]bool

	SaleCount int
	Sold      map[uuid.UUID]bool
	Spent     map[uuid.UUID]int
	Roster    map[uuid.UUID]int
}

// Rebuild derives a State from the room row and its append-only sale log.
func Rebuild(room *models.Room, sales []models.AuctionSale) State {
	s := State{
		Status:         room.Status,
		Order:          room.ParticipantOrder,
		Budget:         room.Settings.AuctionBudget,
		MinBid:         room.Settings.MinBid,
		BidIncrement:   room.Settings.BidIncrement,
		MaxBidTime:     time.Duration(room.Settings.MaxBidTimeSec) * time.Second,
		GoingOnce:      time.Duration(room.Settings.GoingOnceTimeSec) * time.Second,
		GoingTwice:     time.Duration(room.Settings.GoingTwiceTimeSec) * time.Second,
		RosterCap:      room.Settings.MaxPlayersPerTeam,
		ReAuction:      room.Settings.UnsoldPlayerReAuction,
		NominatorIndex: room.NominatorIndex,
		Deadline:       room.Deadline,
		Lot:            room.Lot,
		Passed:         make(map[uuid.UUID]bool, len(room.PassedPlayers)),
		SaleCount:      len(sales),
		Sold:           make(map[uuid.UUID]bool, len(sales)),
		Spent:          make(map[uuid.UUID]int, len(room.ParticipantOrder)),
		Roster:         make(map[uuid.UUID]int, len(room.ParticipantOrder)),
	}
	for _, id := range room.PassedPlayers {
		s.Passed[id] = true
	}
	for _, sale := range sales {
		s.Sold[sale.PlayerID] = true
		s.Spent[sale.ParticipantID] += sale.Amount
		s.Roster[sale.ParticipantID]++
	}
	return s
}

// CurrentNominator round-robins through the participant order. Nomination
// order never mirrors.
func CurrentNominator(s State) uuid.UUID {
	return s.Order[s.NominatorIndex%len(s.Order)]
}

// RemainingBudget returns what a participant can still spend.
func RemainingBudget(s State, participantID uuid.UUID) int {
	return s.Budget - s.Spent[participantID]
}

// Start transitions a waiting room to in progress. No deadline is armed: the
// room waits for the first nomination.
func Start(s State) (State, error) {
	if s.Status != models.RoomStatusWaiting {
		return s, ErrNotWaiting
	}
	next := s
	next.Status = models.RoomStatusInProgress
	next.NominatorIndex = 0
	return next, nil
}

// StartNomination puts a player up for auction. Only legal when no lot is
// open and it is the caller's nomination turn. The nominator index advances
// immediately, so the nomination turn moves forward however the sale
// resolves.
func StartNomination(s State, participantID, playerID uuid.UUID, now time.Time) (State, error) {
	if s.Status != models.RoomStatusInProgress {
		return s, ErrNotInProgress
	}
	if s.Lot != nil {
		return s, ErrLotAlreadyOpen
	}
	if participantID != CurrentNominator(s) {
		return s, ErrNotNominatorTurn
	}
	if s.Sold[playerID] {
		return s, ErrPlayerAlreadySold
	}
	if s.Passed[playerID] && !s.ReAuction {
		return s, ErrPlayerAlreadySold
	}

	next := s
	next.Lot = &models.Lot{PlayerID: playerID, Phase: models.PhaseBidding}
	deadline := now.Add(s.MaxBidTime)
	next.Deadline = &deadline
	next.NominatorIndex++
	return next, nil
}

// ValidateBid checks a proposed bid against the current state without
// mutating anything.
func ValidateBid(s State, participantID uuid.UUID, amount int) error {
	if s.Status != models.RoomStatusInProgress {
		return ErrNotInProgress
	}
	if s.Lot == nil {
		return ErrNoActiveLot
	}
	switch s.Lot.Phase {
	case models.PhaseBidding, models.PhaseGoingOnce, models.PhaseGoingTwice:
	default:
		return ErrBiddingClosed
	}
	if s.Roster[participantID] >= s.RosterCap {
		return ErrRosterFull
	}
	if amount > RemainingBudget(s, participantID) {
		return ErrBudgetExceeded
	}
	if high := s.Lot.HighBid(); high != nil {
		if amount < high.Amount+s.BidIncrement {
			return ErrBidTooLow
		}
	} else if amount < s.MinBid {
		return ErrBidTooLow
	}
	return nil
}

// PlaceBid records a valid bid as the new high bid. Any accepted bid resets
// the phase to BIDDING and re-arms the full bid window, which is the
// liveness guarantee that a lot cannot close while bids keep arriving.
func PlaceBid(s State, participantID uuid.UUID, amount int, now time.Time) (State, error) {
	if err := ValidateBid(s, participantID, amount); err != nil {
		return s, err
	}

	next := s
	lot := *s.Lot
	lot.Bids = append(append([]models.Bid(nil), s.Lot.Bids...), models.Bid{
		ParticipantID: participantID,
		Amount:        amount,
		PlacedAt:      now,
	})
	lot.Phase = models.PhaseBidding
	next.Lot = &lot
	deadline := now.Add(s.MaxBidTime)
	next.Deadline = &deadline
	return next, nil
}

// AdvancePhase steps the closing countdown after a deadline elapsed with no
// intervening bid: BIDDING -> GOING_ONCE -> GOING_TWICE -> resolution. Calling
// it while the current phase's deadline is still pending is an error. On
// resolution it returns the sale record to append (nil for a pass) and the
// outcome. The room then waits for the next nomination; completion is checked
// by the caller against the remaining pool and roster caps.
func AdvancePhase(s State, now time.Time) (State, *models.AuctionSale, Outcome, error) {
	if s.Status != models.RoomStatusInProgress {
		return s, nil, OutcomeNone, ErrNotInProgress
	}
	if s.Lot == nil {
		return s, nil, OutcomeNone, ErrNoActiveLot
	}
	if s.Deadline != nil && s.Deadline.After(now) {
		return s, nil, OutcomeNone, ErrDeadlineNotDue
	}

	next := s
	lot := *s.Lot
	lot.Bids = append([]models.Bid(nil), s.Lot.Bids...)

	switch s.Lot.Phase {
	case models.PhaseBidding:
		lot.Phase = models.PhaseGoingOnce
		deadline := now.Add(s.GoingOnce)
		next.Lot = &lot
		next.Deadline = &deadline
		return next, nil, OutcomeNone, nil

	case models.PhaseGoingOnce:
		lot.Phase = models.PhaseGoingTwice
		deadline := now.Add(s.GoingTwice)
		next.Lot = &lot
		next.Deadline = &deadline
		return next, nil, OutcomeNone, nil

	case models.PhaseGoingTwice:
		next.Lot = nil
		next.Deadline = nil

		high := s.Lot.HighBid()
		if high == nil {
			next.Passed = cloneSet(s.Passed)
			if !s.ReAuction {
				next.Passed[s.Lot.PlayerID] = true
			}
			return next, nil, OutcomePassed, nil
		}

		sale := &models.AuctionSale{
			ID:            uuid.New(),
			ParticipantID: high.ParticipantID,
			PlayerID:      s.Lot.PlayerID,
			Amount:        high.Amount,
			SaleNumber:    s.SaleCount + 1,
			SoldAt:        now,
		}
		next.SaleCount++
		next.Sold = cloneSet(s.Sold)
		next.Sold[sale.PlayerID] = true
		next.Spent = cloneCounts(s.Spent)
		next.Spent[sale.ParticipantID] += sale.Amount
		next.Roster = cloneCounts(s.Roster)
		next.Roster[sale.ParticipantID]++
		return next, sale, OutcomeSold, nil

	default:
		return s, nil, OutcomeNone, ErrBiddingClosed
	}
}

// RostersFull reports whether every participant has hit the roster cap, in
// which case no further nomination can succeed.
func RostersFull(s State) bool {
	for _, id := range s.Order {
		if s.Roster[id] < s.RosterCap {
			return false
		}
	}
	return true
}

func cloneSet(m map[uuid.UUID]bool) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneCounts(m map[uuid.UUID]int) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
