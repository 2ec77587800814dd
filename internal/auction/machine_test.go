package auction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftroomhq/draftroom/internal/models"
)

func newAuctionRoom(participants int) (*models.Room, []uuid.UUID) {
	order := make([]uuid.UUID, participants)
	for i := range order {
		order[i] = uuid.New()
	}
	return &models.Room{
		ID:       uuid.New(),
		LeagueID: uuid.New(),
		Kind:     models.RoomKindAuction,
		Status:   models.RoomStatusWaiting,
		Settings: models.RoomSettings{
			AuctionBudget:     200,
			MinBid:            1,
			BidIncrement:      1,
			MaxBidTimeSec:     15,
			GoingOnceTimeSec:  5,
			GoingTwiceTimeSec: 5,
			MaxPlayersPerTeam: 3,
		},
		ParticipantOrder: order,
	}, order
}

func startedState(t *testing.T, room *models.Room, sales []models.AuctionSale) State {
	t.Helper()
	room.Status = models.RoomStatusWaiting
	s, err := Start(Rebuild(room, sales))
	require.NoError(t, err)
	return s
}

func TestStartWaitsForFirstNomination(t *testing.T) {
	room, order := newAuctionRoom(3)
	s := startedState(t, room, nil)

	assert.Equal(t, models.RoomStatusInProgress, s.Status)
	assert.Nil(t, s.Deadline)
	assert.Nil(t, s.Lot)
	assert.Equal(t, order[0], CurrentNominator(s))
}

func TestNominationOpensLotAndAdvancesNominator(t *testing.T) {
	room, order := newAuctionRoom(3)
	s := startedState(t, room, nil)
	now := time.Now()
	player := uuid.New()

	s, err := StartNomination(s, order[0], player, now)
	require.NoError(t, err)

	require.NotNil(t, s.Lot)
	assert.Equal(t, player, s.Lot.PlayerID)
	assert.Equal(t, models.PhaseBidding, s.Lot.Phase)
	require.NotNil(t, s.Deadline)
	assert.Equal(t, now.Add(15*time.Second), *s.Deadline)

	// The nomination turn moves on however the lot resolves.
	assert.Equal(t, order[1], CurrentNominator(s))
}

func TestNominationRejectedOutOfTurn(t *testing.T) {
	room, order := newAuctionRoom(3)
	s := startedState(t, room, nil)

	_, err := StartNomination(s, order[2], uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrNotNominatorTurn)
}

func TestNominationRejectedWhileLotOpen(t *testing.T) {
	room, order := newAuctionRoom(3)
	s := startedState(t, room, nil)
	now := time.Now()

	s, err := StartNomination(s, order[0], uuid.New(), now)
	require.NoError(t, err)

	_, err = StartNomination(s, order[1], uuid.New(), now)
	assert.ErrorIs(t, err, ErrLotAlreadyOpen)
}

func TestNominationRejectsSoldPlayer(t *testing.T) {
	room, order := newAuctionRoom(2)
	player := uuid.New()
	sales := []models.AuctionSale{
		{ID: uuid.New(), RoomID: room.ID, ParticipantID: order[1], PlayerID: player, Amount: 10, SaleNumber: 1},
	}
	room.NominatorIndex = 1
	room.Status = models.RoomStatusInProgress
	s := Rebuild(room, sales)

	_, err := StartNomination(s, order[1], player, time.Now())
	assert.ErrorIs(t, err, ErrPlayerAlreadySold)
}

func TestBidResetsCountdown(t *testing.T) {
	room, order := newAuctionRoom(3)
	s := startedState(t, room, nil)
	now := time.Now()

	s, err := StartNomination(s, order[0], uuid.New(), now)
	require.NoError(t, err)

	// Let the countdown step to GOING_ONCE, then bid.
	s, _, outcome, err := AdvancePhase(s, now.Add(15*time.Second))
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, outcome)
	assert.Equal(t, models.PhaseGoingOnce, s.Lot.Phase)

	bidAt := now.Add(17 * time.Second)
	s, err = PlaceBid(s, order[1], 5, bidAt)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseBidding, s.Lot.Phase)
	assert.Equal(t, bidAt.Add(15*time.Second), *s.Deadline)
}

func TestBidValidation(t *testing.T) {
	room, order := newAuctionRoom(3)
	s := startedState(t, room, nil)
	now := time.Now()

	s, err := StartNomination(s, order[0], uuid.New(), now)
	require.NoError(t, err)

	// First bid must meet the minimum.
	assert.ErrorIs(t, ValidateBid(s, order[1], 0), ErrBidTooLow)

	s, err = PlaceBid(s, order[1], 10, now)
	require.NoError(t, err)

	// Raises must clear the high bid by the increment.
	assert.ErrorIs(t, ValidateBid(s, order[2], 10), ErrBidTooLow)
	assert.NoError(t, ValidateBid(s, order[2], 11))

	// The current high bidder may raise their own bid too.
	assert.NoError(t, ValidateBid(s, order[1], 11))

	// Budget is a hard cap.
	assert.ErrorIs(t, ValidateBid(s, order[2], 201), ErrBudgetExceeded)
}

func TestBidRejectedWithoutLot(t *testing.T) {
	room, order := newAuctionRoom(2)
	s := startedState(t, room, nil)

	_, err := PlaceBid(s, order[0], 5, time.Now())
	assert.ErrorIs(t, err, ErrNoActiveLot)
}

func TestBidRejectedWhenRosterFull(t *testing.T) {
	room, order := newAuctionRoom(2)
	room.Settings.MaxPlayersPerTeam = 1
	sales := []models.AuctionSale{
		{ID: uuid.New(), RoomID: room.ID, ParticipantID: order[0], PlayerID: uuid.New(), Amount: 5, SaleNumber: 1},
	}
	room.Status = models.RoomStatusInProgress
	room.NominatorIndex = 1
	s := Rebuild(room, sales)

	s, err := StartNomination(s, order[1], uuid.New(), time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, ValidateBid(s, order[0], 5), ErrRosterFull)
	assert.NoError(t, ValidateBid(s, order[1], 5))
}

func TestAdvancePhaseRejectedBeforeDeadline(t *testing.T) {
	room, order := newAuctionRoom(2)
	s := startedState(t, room, nil)
	now := time.Now()

	s, err := StartNomination(s, order[0], uuid.New(), now)
	require.NoError(t, err)

	// The bid window runs 15s; stepping the countdown early must not move it.
	next, _, outcome, err := AdvancePhase(s, now.Add(10*time.Second))
	assert.ErrorIs(t, err, ErrDeadlineNotDue)
	assert.Equal(t, OutcomeNone, outcome)
	assert.Equal(t, models.PhaseBidding, next.Lot.Phase)
}

func TestCountdownResolvesToHighBidder(t *testing.T) {
	room, order := newAuctionRoom(3)
	s := startedState(t, room, nil)
	now := time.Now()
	player := uuid.New()

	s, err := StartNomination(s, order[0], player, now)
	require.NoError(t, err)
	s, err = PlaceBid(s, order[1], 20, now)
	require.NoError(t, err)
	s, err = PlaceBid(s, order[2], 25, now)
	require.NoError(t, err)

	// BIDDING -> GOING_ONCE -> GOING_TWICE -> SOLD.
	s, sale, outcome, err := AdvancePhase(s, now.Add(15*time.Second))
	require.NoError(t, err)
	require.Equal(t, OutcomeNone, outcome)

	s, sale, outcome, err = AdvancePhase(s, now.Add(20*time.Second))
	require.NoError(t, err)
	require.Equal(t, OutcomeNone, outcome)
	assert.Equal(t, models.PhaseGoingTwice, s.Lot.Phase)

	soldAt := now.Add(25 * time.Second)
	s, sale, outcome, err = AdvancePhase(s, soldAt)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSold, outcome)

	require.NotNil(t, sale)
	assert.Equal(t, order[2], sale.ParticipantID)
	assert.Equal(t, player, sale.PlayerID)
	assert.Equal(t, 25, sale.Amount)
	assert.Equal(t, 1, sale.SaleNumber)

	assert.Nil(t, s.Lot)
	assert.Nil(t, s.Deadline)
	assert.Equal(t, 175, RemainingBudget(s, order[2]))
	assert.Equal(t, 1, s.Roster[order[2]])
}

func TestCountdownPassesLotWithNoBids(t *testing.T) {
	room, order := newAuctionRoom(2)
	s := startedState(t, room, nil)
	now := time.Now()
	player := uuid.New()

	s, err := StartNomination(s, order[0], player, now)
	require.NoError(t, err)

	at := now.Add(15 * time.Second)
	for i := 0; i < 2; i++ {
		var outcome Outcome
		s, _, outcome, err = AdvancePhase(s, at)
		require.NoError(t, err)
		require.Equal(t, OutcomeNone, outcome)
		at = at.Add(5 * time.Second)
	}

	s, sale, outcome, err := AdvancePhase(s, at)
	require.NoError(t, err)
	assert.Equal(t, OutcomePassed, outcome)
	assert.Nil(t, sale)
	assert.Nil(t, s.Lot)
	assert.True(t, s.Passed[player])

	// A passed player cannot be re-nominated unless re-auction is enabled.
	_, err = StartNomination(s, order[1], player, at)
	assert.ErrorIs(t, err, ErrPlayerAlreadySold)
}

func TestPassedPlayerReNominatedWhenReAuctionEnabled(t *testing.T) {
	room, order := newAuctionRoom(2)
	room.Settings.UnsoldPlayerReAuction = true
	s := startedState(t, room, nil)
	now := time.Now()
	player := uuid.New()

	s, err := StartNomination(s, order[0], player, now)
	require.NoError(t, err)

	at := now.Add(15 * time.Second)
	for i := 0; i < 3; i++ {
		s, _, _, err = AdvancePhase(s, at)
		require.NoError(t, err)
		at = at.Add(5 * time.Second)
	}
	assert.False(t, s.Passed[player])

	_, err = StartNomination(s, order[1], player, at)
	assert.NoError(t, err)
}

func TestRostersFull(t *testing.T) {
	room, order := newAuctionRoom(2)
	room.Settings.MaxPlayersPerTeam = 1
	room.Status = models.RoomStatusInProgress

	sales := []models.AuctionSale{
		{ID: uuid.New(), RoomID: room.ID, ParticipantID: order[0], PlayerID: uuid.New(), Amount: 5, SaleNumber: 1},
	}
	s := Rebuild(room, sales)
	assert.False(t, RostersFull(s))

	sales = append(sales, models.AuctionSale{
		ID: uuid.New(), RoomID: room.ID, ParticipantID: order[1], PlayerID: uuid.New(), Amount: 7, SaleNumber: 2,
	})
	s = Rebuild(room, sales)
	assert.True(t, RostersFull(s))
}

func TestNominatorOrderWrapsWithoutMirroring(t *testing.T) {
	room, order := newAuctionRoom(3)
	room.Status = models.RoomStatusInProgress
	room.NominatorIndex = 5
	s := Rebuild(room, nil)

	assert.Equal(t, order[2], CurrentNominator(s))
}
