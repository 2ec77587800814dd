// Package room is the application layer over the draft and auction state
// machines. It owns per-room serialization: every mutation takes the room's
// lock, re-reads durable state, runs the pure transition, and persists the
// result together with its outbox events in one transaction. Nothing here
// touches the network; broadcast rides the outbox.
package room

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftroomhq/draftroom/internal/auction"
	"github.com/draftroomhq/draftroom/internal/draft"
	"github.com/draftroomhq/draftroom/internal/events"
	"github.com/draftroomhq/draftroom/internal/models"
)

// Store is what the app needs from the durable room store.
type Store interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*models.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error)
	ListPicks(ctx context.Context, roomID uuid.UUID) ([]models.DraftPick, error)
	ListSales(ctx context.Context, roomID uuid.UUID) ([]models.AuctionSale, error)
	ApplyTransition(ctx context.Context, roomID uuid.UUID, update RoomUpdate,
		pick *models.DraftPick, sale *models.AuctionSale, events []OutboxInsert) error
}

// PlayerCatalog is the read side of the draftable pool.
type PlayerCatalog interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	TopAvailable(ctx context.Context, roomID uuid.UUID) (*models.Player, error)
	CountAvailable(ctx context.Context, roomID uuid.UUID) (int, error)
}

type App struct {
	store   Store
	players PlayerCatalog
	locks   *locker
	now     func() time.Time
	wake    func()
}

func NewApp(store Store, players PlayerCatalog) *App {
	return &App{
		store:   store,
		players: players,
		locks:   newLocker(),
		now:     time.Now,
	}
}

// SetWaker registers the timer driver's wake function. Mutations that arm or
// move a deadline call it so the scheduler re-reads sooner deadlines.
func (a *App) SetWaker(fn func()) {
	a.wake = fn
}

func (a *App) wakeTimer() {
	if a.wake != nil {
		a.wake()
	}
}

// CreateRoom validates settings and the participant list and persists a new
// room in WAITING.
func (a *App) CreateRoom(ctx context.Context, leagueID uuid.UUID, kind models.RoomKind,
	settings models.RoomSettings, participants []uuid.UUID) (*models.Room, error) {

	if len(participants) < 2 {
		return nil, ErrTooFewPlayers
	}
	seen := make(map[uuid.UUID]bool, len(participants))
	for _, id := range participants {
		if seen[id] {
			return nil, fmt.Errorf("participant %s appears twice: %w", id, ErrDuplicateEntry)
		}
		seen[id] = true
	}
	if err := settings.Validate(kind); err != nil {
		return nil, err
	}

	// Turn order is drawn at creation and never changes afterwards.
	order := make([]uuid.UUID, len(participants))
	copy(order, participants)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	room, err := a.store.CreateRoom(ctx, CreateRoomRequest{
		ID:               uuid.New(),
		LeagueID:         leagueID,
		Kind:             kind,
		Settings:         settings,
		ParticipantOrder: order,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("room_id", room.ID.String()).
		Str("kind", string(kind)).
		Int("participants", len(participants)).
		Msg("Room created")
	return room, nil
}

func (a *App) GetRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	return a.store.GetRoom(ctx, roomID)
}

func (a *App) ListPicks(ctx context.Context, roomID uuid.UUID) ([]models.DraftPick, error) {
	return a.store.ListPicks(ctx, roomID)
}

func (a *App) ListSales(ctx context.Context, roomID uuid.UUID) ([]models.AuctionSale, error) {
	return a.store.ListSales(ctx, roomID)
}

// StartRoom moves a WAITING room to IN_PROGRESS. Snake rooms arm the first
// pick deadline immediately; auction rooms wait for the first nomination.
func (a *App) StartRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	unlock := a.locks.lock(roomID)
	defer unlock()

	room, err := a.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	now := a.now()

	var update RoomUpdate
	var outbox []OutboxInsert

	switch room.Kind {
	case models.RoomKindSnake:
		s := draft.Rebuild(room, nil)
		next, err := draft.Start(s, now)
		if err != nil {
			return nil, err
		}
		update = draftUpdate(room, next)
		outbox = appendEvent(outbox, events.TypeRoomStarted, events.RoomStartedPayload{
			RoomID: roomID.String(), Kind: string(room.Kind), StartedAt: now,
			Participants: idStrings(room.ParticipantOrder), Deadline: next.Deadline,
		})
		outbox = appendEvent(outbox, events.TypeTurnStarted, events.TurnStartedPayload{
			RoomID:        roomID.String(),
			ParticipantID: draft.CurrentDrafter(next).String(),
			Round:         next.RoundNumber,
			PickNumber:    next.PickCount + 1,
			Deadline:      *next.Deadline,
		})

	case models.RoomKindAuction:
		s := auction.Rebuild(room, nil)
		next, err := auction.Start(s)
		if err != nil {
			return nil, err
		}
		update = auctionUpdate(room, next)
		outbox = appendEvent(outbox, events.TypeRoomStarted, events.RoomStartedPayload{
			RoomID: roomID.String(), Kind: string(room.Kind), StartedAt: now,
			Participants: idStrings(room.ParticipantOrder),
		})

	default:
		return nil, ErrWrongRoomKind
	}

	if err := a.store.ApplyTransition(ctx, roomID, update, nil, nil, outbox); err != nil {
		return nil, err
	}
	a.wakeTimer()
	log.Info().Str("room_id", roomID.String()).Str("kind", string(room.Kind)).Msg("Room started")
	return a.store.GetRoom(ctx, roomID)
}

// MakePick records one draft pick for the participant whose turn it is.
func (a *App) MakePick(ctx context.Context, roomID, participantID, playerID uuid.UUID) (*models.DraftPick, error) {
	return a.makePick(ctx, roomID, participantID, playerID, false)
}

func (a *App) makePick(ctx context.Context, roomID, participantID, playerID uuid.UUID, auto bool) (*models.DraftPick, error) {
	unlock := a.locks.lock(roomID)
	defer unlock()

	room, err := a.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Kind != models.RoomKindSnake {
		return nil, ErrWrongRoomKind
	}
	player, err := a.players.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerUnknown
		}
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	picks, err := a.store.ListPicks(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	s := draft.Rebuild(room, picks)
	next, pick, err := draft.ApplyPick(s, participantID, playerID, now)
	if err != nil {
		logRejection(err, roomID, "pick rejected")
		return nil, err
	}
	pick.RoomID = roomID
	pick.AutoPicked = auto

	var outbox []OutboxInsert
	outbox = appendEvent(outbox, events.TypePickMade, events.PickMadePayload{
		RoomID: roomID.String(), ParticipantID: participantID.String(),
		PlayerID: playerID.String(), PlayerName: player.Name,
		PickNumber: pick.PickNumber, Round: pick.Round,
		AutoPicked: auto, MadeAt: now,
	})
	if next.Status == models.RoomStatusCompleted {
		outbox = appendEvent(outbox, events.TypeRoomCompleted, events.RoomCompletedPayload{
			RoomID: roomID.String(), CompletedAt: now, TotalPicks: next.PickCount,
		})
	} else {
		outbox = appendEvent(outbox, events.TypeTurnStarted, events.TurnStartedPayload{
			RoomID:        roomID.String(),
			ParticipantID: draft.CurrentDrafter(next).String(),
			Round:         next.RoundNumber,
			PickNumber:    next.PickCount + 1,
			Deadline:      *next.Deadline,
		})
	}

	if err := a.store.ApplyTransition(ctx, roomID, draftUpdate(room, next), &pick, nil, outbox); err != nil {
		return nil, err
	}

	a.wakeTimer()
	log.Info().
		Str("room_id", roomID.String()).
		Str("participant_id", participantID.String()).
		Int("pick_number", pick.PickNumber).
		Bool("auto", auto).
		Msg("Pick recorded")
	return &pick, nil
}

// Nominate opens a lot for the given player in an auction room.
func (a *App) Nominate(ctx context.Context, roomID, participantID, playerID uuid.UUID) (*models.Room, error) {
	unlock := a.locks.lock(roomID)
	defer unlock()

	room, err := a.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Kind != models.RoomKindAuction {
		return nil, ErrWrongRoomKind
	}
	player, err := a.players.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerUnknown
		}
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	sales, err := a.store.ListSales(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	s := auction.Rebuild(room, sales)
	next, err := auction.StartNomination(s, participantID, playerID, now)
	if err != nil {
		logRejection(err, roomID, "nomination rejected")
		return nil, err
	}

	outbox := appendEvent(nil, events.TypeLotNominated, events.LotNominatedPayload{
		RoomID: roomID.String(), NominatorID: participantID.String(),
		PlayerID: playerID.String(), PlayerName: player.Name,
		Deadline: *next.Deadline,
	})
	if err := a.store.ApplyTransition(ctx, roomID, auctionUpdate(room, next), nil, nil, outbox); err != nil {
		return nil, err
	}

	a.wakeTimer()
	log.Info().
		Str("room_id", roomID.String()).
		Str("player_id", playerID.String()).
		Str("nominator_id", participantID.String()).
		Msg("Lot nominated")
	return a.store.GetRoom(ctx, roomID)
}

// PlaceBid records a bid on the open lot and resets the bidding countdown.
func (a *App) PlaceBid(ctx context.Context, roomID, participantID uuid.UUID, amount int) (*models.Room, error) {
	unlock := a.locks.lock(roomID)
	defer unlock()

	room, err := a.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Kind != models.RoomKindAuction {
		return nil, ErrWrongRoomKind
	}
	// Turn checks keep outsiders from picking or nominating; bidding is open
	// to any participant, so membership is checked here.
	if !isParticipant(room, participantID) {
		logRejection(ErrNotParticipant, roomID, "bid rejected")
		return nil, ErrNotParticipant
	}
	sales, err := a.store.ListSales(ctx, roomID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	s := auction.Rebuild(room, sales)
	next, err := auction.PlaceBid(s, participantID, amount, now)
	if err != nil {
		logRejection(err, roomID, "bid rejected")
		return nil, err
	}

	outbox := appendEvent(nil, events.TypeBidPlaced, events.BidPlacedPayload{
		RoomID: roomID.String(), ParticipantID: participantID.String(),
		PlayerID: next.Lot.PlayerID.String(), Amount: amount,
		Deadline: *next.Deadline, PlacedAt: now,
	})
	if err := a.store.ApplyTransition(ctx, roomID, auctionUpdate(room, next), nil, nil, outbox); err != nil {
		return nil, err
	}

	a.wakeTimer()
	log.Info().
		Str("room_id", roomID.String()).
		Str("participant_id", participantID.String()).
		Int("amount", amount).
		Msg("Bid placed")
	return a.store.GetRoom(ctx, roomID)
}

// HandleDeadline is the timer driver's callback. It re-reads the room under
// the lock and no-ops if the deadline was superseded by a mutation that
// committed after the timer fired.
func (a *App) HandleDeadline(ctx context.Context, roomID uuid.UUID) error {
	unlock := a.locks.lock(roomID)
	defer unlock()

	room, err := a.store.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return nil
		}
		return err
	}
	now := a.now()
	if room.Status != models.RoomStatusInProgress || room.Deadline == nil || room.Deadline.After(now) {
		log.Debug().Str("room_id", roomID.String()).Msg("Stale deadline, skipping")
		return nil
	}

	switch room.Kind {
	case models.RoomKindSnake:
		return a.handleDraftTimeout(ctx, room, now)
	case models.RoomKindAuction:
		return a.handleAuctionTimeout(ctx, room, now)
	default:
		return ErrWrongRoomKind
	}
}

func (a *App) handleDraftTimeout(ctx context.Context, room *models.Room, now time.Time) error {
	if !room.Settings.AutoPickOnTimeout {
		// Without auto-pick the room cannot advance on its own; pause it and
		// let a commissioner resume.
		return a.pauseLocked(ctx, room, now, "pick timer expired")
	}

	picks, err := a.store.ListPicks(ctx, room.ID)
	if err != nil {
		return err
	}
	s := draft.Rebuild(room, picks)
	onClock := draft.CurrentDrafter(s)

	player, err := a.players.TopAvailable(ctx, room.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a.pauseLocked(ctx, room, now, "player pool exhausted")
		}
		return err
	}

	next, pick, err := draft.ApplyPick(s, onClock, player.ID, now)
	if err != nil {
		return fmt.Errorf("auto-pick failed: %w", err)
	}
	pick.RoomID = room.ID
	pick.AutoPicked = true

	var outbox []OutboxInsert
	outbox = appendEvent(outbox, events.TypePickMade, events.PickMadePayload{
		RoomID: room.ID.String(), ParticipantID: onClock.String(),
		PlayerID: player.ID.String(), PlayerName: player.Name,
		PickNumber: pick.PickNumber, Round: pick.Round,
		AutoPicked: true, MadeAt: now,
	})
	if next.Status == models.RoomStatusCompleted {
		outbox = appendEvent(outbox, events.TypeRoomCompleted, events.RoomCompletedPayload{
			RoomID: room.ID.String(), CompletedAt: now, TotalPicks: next.PickCount,
		})
	} else {
		outbox = appendEvent(outbox, events.TypeTurnStarted, events.TurnStartedPayload{
			RoomID:        room.ID.String(),
			ParticipantID: draft.CurrentDrafter(next).String(),
			Round:         next.RoundNumber,
			PickNumber:    next.PickCount + 1,
			Deadline:      *next.Deadline,
		})
	}

	if err := a.store.ApplyTransition(ctx, room.ID, draftUpdate(room, next), &pick, nil, outbox); err != nil {
		return err
	}
	log.Info().
		Str("room_id", room.ID.String()).
		Str("participant_id", onClock.String()).
		Int("pick_number", pick.PickNumber).
		Msg("Auto-pick recorded on timeout")
	return nil
}

func (a *App) handleAuctionTimeout(ctx context.Context, room *models.Room, now time.Time) error {
	sales, err := a.store.ListSales(ctx, room.ID)
	if err != nil {
		return err
	}
	s := auction.Rebuild(room, sales)
	next, sale, outcome, err := auction.AdvancePhase(s, now)
	if err != nil {
		if errors.Is(err, auction.ErrNoActiveLot) {
			return nil
		}
		return err
	}

	var outbox []OutboxInsert
	switch outcome {
	case auction.OutcomeNone:
		outbox = appendEvent(outbox, events.TypePhaseAdvanced, events.PhaseAdvancedPayload{
			RoomID: room.ID.String(), PlayerID: next.Lot.PlayerID.String(),
			Phase: string(next.Lot.Phase), Deadline: *next.Deadline,
		})

	case auction.OutcomeSold:
		outbox = appendEvent(outbox, events.TypeLotSold, events.LotSoldPayload{
			RoomID: room.ID.String(), ParticipantID: sale.ParticipantID.String(),
			PlayerID: sale.PlayerID.String(), Amount: sale.Amount,
			SaleNumber: sale.SaleNumber, SoldAt: now,
		})

	case auction.OutcomePassed:
		outbox = appendEvent(outbox, events.TypeLotPassed, events.LotPassedPayload{
			RoomID: room.ID.String(), PlayerID: s.Lot.PlayerID.String(),
			ReAuction: s.ReAuction, PassedAt: now,
		})
	}

	if outcome != auction.OutcomeNone {
		done, err := a.auctionComplete(ctx, room.ID, next)
		if err != nil {
			return err
		}
		if done {
			next.Status = models.RoomStatusCompleted
			next.Deadline = nil
			outbox = appendEvent(outbox, events.TypeRoomCompleted, events.RoomCompletedPayload{
				RoomID: room.ID.String(), CompletedAt: now, TotalSales: next.SaleCount,
			})
		}
	}
	if sale != nil {
		sale.RoomID = room.ID
	}

	if err := a.store.ApplyTransition(ctx, room.ID, auctionUpdate(room, next), nil, sale, outbox); err != nil {
		return err
	}
	log.Info().
		Str("room_id", room.ID.String()).
		Str("outcome", string(outcome)).
		Msg("Auction phase advanced")
	return nil
}

// auctionComplete checks the two terminal conditions after a lot resolves:
// every roster full, or nothing left that could legally be nominated.
func (a *App) auctionComplete(ctx context.Context, roomID uuid.UUID, s auction.State) (bool, error) {
	if auction.RostersFull(s) {
		return true, nil
	}
	// CountAvailable reflects committed sales only; a sale resolved in this
	// transition is not in the tables yet, so subtract the difference between
	// the in-memory sold set and the committed log.
	available, err := a.players.CountAvailable(ctx, roomID)
	if err != nil {
		return false, err
	}
	committed, err := a.store.ListSales(ctx, roomID)
	if err != nil {
		return false, err
	}
	nominatable := available - (len(s.Sold) - len(committed))
	if !s.ReAuction {
		nominatable -= len(s.Passed)
	}
	return nominatable <= 0, nil
}

// PauseRoom freezes an in-progress room. The deadline is cleared so the timer
// driver ignores it; ResumeRoom re-arms a full window.
func (a *App) PauseRoom(ctx context.Context, roomID uuid.UUID, reason string) error {
	unlock := a.locks.lock(roomID)
	defer unlock()

	room, err := a.store.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Status == models.RoomStatusPaused {
		return ErrAlreadyPaused
	}
	if room.Status != models.RoomStatusInProgress {
		return ErrNotPaused
	}
	return a.pauseLocked(ctx, room, a.now(), reason)
}

func (a *App) pauseLocked(ctx context.Context, room *models.Room, now time.Time, reason string) error {
	update := RoomUpdate{
		Status:         models.RoomStatusPaused,
		RoundNumber:    room.RoundNumber,
		TurnIndex:      room.TurnIndex,
		NominatorIndex: room.NominatorIndex,
		Deadline:       nil,
		Lot:            room.Lot,
		PassedPlayers:  room.PassedPlayers,
	}
	outbox := appendEvent(nil, events.TypeRoomPaused, events.RoomPausedPayload{
		RoomID: room.ID.String(), PausedAt: now, Reason: reason,
	})
	if err := a.store.ApplyTransition(ctx, room.ID, update, nil, nil, outbox); err != nil {
		return err
	}
	log.Warn().Str("room_id", room.ID.String()).Str("reason", reason).Msg("Room paused")
	return nil
}

// ResumeRoom returns a paused room to IN_PROGRESS with a freshly armed
// window for whatever was pending when it paused.
func (a *App) ResumeRoom(ctx context.Context, roomID uuid.UUID) error {
	unlock := a.locks.lock(roomID)
	defer unlock()

	room, err := a.store.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Status != models.RoomStatusPaused {
		return ErrNotPaused
	}
	now := a.now()

	var deadline *time.Time
	switch {
	case room.Kind == models.RoomKindSnake:
		d := now.Add(time.Duration(room.Settings.SecondsPerPick) * time.Second)
		deadline = &d
	case room.Lot != nil:
		// Re-arm the window for the lot's current phase.
		var window time.Duration
		switch room.Lot.Phase {
		case models.PhaseGoingOnce:
			window = time.Duration(room.Settings.GoingOnceTimeSec) * time.Second
		case models.PhaseGoingTwice:
			window = time.Duration(room.Settings.GoingTwiceTimeSec) * time.Second
		default:
			window = time.Duration(room.Settings.MaxBidTimeSec) * time.Second
		}
		d := now.Add(window)
		deadline = &d
	}

	update := RoomUpdate{
		Status:         models.RoomStatusInProgress,
		RoundNumber:    room.RoundNumber,
		TurnIndex:      room.TurnIndex,
		NominatorIndex: room.NominatorIndex,
		Deadline:       deadline,
		Lot:            room.Lot,
		PassedPlayers:  room.PassedPlayers,
	}
	outbox := appendEvent(nil, events.TypeRoomResumed, events.RoomResumedPayload{
		RoomID: roomID.String(), ResumedAt: now, Deadline: deadline,
	})
	if err := a.store.ApplyTransition(ctx, roomID, update, nil, nil, outbox); err != nil {
		return err
	}
	a.wakeTimer()
	log.Info().Str("room_id", roomID.String()).Msg("Room resumed")
	return nil
}

// CancelRoom tears down a room that has not completed. Terminal rooms are
// left alone.
func (a *App) CancelRoom(ctx context.Context, roomID uuid.UUID) error {
	unlock := a.locks.lock(roomID)
	defer unlock()

	room, err := a.store.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room.Status == models.RoomStatusCompleted || room.Status == models.RoomStatusCancelled {
		return nil
	}
	now := a.now()

	update := RoomUpdate{
		Status:         models.RoomStatusCancelled,
		RoundNumber:    room.RoundNumber,
		TurnIndex:      room.TurnIndex,
		NominatorIndex: room.NominatorIndex,
		PassedPlayers:  room.PassedPlayers,
	}
	outbox := appendEvent(nil, events.TypeRoomCancelled, events.RoomCancelledPayload{
		RoomID: roomID.String(), CancelledAt: now,
	})
	if err := a.store.ApplyTransition(ctx, roomID, update, nil, nil, outbox); err != nil {
		return err
	}
	log.Warn().Str("room_id", roomID.String()).Msg("Room cancelled")
	return nil
}

func draftUpdate(room *models.Room, s draft.State) RoomUpdate {
	return RoomUpdate{
		Status:         s.Status,
		RoundNumber:    s.RoundNumber,
		TurnIndex:      s.TurnIndex,
		NominatorIndex: room.NominatorIndex,
		Deadline:       s.Deadline,
		PassedPlayers:  room.PassedPlayers,
	}
}

func auctionUpdate(room *models.Room, s auction.State) RoomUpdate {
	// Preserve the existing order and append newly passed players.
	passed := make([]uuid.UUID, 0, len(s.Passed))
	seen := make(map[uuid.UUID]bool, len(s.Passed))
	for _, id := range room.PassedPlayers {
		if s.Passed[id] && !seen[id] {
			passed = append(passed, id)
			seen[id] = true
		}
	}
	for id := range s.Passed {
		if !seen[id] {
			passed = append(passed, id)
		}
	}
	return RoomUpdate{
		Status:         s.Status,
		RoundNumber:    room.RoundNumber,
		TurnIndex:      room.TurnIndex,
		NominatorIndex: s.NominatorIndex,
		Deadline:       s.Deadline,
		Lot:            s.Lot,
		PassedPlayers:  passed,
	}
}

func appendEvent(dst []OutboxInsert, eventType string, payload any) []OutboxInsert {
	data, err := json.Marshal(payload)
	if err != nil {
		// Payload structs contain only strings, ints, and times.
		log.Error().Err(err).Str("event_type", eventType).Msg("Failed to marshal event payload")
		return dst
	}
	return append(dst, OutboxInsert{EventType: eventType, Payload: data})
}

func isParticipant(room *models.Room, participantID uuid.UUID) bool {
	for _, id := range room.ParticipantOrder {
		if id == participantID {
			return true
		}
	}
	return false
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func logRejection(err error, roomID uuid.UUID, msg string) {
	if IsRejection(err) {
		log.Debug().Err(err).Str("room_id", roomID.String()).Msg(msg)
	} else {
		log.Error().Err(err).Str("room_id", roomID.String()).Msg(msg)
	}
}
