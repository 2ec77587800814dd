package room

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftroomhq/draftroom/internal/events"
	"github.com/draftroomhq/draftroom/internal/models"
)

// fakeStore is an in-memory Store with the same atomicity as the real one:
// ApplyTransition mutates room, logs, and outbox under one lock.
type fakeStore struct {
	mu     sync.Mutex
	rooms  map[uuid.UUID]*models.Room
	picks  map[uuid.UUID][]models.DraftPick
	sales  map[uuid.UUID][]models.AuctionSale
	events map[uuid.UUID][]OutboxInsert
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:  make(map[uuid.UUID]*models.Room),
		picks:  make(map[uuid.UUID][]models.DraftPick),
		sales:  make(map[uuid.UUID][]models.AuctionSale),
		events: make(map[uuid.UUID][]OutboxInsert),
	}
}

func (f *fakeStore) CreateRoom(_ context.Context, req CreateRoomRequest) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	room := &models.Room{
		ID:               req.ID,
		LeagueID:         req.LeagueID,
		Kind:             req.Kind,
		Status:           models.RoomStatusWaiting,
		Settings:         req.Settings,
		ParticipantOrder: req.ParticipantOrder,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	f.rooms[room.ID] = room
	cp := *room
	return &cp, nil
}

func (f *fakeStore) GetRoom(_ context.Context, id uuid.UUID) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	room, ok := f.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	cp := *room
	if room.Lot != nil {
		lot := *room.Lot
		lot.Bids = append([]models.Bid(nil), room.Lot.Bids...)
		cp.Lot = &lot
	}
	return &cp, nil
}

func (f *fakeStore) ListPicks(_ context.Context, roomID uuid.UUID) ([]models.DraftPick, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.DraftPick(nil), f.picks[roomID]...), nil
}

func (f *fakeStore) ListSales(_ context.Context, roomID uuid.UUID) ([]models.AuctionSale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.AuctionSale(nil), f.sales[roomID]...), nil
}

func (f *fakeStore) ApplyTransition(_ context.Context, roomID uuid.UUID, update RoomUpdate,
	pick *models.DraftPick, sale *models.AuctionSale, inserts []OutboxInsert) error {

	f.mu.Lock()
	defer f.mu.Unlock()

	room, ok := f.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	room.Status = update.Status
	room.RoundNumber = update.RoundNumber
	room.TurnIndex = update.TurnIndex
	room.NominatorIndex = update.NominatorIndex
	room.Deadline = update.Deadline
	room.Lot = update.Lot
	room.PassedPlayers = update.PassedPlayers
	room.UpdatedAt = time.Now()

	if pick != nil {
		f.picks[roomID] = append(f.picks[roomID], *pick)
	}
	if sale != nil {
		f.sales[roomID] = append(f.sales[roomID], *sale)
	}
	f.events[roomID] = append(f.events[roomID], inserts...)
	return nil
}

func (f *fakeStore) eventTypes(roomID uuid.UUID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, 0, len(f.events[roomID]))
	for _, ev := range f.events[roomID] {
		types = append(types, ev.EventType)
	}
	return types
}

// fakeCatalog serves a fixed pool ordered by rank, with availability derived
// from the store's logs like the SQL catalog does.
type fakeCatalog struct {
	store *fakeStore
	pool  []models.Player
}

func newFakeCatalog(store *fakeStore, size int) *fakeCatalog {
	pool := make([]models.Player, size)
	for i := range pool {
		pool[i] = models.Player{ID: uuid.New(), Name: "Player", Position: "FLEX", Rank: i + 1}
	}
	return &fakeCatalog{store: store, pool: pool}
}

func (c *fakeCatalog) taken(roomID uuid.UUID) map[uuid.UUID]bool {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	taken := make(map[uuid.UUID]bool)
	for _, p := range c.store.picks[roomID] {
		taken[p.PlayerID] = true
	}
	for _, s := range c.store.sales[roomID] {
		taken[s.PlayerID] = true
	}
	return taken
}

func (c *fakeCatalog) GetPlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	for _, p := range c.pool {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (c *fakeCatalog) TopAvailable(_ context.Context, roomID uuid.UUID) (*models.Player, error) {
	taken := c.taken(roomID)
	for _, p := range c.pool {
		if !taken[p.ID] {
			cp := p
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (c *fakeCatalog) CountAvailable(_ context.Context, roomID uuid.UUID) (int, error) {
	taken := c.taken(roomID)
	n := 0
	for _, p := range c.pool {
		if !taken[p.ID] {
			n++
		}
	}
	return n, nil
}

// failingStore rejects every ApplyTransition once tripped, like a database
// that drops mid-room.
type failingStore struct {
	*fakeStore
	fail bool
	err  error
}

func (f *failingStore) ApplyTransition(ctx context.Context, roomID uuid.UUID, update RoomUpdate,
	pick *models.DraftPick, sale *models.AuctionSale, inserts []OutboxInsert) error {

	if f.fail {
		return f.err
	}
	return f.fakeStore.ApplyTransition(ctx, roomID, update, pick, sale, inserts)
}

func newTestApp(t *testing.T, poolSize int) (*App, *fakeStore, *fakeCatalog) {
	t.Helper()
	store := newFakeStore()
	catalog := newFakeCatalog(store, poolSize)
	return NewApp(store, catalog), store, catalog
}

// steppingClock makes every a.now() call jump an hour further ahead, so each
// deadline armed by one transition is already elapsed for the next.
func steppingClock(app *App) {
	var mu sync.Mutex
	base := time.Now()
	step := 0
	app.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		step++
		return base.Add(time.Duration(step) * time.Hour)
	}
}

func participants(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func snakeSettings() models.RoomSettings {
	return models.RoomSettings{
		Rounds:            2,
		SecondsPerPick:    30,
		SnakeEnabled:      true,
		AutoPickOnTimeout: true,
	}
}

func auctionSettings() models.RoomSettings {
	return models.RoomSettings{
		AuctionBudget:     200,
		MinBid:            1,
		BidIncrement:      1,
		MaxBidTimeSec:     15,
		GoingOnceTimeSec:  5,
		GoingTwiceTimeSec: 5,
		MaxPlayersPerTeam: 2,
	}
}

func TestCreateRoomRejectsBadInput(t *testing.T) {
	app, _, _ := newTestApp(t, 10)
	ctx := context.Background()

	_, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), participants(1))
	assert.ErrorIs(t, err, ErrTooFewPlayers)

	dup := uuid.New()
	_, err = app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), []uuid.UUID{dup, dup})
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	_, err = app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, models.RoomSettings{}, participants(2))
	assert.Error(t, err)
}

func TestCreateRoomDrawsTurnOrder(t *testing.T) {
	app, _, _ := newTestApp(t, 10)
	ctx := context.Background()

	ids := participants(6)
	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), ids)
	require.NoError(t, err)

	// Same members, order drawn at creation.
	assert.ElementsMatch(t, ids, created.ParticipantOrder)
}

func TestStartRoomArmsDeadlineAndEmitsEvents(t *testing.T) {
	app, store, _ := newTestApp(t, 10)
	ctx := context.Background()

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), participants(2))
	require.NoError(t, err)

	room, err := app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, models.RoomStatusInProgress, room.Status)
	assert.NotNil(t, room.Deadline)
	assert.Equal(t, []string{events.TypeRoomStarted, events.TypeTurnStarted}, store.eventTypes(created.ID))

	_, err = app.StartRoom(ctx, created.ID)
	assert.Error(t, err)
}

func TestMakePickRunsToCompletion(t *testing.T) {
	app, store, catalog := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	settings := snakeSettings()
	settings.Rounds = 1
	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, settings, order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	_, err = app.MakePick(ctx, created.ID, order[0], catalog.pool[0].ID)
	require.NoError(t, err)
	_, err = app.MakePick(ctx, created.ID, order[1], catalog.pool[1].ID)
	require.NoError(t, err)

	room, err := app.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusCompleted, room.Status)
	assert.Nil(t, room.Deadline)

	types := store.eventTypes(created.ID)
	assert.Contains(t, types, events.TypeRoomCompleted)
}

func TestMakePickRejections(t *testing.T) {
	app, _, catalog := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	// Out of turn.
	_, err = app.MakePick(ctx, created.ID, order[1], catalog.pool[0].ID)
	assert.Equal(t, "NOT_YOUR_TURN", ReasonCode(err))

	// Unknown player.
	_, err = app.MakePick(ctx, created.ID, order[0], uuid.New())
	assert.ErrorIs(t, err, ErrPlayerUnknown)

	// Taken player.
	_, err = app.MakePick(ctx, created.ID, order[0], catalog.pool[0].ID)
	require.NoError(t, err)
	_, err = app.MakePick(ctx, created.ID, order[1], catalog.pool[0].ID)
	assert.Equal(t, "PLAYER_TAKEN", ReasonCode(err))
}

func TestHandleDeadlineIsNoopWhenNotDue(t *testing.T) {
	app, store, _ := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), order)
	require.NoError(t, err)
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	// Deadline is 30s out; a premature fire must change nothing.
	require.NoError(t, app.HandleDeadline(ctx, created.ID))
	picks, _ := store.ListPicks(ctx, created.ID)
	assert.Empty(t, picks)

	// Unknown room is also a no-op.
	assert.NoError(t, app.HandleDeadline(ctx, uuid.New()))
}

func TestMakePickFailedPersistLeavesStateUnchanged(t *testing.T) {
	store := newFakeStore()
	catalog := newFakeCatalog(store, 10)
	failing := &failingStore{fakeStore: store, err: errors.New("connection reset")}
	app := NewApp(failing, catalog)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	before, err := app.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	eventsBefore := store.eventTypes(created.ID)

	failing.fail = true
	_, err = app.MakePick(ctx, created.ID, order[0], catalog.pool[0].ID)
	assert.ErrorIs(t, err, failing.err)

	// Nothing committed: no pick, no events, turn and deadline untouched.
	picks, _ := store.ListPicks(ctx, created.ID)
	assert.Empty(t, picks)
	assert.Equal(t, eventsBefore, store.eventTypes(created.ID))
	after, err := app.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, before.TurnIndex, after.TurnIndex)
	assert.Equal(t, before.Deadline, after.Deadline)
}

func TestPlaceBidFailedPersistLeavesStateUnchanged(t *testing.T) {
	store := newFakeStore()
	catalog := newFakeCatalog(store, 10)
	failing := &failingStore{fakeStore: store, err: errors.New("connection reset")}
	app := NewApp(failing, catalog)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindAuction, auctionSettings(), order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)
	_, err = app.Nominate(ctx, created.ID, order[0], catalog.pool[0].ID)
	require.NoError(t, err)

	before, err := app.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	eventsBefore := store.eventTypes(created.ID)

	failing.fail = true
	_, err = app.PlaceBid(ctx, created.ID, order[1], 10)
	assert.ErrorIs(t, err, failing.err)

	sales, _ := store.ListSales(ctx, created.ID)
	assert.Empty(t, sales)
	assert.Equal(t, eventsBefore, store.eventTypes(created.ID))
	after, err := app.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, after.Lot)
	assert.Empty(t, after.Lot.Bids)
	assert.Equal(t, before.Deadline, after.Deadline)
}

func TestHandleDeadlineDuplicateFireChangesNothing(t *testing.T) {
	app, store, _ := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), order)
	require.NoError(t, err)
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	// Freeze the clock past the armed deadline. The first fire auto-picks and
	// re-arms a fresh window; a duplicate fire at the same instant sees the
	// new deadline still pending and must change nothing.
	frozen := time.Now().Add(time.Minute)
	app.now = func() time.Time { return frozen }

	require.NoError(t, app.HandleDeadline(ctx, created.ID))
	picks, _ := store.ListPicks(ctx, created.ID)
	require.Len(t, picks, 1)
	eventsAfterFirst := store.eventTypes(created.ID)

	require.NoError(t, app.HandleDeadline(ctx, created.ID))
	picks, _ = store.ListPicks(ctx, created.ID)
	assert.Len(t, picks, 1)
	assert.Equal(t, eventsAfterFirst, store.eventTypes(created.ID))
}

func TestHandleDeadlineAutoPicksTopRanked(t *testing.T) {
	app, store, catalog := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	// Move the clock past the armed deadline.
	app.now = func() time.Time { return time.Now().Add(time.Minute) }

	require.NoError(t, app.HandleDeadline(ctx, created.ID))

	picks, _ := store.ListPicks(ctx, created.ID)
	require.Len(t, picks, 1)
	assert.True(t, picks[0].AutoPicked)
	assert.Equal(t, order[0], picks[0].ParticipantID)
	assert.Equal(t, catalog.pool[0].ID, picks[0].PlayerID)
}

func TestHandleDeadlinePausesWhenAutoPickDisabled(t *testing.T) {
	app, store, _ := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	settings := snakeSettings()
	settings.AutoPickOnTimeout = false
	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, settings, order)
	require.NoError(t, err)
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	app.now = func() time.Time { return time.Now().Add(time.Minute) }
	require.NoError(t, app.HandleDeadline(ctx, created.ID))

	room, err := app.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusPaused, room.Status)
	assert.Nil(t, room.Deadline)

	picks, _ := store.ListPicks(ctx, created.ID)
	assert.Empty(t, picks)
}

func TestAuctionLotLifecycleThroughDeadlines(t *testing.T) {
	app, store, catalog := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindAuction, auctionSettings(), order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	_, err = app.Nominate(ctx, created.ID, order[0], catalog.pool[0].ID)
	require.NoError(t, err)
	_, err = app.PlaceBid(ctx, created.ID, order[1], 10)
	require.NoError(t, err)

	// Each elapsed deadline steps the countdown; the third resolves the lot.
	steppingClock(app)
	for i := 0; i < 3; i++ {
		require.NoError(t, app.HandleDeadline(ctx, created.ID))
	}

	sales, _ := store.ListSales(ctx, created.ID)
	require.Len(t, sales, 1)
	assert.Equal(t, order[1], sales[0].ParticipantID)
	assert.Equal(t, 10, sales[0].Amount)

	room, err := app.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, room.Lot)
	assert.Equal(t, models.RoomStatusInProgress, room.Status)

	types := store.eventTypes(created.ID)
	assert.Contains(t, types, events.TypeLotSold)
	assert.Contains(t, types, events.TypePhaseAdvanced)
}

func TestPlaceBidRejectsOutsider(t *testing.T) {
	app, _, catalog := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindAuction, auctionSettings(), order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)
	_, err = app.Nominate(ctx, created.ID, order[0], catalog.pool[0].ID)
	require.NoError(t, err)

	_, err = app.PlaceBid(ctx, created.ID, uuid.New(), 5)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestAuctionCompletesWhenRostersFill(t *testing.T) {
	app, store, catalog := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	settings := auctionSettings()
	settings.MaxPlayersPerTeam = 1
	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindAuction, settings, order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	steppingClock(app)

	sellTo := func(nominator, buyer uuid.UUID, player uuid.UUID, amount int) {
		t.Helper()
		_, err := app.Nominate(ctx, created.ID, nominator, player)
		require.NoError(t, err)
		_, err = app.PlaceBid(ctx, created.ID, buyer, amount)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.NoError(t, app.HandleDeadline(ctx, created.ID))
		}
	}

	sellTo(order[0], order[0], catalog.pool[0].ID, 5)
	sellTo(order[1], order[1], catalog.pool[1].ID, 7)

	room, err := app.GetRoom(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusCompleted, room.Status)
	assert.Contains(t, store.eventTypes(created.ID), events.TypeRoomCompleted)
}

func TestPauseAndResume(t *testing.T) {
	app, _, _ := newTestApp(t, 10)
	ctx := context.Background()
	order := participants(2)

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), order)
	require.NoError(t, err)

	assert.ErrorIs(t, app.PauseRoom(ctx, created.ID, "test"), ErrNotPaused)

	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)
	require.NoError(t, app.PauseRoom(ctx, created.ID, "test"))

	room, _ := app.GetRoom(ctx, created.ID)
	assert.Equal(t, models.RoomStatusPaused, room.Status)
	assert.Nil(t, room.Deadline)

	assert.ErrorIs(t, app.PauseRoom(ctx, created.ID, "test"), ErrAlreadyPaused)

	require.NoError(t, app.ResumeRoom(ctx, created.ID))
	room, _ = app.GetRoom(ctx, created.ID)
	assert.Equal(t, models.RoomStatusInProgress, room.Status)
	assert.NotNil(t, room.Deadline)
}

func TestCancelRoomIsIdempotentOnTerminal(t *testing.T) {
	app, store, _ := newTestApp(t, 10)
	ctx := context.Background()

	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, snakeSettings(), participants(2))
	require.NoError(t, err)

	require.NoError(t, app.CancelRoom(ctx, created.ID))
	room, _ := app.GetRoom(ctx, created.ID)
	assert.Equal(t, models.RoomStatusCancelled, room.Status)

	before := len(store.eventTypes(created.ID))
	require.NoError(t, app.CancelRoom(ctx, created.ID))
	assert.Equal(t, before, len(store.eventTypes(created.ID)))
}

// TestConcurrentPicksStaySerialized hammers one room from many goroutines.
// Exactly rounds*participants picks may land, numbered densely, every player
// unique.
func TestConcurrentPicksStaySerialized(t *testing.T) {
	app, store, catalog := newTestApp(t, 64)
	ctx := context.Background()
	order := participants(4)

	settings := snakeSettings()
	settings.Rounds = 3
	created, err := app.CreateRoom(ctx, uuid.New(), models.RoomKindSnake, settings, order)
	require.NoError(t, err)
	order = created.ParticipantOrder
	_, err = app.StartRoom(ctx, created.ID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 40; i++ {
				room, err := app.GetRoom(ctx, created.ID)
				if err != nil || room.Status != models.RoomStatusInProgress {
					return
				}
				// Every goroutine races to pick for whoever looks on the
				// clock; the app must reject the losers.
				picks, _ := store.ListPicks(ctx, created.ID)
				idx := len(picks) % len(order)
				if room.Settings.SnakeEnabled && room.RoundNumber%2 == 0 {
					idx = len(order) - 1 - idx
				}
				for _, p := range catalog.pool {
					if _, err := app.MakePick(ctx, created.ID, order[idx], p.ID); err == nil {
						break
					}
				}
			}
		}()
	}
	wg.Wait()

	picks, err := store.ListPicks(ctx, created.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(picks), 3*len(order))

	// Pick numbers dense and players unique regardless of interleaving.
	sort.Slice(picks, func(i, j int) bool { return picks[i].PickNumber < picks[j].PickNumber })
	seenPlayers := make(map[uuid.UUID]bool)
	for i, p := range picks {
		assert.Equal(t, i+1, p.PickNumber)
		assert.False(t, seenPlayers[p.PlayerID], "player drafted twice")
		seenPlayers[p.PlayerID] = true
	}
}
