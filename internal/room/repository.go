package room

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/draftroomhq/draftroom/internal/models"
)

// Repository is the durable Room Store: the room row, the append-only pick
// and sale logs, and the transactional outbox. Every mutation that changes
// room progress commits together with its outbox events, so nothing is
// broadcast that was not durably applied.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// OutboxInsert is one event to write inside a mutation transaction.
type OutboxInsert struct {
	EventType string
	Payload   []byte
}

// RoomUpdate carries the mutable progress fields written back after a state
// machine transition.
type RoomUpdate struct {
	Status         models.RoomStatus
	RoundNumber    int
	TurnIndex      int
	NominatorIndex int
	Deadline       *time.Time
	Lot            *models.Lot
	PassedPlayers  []uuid.UUID
}

type CreateRoomRequest struct {
	ID               uuid.UUID
	LeagueID         uuid.UUID
	Kind             models.RoomKind
	Settings         models.RoomSettings
	ParticipantOrder []uuid.UUID
}

const createRoomSQL = `
INSERT INTO rooms (id, league_id, kind, status, settings, participant_order,
                   round_number, turn_index, nominator_index, passed_players)
VALUES ($1, $2, $3, $4, $5, $6, 0, 0, 0, '[]'::jsonb)
RETURNING id, league_id, kind, status, settings, participant_order,
          round_number, turn_index, nominator_index, deadline, lot,
          passed_players, created_at, updated_at`

func (r *Repository) CreateRoom(ctx context.Context, req CreateRoomRequest) (*models.Room, error) {
	settings, err := json.Marshal(req.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal room settings: %w", err)
	}
	order, err := json.Marshal(req.ParticipantOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal participant order: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createRoomSQL,
		req.ID, req.LeagueID, string(req.Kind), string(models.RoomStatusWaiting), settings, order)
	room, err := scanRoom(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

const getRoomSQL = `
SELECT id, league_id, kind, status, settings, participant_order,
       round_number, turn_index, nominator_index, deadline, lot,
       passed_players, created_at, updated_at
FROM rooms WHERE id = $1`

func (r *Repository) GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

const listPicksSQL = `
SELECT id, room_id, participant_id, player_id, pick_number, round, auto_picked, picked_at
FROM draft_picks WHERE room_id = $1 ORDER BY pick_number`

func (r *Repository) ListPicks(ctx context.Context, roomID uuid.UUID) ([]models.DraftPick, error) {
	rows, err := r.db.QueryContext(ctx, listPicksSQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}
	defer rows.Close()

	var picks []models.DraftPick
	for rows.Next() {
		var p models.DraftPick
		if err := rows.Scan(&p.ID, &p.RoomID, &p.ParticipantID, &p.PlayerID,
			&p.PickNumber, &p.Round, &p.AutoPicked, &p.PickedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

const listSalesSQL = `
SELECT id, room_id, participant_id, player_id, amount, sale_number, sold_at
FROM auction_sales WHERE room_id = $1 ORDER BY sale_number`

func (r *Repository) ListSales(ctx context.Context, roomID uuid.UUID) ([]models.AuctionSale, error) {
	rows, err := r.db.QueryContext(ctx, listSalesSQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []models.AuctionSale
	for rows.Next() {
		var s models.AuctionSale
		if err := rows.Scan(&s.ID, &s.RoomID, &s.ParticipantID, &s.PlayerID,
			&s.Amount, &s.SaleNumber, &s.SoldAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

const updateRoomSQL = `
UPDATE rooms
SET status = $2, round_number = $3, turn_index = $4, nominator_index = $5,
    deadline = $6, lot = $7, passed_players = $8, updated_at = NOW()
WHERE id = $1`

const insertPickSQL = `
INSERT INTO draft_picks (id, room_id, participant_id, player_id, pick_number, round, auto_picked, picked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const insertSaleSQL = `
INSERT INTO auction_sales (id, room_id, participant_id, player_id, amount, sale_number, sold_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const insertOutboxSQL = `
INSERT INTO room_outbox (id, room_id, event_type, payload)
VALUES ($1, $2, $3, $4)`

// ApplyTransition writes a state machine transition back in one transaction:
// the room row update, the optional pick/sale append, and the outbox events.
// A failed write rolls everything back and leaves prior state intact.
func (r *Repository) ApplyTransition(ctx context.Context, roomID uuid.UUID, update RoomUpdate,
	pick *models.DraftPick, sale *models.AuctionSale, events []OutboxInsert) error {

	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = txn.Rollback()
		}
	}()

	var lot []byte
	if update.Lot != nil {
		if lot, err = json.Marshal(update.Lot); err != nil {
			return fmt.Errorf("failed to marshal lot: %w", err)
		}
	}
	passed := update.PassedPlayers
	if passed == nil {
		passed = []uuid.UUID{}
	}
	var passedBytes []byte
	if passedBytes, err = json.Marshal(passed); err != nil {
		return fmt.Errorf("failed to marshal passed players: %w", err)
	}

	var deadline sql.NullTime
	if update.Deadline != nil {
		deadline = sql.NullTime{Time: *update.Deadline, Valid: true}
	}
	lotCol := pqtype.NullRawMessage{RawMessage: lot, Valid: lot != nil}

	res, err := txn.ExecContext(ctx, updateRoomSQL, roomID, string(update.Status),
		update.RoundNumber, update.TurnIndex, update.NominatorIndex, deadline, lotCol, passedBytes)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrRoomNotFound
		return err
	}

	if pick != nil {
		if _, err = txn.ExecContext(ctx, insertPickSQL, pick.ID, roomID, pick.ParticipantID,
			pick.PlayerID, pick.PickNumber, pick.Round, pick.AutoPicked, pick.PickedAt); err != nil {
			return fmt.Errorf("failed to insert pick: %w", err)
		}
	}
	if sale != nil {
		if _, err = txn.ExecContext(ctx, insertSaleSQL, sale.ID, roomID, sale.ParticipantID,
			sale.PlayerID, sale.Amount, sale.SaleNumber, sale.SoldAt); err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}
	}
	for _, ev := range events {
		if _, err = txn.ExecContext(ctx, insertOutboxSQL, uuid.New(), roomID, ev.EventType, ev.Payload); err != nil {
			return fmt.Errorf("failed to insert outbox event: %w", err)
		}
	}

	if err = txn.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// NextDeadline is the soonest pending deadline across all in-progress rooms.
type NextDeadline struct {
	RoomID   uuid.UUID
	Deadline *time.Time
}

const fetchNextDeadlineSQL = `
SELECT id, deadline FROM rooms
WHERE status = 'IN_PROGRESS' AND deadline IS NOT NULL
ORDER BY deadline ASC LIMIT 1`

func (r *Repository) FetchNextDeadline(ctx context.Context) (*NextDeadline, error) {
	var nd NextDeadline
	var deadline sql.NullTime
	err := r.db.QueryRowContext(ctx, fetchNextDeadlineSQL).Scan(&nd.RoomID, &deadline)
	if err != nil {
		return nil, err // sql.ErrNoRows surfaces as-is for the timer driver
	}
	if deadline.Valid {
		t := deadline.Time
		nd.Deadline = &t
	}
	return &nd, nil
}

const fetchRoomsDueSQL = `
SELECT id FROM rooms
WHERE status = 'IN_PROGRESS' AND deadline IS NOT NULL AND deadline <= NOW()
ORDER BY deadline ASC LIMIT $1`

// FetchRoomsDue returns rooms whose deadline has elapsed.
func (r *Repository) FetchRoomsDue(ctx context.Context, limit int32) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, fetchRoomsDueSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due rooms: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan room id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*models.Room, error) {
	var (
		room         models.Room
		kind, status string
		settings     []byte
		order        []byte
		deadline     sql.NullTime
		lot          pqtype.NullRawMessage
		passed       []byte
	)
	err := row.Scan(&room.ID, &room.LeagueID, &kind, &status, &settings, &order,
		&room.RoundNumber, &room.TurnIndex, &room.NominatorIndex, &deadline, &lot,
		&passed, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, err
	}

	room.Kind = models.RoomKind(kind)
	room.Status = models.RoomStatus(status)
	if err := json.Unmarshal(settings, &room.Settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room settings: %w", err)
	}
	if err := json.Unmarshal(order, &room.ParticipantOrder); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant order: %w", err)
	}
	if deadline.Valid {
		t := deadline.Time
		room.Deadline = &t
	}
	if lot.Valid {
		var l models.Lot
		if err := json.Unmarshal(lot.RawMessage, &l); err != nil {
			return nil, fmt.Errorf("failed to unmarshal lot: %w", err)
		}
		room.Lot = &l
	}
	if len(passed) > 0 {
		if err := json.Unmarshal(passed, &room.PassedPlayers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal passed players: %w", err)
		}
	}
	return &room, nil
}
