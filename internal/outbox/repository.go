package outbox

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository reads and marks rows of the room_outbox table. Inserts happen in
// the room store's mutation transactions, never here.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const fetchUnsentSQL = `
SELECT id, room_id, event_type, payload, created_at
FROM room_outbox
WHERE sent_at IS NULL
ORDER BY created_at ASC
LIMIT $1`

func (r *Repository) FetchUnsent(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, fetchUnsentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.RoomID, &ev.EventType, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

const fetchByIDSQL = `
SELECT id, room_id, event_type, payload, created_at
FROM room_outbox
WHERE id = $1 AND sent_at IS NULL`

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var ev Event
	err := r.db.QueryRowContext(ctx, fetchByIDSQL, id).
		Scan(&ev.ID, &ev.RoomID, &ev.EventType, &ev.Payload, &ev.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("outbox event not found or already sent")
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}
	return &ev, nil
}

const markSentSQL = `
UPDATE room_outbox SET sent_at = NOW() WHERE id = $1`

func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, markSentSQL, id); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}
