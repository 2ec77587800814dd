// Package players is the read side of the draftable player catalog. The
// catalog is global; availability is always relative to one room's pick and
// sale logs.
package players

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/draftroomhq/draftroom/internal/models"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const getPlayerSQL = `
SELECT id, name, position, rank FROM players WHERE id = $1`

// GetPlayer returns sql.ErrNoRows for an id not in the catalog.
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var p models.Player
	err := r.db.QueryRowContext(ctx, getPlayerSQL, id).Scan(&p.ID, &p.Name, &p.Position, &p.Rank)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const listAvailableSQL = `
SELECT p.id, p.name, p.position, p.rank
FROM players p
WHERE NOT EXISTS (SELECT 1 FROM draft_picks dp WHERE dp.room_id = $1 AND dp.player_id = p.id)
  AND NOT EXISTS (SELECT 1 FROM auction_sales asl WHERE asl.room_id = $1 AND asl.player_id = p.id)
ORDER BY p.rank ASC`

// ListAvailable returns the players not yet taken in the given room, best
// rank first.
func (r *Repository) ListAvailable(ctx context.Context, roomID uuid.UUID) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, listAvailableSQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list available players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

const topAvailableSQL = listAvailableSQL + ` LIMIT 1`

// TopAvailable returns the best-ranked untaken player, or sql.ErrNoRows when
// the pool for this room is exhausted.
func (r *Repository) TopAvailable(ctx context.Context, roomID uuid.UUID) (*models.Player, error) {
	var p models.Player
	err := r.db.QueryRowContext(ctx, topAvailableSQL, roomID).Scan(&p.ID, &p.Name, &p.Position, &p.Rank)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const countAvailableSQL = `
SELECT COUNT(*)
FROM players p
WHERE NOT EXISTS (SELECT 1 FROM draft_picks dp WHERE dp.room_id = $1 AND dp.player_id = p.id)
  AND NOT EXISTS (SELECT 1 FROM auction_sales asl WHERE asl.room_id = $1 AND asl.player_id = p.id)`

func (r *Repository) CountAvailable(ctx context.Context, roomID uuid.UUID) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countAvailableSQL, roomID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count available players: %w", err)
	}
	return n, nil
}
