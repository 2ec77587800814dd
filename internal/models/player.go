package models

import "github.com/google/uuid"

// Player is a catalog entry in the shared pool a room drafts from. Rank
// orders the pool for auto-pick (1 is best).
type Player struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Rank     int       `json:"rank"`
}
