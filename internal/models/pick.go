package models

import (
	"time"

	"github.com/google/uuid"
)

// DraftPick is one entry in a room's append-only pick log. PickNumber is a
// dense 1..N sequence per room.
type DraftPick struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	PickNumber    int       `json:"pick_number"`
	Round         int       `json:"round"`
	AutoPicked    bool      `json:"auto_picked"`
	PickedAt      time.Time `json:"picked_at"`
}
