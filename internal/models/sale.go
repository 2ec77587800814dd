package models

import (
	"time"

	"github.com/google/uuid"
)

// AuctionSale is one entry in a room's append-only sale log. SaleNumber is a
// dense 1..N sequence per room and Amount was the highest bid accepted for
// the nomination that produced it.
type AuctionSale struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	Amount        int       `json:"amount"`
	SaleNumber    int       `json:"sale_number"`
	SoldAt        time.Time `json:"sold_at"`
}
