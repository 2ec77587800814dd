package gateway

import (
	"encoding/json"
	"time"
)

// RoomEvent is the envelope pushed to WebSocket clients.
type RoomEvent struct {
	ID        string          `json:"id"`
	RoomID    string          `json:"room_id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// ClientAction is a command a connected client sends over the socket. The
// same operations are available over the HTTP API; the socket path exists so
// a client in a room never needs a second connection.
type ClientAction struct {
	Action        string `json:"action"`
	ParticipantID string `json:"participant_id"`
	PlayerID      string `json:"player_id,omitempty"`
	Amount        int    `json:"amount,omitempty"`
}

// Client action names. Joining a room is the connection itself; the upgrade
// subscribes the socket to the room's event stream.
const (
	ActionStartRoom       = "start"
	ActionMakePick        = "make_pick"
	ActionNominate        = "nominate"
	ActionPlaceBid        = "place_bid"
	ActionGetState        = "get_state"
	ActionGetPicks        = "get_picks"
	ActionGetAuctionState = "get_auction_state"
)

// Direct reply types for read actions, sent only to the requesting socket.
const (
	replyTypeRoomState    = "RoomState"
	replyTypeRoomPicks    = "RoomPicks"
	replyTypeAuctionState = "AuctionState"
)

// ErrorReply is pushed back to the offending client when an action is
// rejected. Reason holds the stable rejection code.
type ErrorReply struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Reason string `json:"reason"`
}

const errorReplyType = "Error"
