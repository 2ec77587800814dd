package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/draftroomhq/draftroom/internal/models"
	"github.com/draftroomhq/draftroom/internal/room"
)

// RoomApp is what the gateway needs from the room application layer.
type RoomApp interface {
	CreateRoom(ctx context.Context, leagueID uuid.UUID, kind models.RoomKind,
		settings models.RoomSettings, participants []uuid.UUID) (*models.Room, error)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error)
	ListPicks(ctx context.Context, roomID uuid.UUID) ([]models.DraftPick, error)
	ListSales(ctx context.Context, roomID uuid.UUID) ([]models.AuctionSale, error)
	StartRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error)
	MakePick(ctx context.Context, roomID, participantID, playerID uuid.UUID) (*models.DraftPick, error)
	Nominate(ctx context.Context, roomID, participantID, playerID uuid.UUID) (*models.Room, error)
	PlaceBid(ctx context.Context, roomID, participantID uuid.UUID, amount int) (*models.Room, error)
	PauseRoom(ctx context.Context, roomID uuid.UUID, reason string) error
	ResumeRoom(ctx context.Context, roomID uuid.UUID) error
	CancelRoom(ctx context.Context, roomID uuid.UUID) error
}

// Service adapts the room app to the socket action protocol.
type Service struct {
	app RoomApp
}

func NewService(app RoomApp) *Service {
	return &Service{app: app}
}

// Dispatch routes one client action to the room app. Validation and ordering
// happen inside the app; the gateway only translates. Read actions return a
// reply for the requesting connection; mutations return nil and surface to
// the whole room through the event stream.
func (s *Service) Dispatch(ctx context.Context, roomID uuid.UUID, action ClientAction) (*RoomEvent, error) {
	switch action.Action {
	case ActionStartRoom:
		_, err := s.app.StartRoom(ctx, roomID)
		return nil, err

	case ActionMakePick:
		participantID, playerID, err := actionIDs(action)
		if err != nil {
			return nil, err
		}
		_, err = s.app.MakePick(ctx, roomID, participantID, playerID)
		return nil, err

	case ActionNominate:
		participantID, playerID, err := actionIDs(action)
		if err != nil {
			return nil, err
		}
		_, err = s.app.Nominate(ctx, roomID, participantID, playerID)
		return nil, err

	case ActionPlaceBid:
		participantID, err := uuid.Parse(action.ParticipantID)
		if err != nil {
			return nil, fmt.Errorf("invalid participant_id: %w", err)
		}
		_, err = s.app.PlaceBid(ctx, roomID, participantID, action.Amount)
		return nil, err

	case ActionGetState:
		resp, err := roomState(ctx, s.app, roomID)
		if err != nil {
			return nil, err
		}
		return directReply(roomID, replyTypeRoomState, resp)

	case ActionGetPicks:
		picks, err := s.app.ListPicks(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if picks == nil {
			picks = []models.DraftPick{}
		}
		return directReply(roomID, replyTypeRoomPicks, picks)

	case ActionGetAuctionState:
		resp, err := roomState(ctx, s.app, roomID)
		if err != nil {
			return nil, err
		}
		sales, err := s.app.ListSales(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if sales == nil {
			sales = []models.AuctionSale{}
		}
		return directReply(roomID, replyTypeAuctionState, AuctionStateResponse{
			RoomID:        resp.RoomID,
			Status:        resp.Status,
			Phase:         resp.Phase,
			NextNominator: resp.NextNominator,
			Deadline:      resp.Deadline,
			Lot:           resp.Lot,
			Budgets:       resp.Budgets,
			Sales:         sales,
		})

	default:
		return nil, fmt.Errorf("unknown action %q", action.Action)
	}
}

func actionIDs(action ClientAction) (participantID, playerID uuid.UUID, err error) {
	participantID, err = uuid.Parse(action.ParticipantID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid participant_id: %w", err)
	}
	playerID, err = uuid.Parse(action.PlayerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid player_id: %w", err)
	}
	return participantID, playerID, nil
}

func directReply(roomID uuid.UUID, replyType string, v any) (*RoomEvent, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reply: %w", err)
	}
	return &RoomEvent{
		ID:        uuid.New().String(),
		RoomID:    roomID.String(),
		Type:      replyType,
		Timestamp: time.Now(),
		Data:      data,
	}, nil
}

func reasonOf(err error) string {
	if err == nil {
		return ""
	}
	return room.ReasonCode(err)
}
