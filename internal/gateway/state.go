package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/draftroomhq/draftroom/internal/auction"
	"github.com/draftroomhq/draftroom/internal/draft"
	"github.com/draftroomhq/draftroom/internal/models"
)

// roomState reconstructs the full client-facing view of a room. Both the HTTP
// state endpoint and the socket get_state action serve this.
func roomState(ctx context.Context, app RoomApp, roomID uuid.UUID) (*RoomStateResponse, error) {
	rm, err := app.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	resp := &RoomStateResponse{
		RoomID:           rm.ID.String(),
		Kind:             string(rm.Kind),
		Status:           string(rm.Status),
		ParticipantOrder: idStrings(rm.ParticipantOrder),
		Deadline:         rm.Deadline,
	}
	if rm.Deadline != nil {
		remaining := int(time.Until(*rm.Deadline).Seconds())
		if remaining > 0 {
			resp.TimeRemaining = &remaining
		}
	}

	switch rm.Kind {
	case models.RoomKindSnake:
		picks, err := app.ListPicks(ctx, roomID)
		if err != nil {
			return nil, err
		}
		s := draft.Rebuild(rm, picks)
		resp.Round = s.RoundNumber
		resp.CompletedPicks = s.PickCount
		resp.TotalPicks = s.Rounds * len(s.Order)
		if rm.Status == models.RoomStatusInProgress {
			resp.OnClock = draft.CurrentDrafter(s).String()
		}

	case models.RoomKindAuction:
		sales, err := app.ListSales(ctx, roomID)
		if err != nil {
			return nil, err
		}
		s := auction.Rebuild(rm, sales)
		resp.Budgets = make(map[string]int, len(s.Order))
		for _, id := range s.Order {
			resp.Budgets[id.String()] = auction.RemainingBudget(s, id)
		}
		if rm.Status == models.RoomStatusInProgress {
			resp.NextNominator = auction.CurrentNominator(s).String()
			// Between lots the room is waiting on a nomination.
			resp.Phase = string(models.PhaseNominating)
		}
		if rm.Lot != nil {
			resp.Phase = string(rm.Lot.Phase)
			info := &LotInfo{
				PlayerID: rm.Lot.PlayerID.String(),
				Phase:    string(rm.Lot.Phase),
				BidCount: len(rm.Lot.Bids),
			}
			if high := rm.Lot.HighBid(); high != nil {
				info.HighBidder = high.ParticipantID.String()
				info.HighBid = high.Amount
			}
			resp.Lot = info
		}
	}

	return resp, nil
}
