package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftroomhq/draftroom/internal/models"
	"github.com/draftroomhq/draftroom/internal/room"
)

// HTTPHandler exposes the room API over JSON HTTP. Reads serve the full
// reconstructed view; writes are thin wrappers over the room app so HTTP and
// WebSocket clients go through the same validation.
type HTTPHandler struct {
	app RoomApp
}

func NewHTTPHandler(app RoomApp) *HTTPHandler {
	return &HTTPHandler{app: app}
}

type createRoomRequest struct {
	LeagueID     string              `json:"league_id"`
	Kind         string              `json:"kind"`
	Settings     models.RoomSettings `json:"settings"`
	Participants []string            `json:"participants"`
}

// RoomStateResponse is the full client-facing view of a room.
type RoomStateResponse struct {
	RoomID           string         `json:"room_id"`
	Kind             string         `json:"kind"`
	Status           string         `json:"status"`
	ParticipantOrder []string       `json:"participant_order"`
	Round            int            `json:"round,omitempty"`
	Phase            string         `json:"phase,omitempty"`
	OnClock          string         `json:"on_clock,omitempty"`
	NextNominator    string         `json:"next_nominator,omitempty"`
	Deadline         *time.Time     `json:"deadline,omitempty"`
	TimeRemaining    *int           `json:"time_remaining_sec,omitempty"`
	CompletedPicks   int            `json:"completed_picks,omitempty"`
	TotalPicks       int            `json:"total_picks,omitempty"`
	Lot              *LotInfo       `json:"lot,omitempty"`
	Budgets          map[string]int `json:"budgets,omitempty"`
}

// LotInfo describes the open auction lot.
type LotInfo struct {
	PlayerID   string `json:"player_id"`
	Phase      string `json:"phase"`
	HighBidder string `json:"high_bidder,omitempty"`
	HighBid    int    `json:"high_bid,omitempty"`
	BidCount   int    `json:"bid_count"`
}

// AuctionStateResponse is the auction view of a room together with its sale
// log, served to the socket get_auction_state action.
type AuctionStateResponse struct {
	RoomID        string               `json:"room_id"`
	Status        string               `json:"status"`
	Phase         string               `json:"phase,omitempty"`
	NextNominator string               `json:"next_nominator,omitempty"`
	Deadline      *time.Time           `json:"deadline,omitempty"`
	Lot           *LotInfo             `json:"lot,omitempty"`
	Budgets       map[string]int       `json:"budgets,omitempty"`
	Sales         []models.AuctionSale `json:"sales"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// RegisterRoutes registers the room API on the mux.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/rooms", h.handleCreateRoom)
	mux.HandleFunc("GET /api/rooms/{id}/state", h.handleGetState)
	mux.HandleFunc("GET /api/rooms/{id}/picks", h.handleListPicks)
	mux.HandleFunc("GET /api/rooms/{id}/sales", h.handleListSales)
	mux.HandleFunc("POST /api/rooms/{id}/start", h.handleStart)
	mux.HandleFunc("POST /api/rooms/{id}/picks", h.handleMakePick)
	mux.HandleFunc("POST /api/rooms/{id}/nominations", h.handleNominate)
	mux.HandleFunc("POST /api/rooms/{id}/bids", h.handlePlaceBid)
	mux.HandleFunc("POST /api/rooms/{id}/pause", h.handlePause)
	mux.HandleFunc("POST /api/rooms/{id}/resume", h.handleResume)
	mux.HandleFunc("DELETE /api/rooms/{id}", h.handleCancel)
	mux.HandleFunc("GET /health", h.handleHealth)
}

func (h *HTTPHandler) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}
	leagueID, err := uuid.Parse(req.LeagueID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}
	participants := make([]uuid.UUID, 0, len(req.Participants))
	for _, p := range req.Participants {
		id, err := uuid.Parse(p)
		if err != nil {
			writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
			return
		}
		participants = append(participants, id)
	}

	created, err := h.app.CreateRoom(r.Context(), leagueID, models.RoomKind(req.Kind), req.Settings, participants)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) handleGetState(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}

	resp, err := roomState(r.Context(), h.app, roomID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) handleListPicks(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	picks, err := h.app.ListPicks(r.Context(), roomID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if picks == nil {
		picks = []models.DraftPick{}
	}
	writeJSON(w, http.StatusOK, picks)
}

func (h *HTTPHandler) handleListSales(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	sales, err := h.app.ListSales(r.Context(), roomID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if sales == nil {
		sales = []models.AuctionSale{}
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *HTTPHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	rm, err := h.app.StartRoom(r.Context(), roomID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (h *HTTPHandler) handleMakePick(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	var req struct {
		ParticipantID string `json:"participant_id"`
		PlayerID      string `json:"player_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}
	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}

	pick, err := h.app.MakePick(r.Context(), roomID, participantID, playerID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pick)
}

func (h *HTTPHandler) handleNominate(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	var req struct {
		ParticipantID string `json:"participant_id"`
		PlayerID      string `json:"player_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}
	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}

	rm, err := h.app.Nominate(r.Context(), roomID, participantID, playerID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (h *HTTPHandler) handlePlaceBid(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	var req struct {
		ParticipantID string `json:"participant_id"`
		Amount        int    `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}
	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return
	}

	rm, err := h.app.PlaceBid(r.Context(), roomID, participantID, req.Amount)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func (h *HTTPHandler) handlePause(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Reason == "" {
		req.Reason = "paused by commissioner"
	}
	if err := h.app.PauseRoom(r.Context(), roomID, req.Reason); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) handleResume(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	if err := h.app.ResumeRoom(r.Context(), roomID); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) handleCancel(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathRoomID(w, r)
	if !ok {
		return
	}
	if err := h.app.CancelRoom(r.Context(), roomID); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func pathRoomID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "BAD_REQUEST")
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error, reason string) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Reason: reason})
}

// writeAppError maps app errors to HTTP statuses: not-found is 404, rule
// violations are 409, everything else is 500.
func writeAppError(w http.ResponseWriter, err error) {
	reason := room.ReasonCode(err)
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		writeError(w, http.StatusNotFound, err, reason)
	case room.IsRejection(err):
		writeError(w, http.StatusConflict, err, reason)
	default:
		log.Error().Err(err).Msg("internal error")
		writeError(w, http.StatusInternalServerError, errors.New("internal error"), reason)
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
