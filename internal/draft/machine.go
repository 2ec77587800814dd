// Package draft is the pure state machine for snake draft rooms. It holds no
// storage or transport concerns: every operation is a function from a State
// value and an input to a new State value or an error, and the room app layer
// is responsible for persisting the result.
package draft

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/draftroomhq/draftroom/internal/models"
)

var (
	ErrNotWaiting    = errors.New("room is not in a startable state")
	ErrNotInProgress = errors.New("room is not in progress")
	ErrWrongTurn     = errors.New("not this participant's turn")
	ErrPlayerTaken   = errors.New("player already picked")
	ErrRosterFull    = errors.New("participant roster is full")
)

// State is the in-memory view of a draft room. Picked and RosterCount are
// derived from the pick log via Rebuild, never persisted independently.
type State struct {
	Status       models.RoomStatus
	Order        []uuid.UUID
	Rounds       int
	SnakeEnabled bool
	PickTime     time.Duration

	RoundNumber int
	TurnIndex   int
	Deadline    *time.Time

	PickCount   int
	Picked      map[uuid.UUID]bool
	RosterCount map[uuid.UUID]int
}

// Rebuild derives a State from the room row and its append-only pick log.
func Rebuild(room *models.Room, picks []models.DraftPick) State {
	s := State{
		Status:       room.Status,
		Order:        room.ParticipantOrder,
		Rounds:       room.Settings.Rounds,
		SnakeEnabled: room.Settings.SnakeEnabled,
		PickTime:     time.Duration(room.Settings.SecondsPerPick) * time.Second,
		RoundNumber:  room.RoundNumber,
		TurnIndex:    room.TurnIndex,
		Deadline:     room.Deadline,
		PickCount:    len(picks),
		Picked:       make(map[uuid.UUID]bool, len(picks)),
		RosterCount:  make(map[uuid.UUID]int, len(room.ParticipantOrder)),
	}
	for _, p := range picks {
		s.Picked[p.PlayerID] = true
		s.RosterCount[p.ParticipantID]++
	}
	return s
}

// CurrentDrafter returns the participant whose turn it is. Even rounds mirror
// the order when snake mode is on; round numbering starts at 1, so round 1 is
// always forward.
func CurrentDrafter(s State) uuid.UUID {
	n := len(s.Order)
	idx := s.TurnIndex % n
	if s.SnakeEnabled && s.RoundNumber%2 == 0 {
		idx = n - 1 - idx
	}
	return s.Order[idx]
}

// ValidatePick checks a proposed pick against the current state without
// mutating anything.
func ValidatePick(s State, participantID, playerID uuid.UUID) error {
	if s.Status != models.RoomStatusInProgress {
		return ErrNotInProgress
	}
	if participantID != CurrentDrafter(s) {
		return ErrWrongTurn
	}
	if s.Picked[playerID] {
		return ErrPlayerTaken
	}
	if s.RosterCount[participantID] >= s.Rounds {
		return ErrRosterFull
	}
	return nil
}

// ApplyPick validates and applies a pick, returning the next state and the
// pick record to append. The turn pointer advances; when it wraps past the
// last participant the round increments and the pointer resets. The deadline
// is re-armed unless the draft is now complete.
func ApplyPick(s State, participantID, playerID uuid.UUID, now time.Time) (State, models.DraftPick, error) {
	if err := ValidatePick(s, participantID, playerID); err != nil {
		return s, models.DraftPick{}, err
	}

	pick := models.DraftPick{
		ID:            uuid.New(),
		ParticipantID: participantID,
		PlayerID:      playerID,
		PickNumber:    s.PickCount + 1,
		Round:         s.RoundNumber,
		PickedAt:      now,
	}

	next := s
	next.PickCount++
	next.Picked = cloneSet(s.Picked)
	next.Picked[playerID] = true
	next.RosterCount = cloneCounts(s.RosterCount)
	next.RosterCount[participantID]++

	next.TurnIndex++
	if next.TurnIndex >= len(next.Order) {
		next.TurnIndex = 0
		next.RoundNumber++
	}

	if next.PickCount >= next.Rounds*len(next.Order) {
		next.Status = models.RoomStatusCompleted
		next.Deadline = nil
	} else {
		deadline := now.Add(next.PickTime)
		next.Deadline = &deadline
	}
	return next, pick, nil
}

// Start transitions a waiting room to in progress and arms the first
// deadline.
func Start(s State, now time.Time) (State, error) {
	if s.Status != models.RoomStatusWaiting {
		return s, ErrNotWaiting
	}
	next := s
	next.Status = models.RoomStatusInProgress
	next.RoundNumber = 1
	next.TurnIndex = 0
	deadline := now.Add(next.PickTime)
	next.Deadline = &deadline
	return next, nil
}

// Complete reports whether every pick slot has been filled.
func Complete(s State) bool {
	return s.PickCount >= s.Rounds*len(s.Order)
}

func cloneSet(m map[uuid.UUID]bool) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneCounts(m map[uuid.UUID]int) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
