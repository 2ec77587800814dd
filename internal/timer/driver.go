// Package timer drives room deadlines. One scheduler goroutine sleeps until
// the soonest persisted deadline, then hands due rooms to a worker pool. The
// store is the source of truth: the driver never caches deadlines, so a
// mutation that moves a deadline only needs to wake the loop.
package timer

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/draftroomhq/draftroom/internal/room"
)

// Clock abstracts time for the scheduler. Production uses
// clockwork.NewRealClock; tests use a FakeClock.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) clockwork.Timer
}

// DeadlineSource reads pending deadlines from the room store.
type DeadlineSource interface {
	FetchNextDeadline(ctx context.Context) (*room.NextDeadline, error)
	FetchRoomsDue(ctx context.Context, limit int32) ([]uuid.UUID, error)
}

// DeadlineHandler processes one elapsed deadline. The handler re-validates
// under the room lock, so a stale fire is a no-op, never a double apply.
type DeadlineHandler interface {
	HandleDeadline(ctx context.Context, roomID uuid.UUID) error
}

type Driver struct {
	source     DeadlineSource
	handler    DeadlineHandler
	batchSize  int32
	clock      Clock
	wakeCh     chan struct{}
	instanceID string

	numWorkers int
	workCh     chan uuid.UUID

	// Dedup so a room due across consecutive sweeps is handled once.
	inFlight   map[uuid.UUID]bool
	inFlightMu sync.Mutex
}

func NewDriver(source DeadlineSource, handler DeadlineHandler, batchSize int32) *Driver {
	numWorkers := 10
	return &Driver{
		source:     source,
		handler:    handler,
		batchSize:  batchSize,
		clock:      clockwork.NewRealClock(),
		wakeCh:     make(chan struct{}, 1),
		instanceID: uuid.New().String()[:8],

		numWorkers: numWorkers,
		workCh:     make(chan uuid.UUID, numWorkers*2),
		inFlight:   make(map[uuid.UUID]bool),
	}
}

// WithClock swaps the clock; call before Run.
func (d *Driver) WithClock(clock Clock) *Driver {
	d.clock = clock
	return d
}

// Wake nudges the scheduler to re-read the next deadline. Safe to call from
// any goroutine; a pending wake is collapsed.
func (d *Driver) Wake() {
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
}

// Run loops until the context is cancelled, sleeping to the next deadline and
// dispatching due rooms to workers.
func (d *Driver) Run(ctx context.Context) error {
	log.Info().Str("instance", d.instanceID).Int("workers", d.numWorkers).Msg("timer driver started")

	var wg sync.WaitGroup
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	for i := 0; i < d.numWorkers; i++ {
		wg.Add(1)
		go d.worker(workerCtx, &wg, i)
	}

	defer func() {
		cancelWorkers()
		close(d.workCh)
		wg.Wait()
		log.Info().Str("instance", d.instanceID).Msg("all timer workers shut down")
	}()

	timer := d.clock.NewTimer(0)
	defer timer.Stop()

	const idlePollDuration = 5 * time.Second
	retryCount := 0
	const maxRetries = 3

	for {
		// Drain a stale wake so it cannot cause a tight loop.
		select {
		case <-d.wakeCh:
		default:
		}

		nd, err := d.source.FetchNextDeadline(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				timer.Reset(idlePollDuration)
				select {
				case <-timer.Chan():
					continue
				case <-ctx.Done():
					log.Info().Str("instance", d.instanceID).Msg("shutdown during idle")
					return nil
				case <-d.wakeCh:
					continue
				}
			}

			retryCount++
			if retryCount <= maxRetries {
				log.Error().
					Err(err).
					Int("retry", retryCount).
					Str("instance", d.instanceID).
					Msg("error fetching next deadline, retrying")
				timer.Reset(time.Second * time.Duration(retryCount))
				select {
				case <-timer.Chan():
					continue
				case <-ctx.Done():
					return nil
				}
			}
			log.Error().Err(err).Str("instance", d.instanceID).Msg("error fetching next deadline after retries")
			return err
		}
		retryCount = 0

		if nd.Deadline == nil {
			timer.Reset(idlePollDuration)
			select {
			case <-timer.Chan():
				continue
			case <-ctx.Done():
				return nil
			case <-d.wakeCh:
				continue
			}
		}

		wait := nd.Deadline.Sub(d.clock.Now())
		if wait > 0 {
			timer.Reset(wait)
			select {
			case <-timer.Chan():
			case <-ctx.Done():
				log.Info().Str("instance", d.instanceID).Msg("shutdown during wait")
				return nil
			case <-d.wakeCh:
				// A sooner deadline may have been written.
				continue
			}
		}

		due, err := d.source.FetchRoomsDue(ctx, d.batchSize)
		if err != nil {
			log.Error().Err(err).Str("instance", d.instanceID).Msg("error fetching due rooms")
			timer.Reset(time.Second)
			select {
			case <-timer.Chan():
				continue
			case <-ctx.Done():
				return nil
			}
		}

		for _, roomID := range due {
			d.inFlightMu.Lock()
			if d.inFlight[roomID] {
				d.inFlightMu.Unlock()
				continue
			}
			d.inFlight[roomID] = true
			d.inFlightMu.Unlock()

			select {
			case <-ctx.Done():
				d.inFlightMu.Lock()
				delete(d.inFlight, roomID)
				d.inFlightMu.Unlock()
				return nil
			case d.workCh <- roomID:
			}
		}
	}
}

func (d *Driver) worker(ctx context.Context, wg *sync.WaitGroup, workerID int) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case roomID, ok := <-d.workCh:
			if !ok {
				return
			}

			log.Debug().
				Str("room_id", roomID.String()).
				Str("instance", d.instanceID).
				Int("worker_id", workerID).
				Msg("handling deadline")

			if err := d.handler.HandleDeadline(ctx, roomID); err != nil {
				log.Error().
					Err(err).
					Str("room_id", roomID.String()).
					Str("instance", d.instanceID).
					Int("worker_id", workerID).
					Msg("deadline handling failed")
			}

			d.inFlightMu.Lock()
			delete(d.inFlight, roomID)
			d.inFlightMu.Unlock()
		}
	}
}
