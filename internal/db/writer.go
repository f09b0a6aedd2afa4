package db

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
)

// shutdownFlushTimeout bounds the final flush after the run context is cancelled.
const shutdownFlushTimeout = 5 * time.Second

// EventStore persists batches of events.
type EventStore interface {
	InsertEvents(ctx context.Context, runID uuid.UUID, events []model.Event) (int64, error)
}

// WriterStats counts journal outcomes.
type WriterStats struct {
	Written int64
	Dropped int64
	Failed  int64 // events lost to store errors
}

// EventWriter batches simulation events into an EventStore from its own goroutine.
// Record is safe to call from the simulation goroutine and never blocks it.
type EventWriter struct {
	runID         uuid.UUID
	store         EventStore
	events        chan model.Event
	batchSize     int
	flushInterval time.Duration

	closed  atomic.Bool
	written atomic.Int64
	dropped atomic.Int64
	failed  atomic.Int64
}

// NewEventWriter creates a writer with a queue of bufferSize events.
func NewEventWriter(runID uuid.UUID, store EventStore, bufferSize, batchSize int, flushInterval time.Duration) *EventWriter {
	return &EventWriter{
		runID:         runID,
		store:         store,
		events:        make(chan model.Event, bufferSize),
		batchSize:     batchSize,
		flushInterval: flushInterval,
	}
}

// Record queues ev. When the queue is full the event is dropped.
func (w *EventWriter) Record(ev model.Event) {
	if w.closed.Load() {
		return
	}
	select {
	case w.events <- ev:
	default:
		if n := w.dropped.Add(1); n == 1 || n%1000 == 0 {
			slog.Warn("journal queue full, dropping events", "dropped", n, "turn", ev.Turn)
		}
	}
}

// Close stops accepting events. Run drains what is queued and returns.
// Close must be called from the goroutine that calls Record.
func (w *EventWriter) Close() {
	if w.closed.CompareAndSwap(false, true) {
		close(w.events)
	}
}

// Run writes batches until Close is called or ctx is cancelled.
// Queued events are flushed before returning in both cases.
func (w *EventWriter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	batch := make([]model.Event, 0, w.batchSize)
	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		n, err := w.store.InsertEvents(ctx, w.runID, batch)
		if err != nil {
			w.failed.Add(int64(len(batch)))
			slog.Error("journal flush failed", "runID", w.runID, "events", len(batch), "error", err)
		} else {
			w.written.Add(n)
		}
		batch = batch[:0]
	}

	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				flush(ctx)
				slog.Info("journal writer stopped", "runID", w.runID, "written", w.written.Load())
				return nil
			}
			batch = append(batch, ev)
			if len(batch) >= w.batchSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)

		case <-ctx.Done():
			drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownFlushTimeout)
			w.drain(&batch)
			flush(drainCtx)
			cancel()
			slog.Info("journal writer stopping", "runID", w.runID, "written", w.written.Load())
			return ctx.Err()
		}
	}
}

// drain moves whatever is queued right now into batch without waiting.
func (w *EventWriter) drain(batch *[]model.Event) {
	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				return
			}
			*batch = append(*batch, ev)
		default:
			return
		}
	}
}

// Stats returns journal counters.
func (w *EventWriter) Stats() WriterStats {
	return WriterStats{
		Written: w.written.Load(),
		Dropped: w.dropped.Load(),
		Failed:  w.failed.Load(),
	}
}
