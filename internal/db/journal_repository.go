package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
)

// JournalRepository stores runs and their simulation events.
type JournalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

// StartRun registers a new run.
func (r *JournalRepository) StartRun(ctx context.Context, runID uuid.UUID, seed int64, profile string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO runs (run_id, seed, profile) VALUES ($1, $2, $3)`,
		runID, seed, profile,
	)
	if err != nil {
		return fmt.Errorf("starting run %s: %w", runID, err)
	}
	return nil
}

// FinishRun stamps the run with its final turn count.
func (r *JournalRepository) FinishRun(ctx context.Context, runID uuid.UUID, turns int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE runs SET finished_at = now(), turns = $2 WHERE run_id = $1`,
		runID, turns,
	)
	if err != nil {
		return fmt.Errorf("finishing run %s: %w", runID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("finishing run %s: %w", runID, pgx.ErrNoRows)
	}
	return nil
}

// InsertEvents bulk-inserts events for a run via COPY.
func (r *JournalRepository) InsertEvents(ctx context.Context, runID uuid.UUID, events []model.Event) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []any{
			runID, ev.Turn, string(ev.Kind), ev.Map,
			ev.Pos.X, ev.Pos.Y, int64(ev.ObjectID), ev.Species, ev.Detail,
		})
	}

	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"sim_events"},
		[]string{"run_id", "turn", "kind", "map_name", "x", "y", "object_id", "species", "detail"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting %d events for run %s: %w", len(events), runID, err)
	}
	return n, nil
}

// LoadEvents returns the events of a run in insertion order.
func (r *JournalRepository) LoadEvents(ctx context.Context, runID uuid.UUID) ([]model.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT turn, kind, map_name, x, y, object_id, species, detail
		FROM sim_events
		WHERE run_id = $1
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("loading events for run %s: %w", runID, err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var (
			ev       model.Event
			kind     string
			objectID int64
		)
		if err := rows.Scan(&ev.Turn, &kind, &ev.Map, &ev.Pos.X, &ev.Pos.Y, &objectID, &ev.Species, &ev.Detail); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		ev.Kind = model.EventKind(kind)
		ev.ObjectID = uint32(objectID)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event rows: %w", err)
	}
	return events, nil
}

// CountEvents returns how many events of kind were recorded for a run.
func (r *JournalRepository) CountEvents(ctx context.Context, runID uuid.UUID, kind model.EventKind) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM sim_events WHERE run_id = $1 AND kind = $2`,
		runID, string(kind),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s events for run %s: %w", kind, runID, err)
	}
	return n, nil
}
