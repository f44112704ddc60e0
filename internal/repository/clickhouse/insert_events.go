package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// InsertEvents appends event log rows. Rows are keyed by (tx_id, unit_id),
// so replaying a committed transaction overwrites its rows in place.
func (r *Repository) InsertEvents(ctx context.Context, events []model.CachedEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO filter_events (
	tx_id,
	unit_id,
	event_type,
	ts,
	org,
	status,
	metadata
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			event.TxID,
			event.UnitID,
			string(event.EventType),
			event.Ts,
			event.Org,
			event.Status,
			event.Metadata,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
