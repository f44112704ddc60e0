package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// UnitEvents returns the event log rows for one unit in chronological order.
func (r *Repository) UnitEvents(ctx context.Context, unitID string) ([]model.CachedEvent, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("unit_events", err, start)
	}()

	const query = `
SELECT
	tx_id,
	unit_id,
	event_type,
	ts,
	org,
	status,
	metadata
FROM filter_events FINAL
WHERE unit_id = ?
ORDER BY ts ASC, tx_id ASC`

	rows, err := r.conn.Query(ctx, query, unitID)
	if err != nil {
		return nil, fmt.Errorf("query unit events: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var events []model.CachedEvent
	for rows.Next() {
		var (
			event     model.CachedEvent
			eventType string
		)
		if err = rows.Scan(
			&event.TxID,
			&event.UnitID,
			&eventType,
			&event.Ts,
			&event.Org,
			&event.Status,
			&event.Metadata,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.EventType = model.EventType(eventType)

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unit events: %w", err)
	}

	return events, nil
}
