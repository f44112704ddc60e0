package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// RecentEvents returns the newest event log rows, most recent first.
func (r *Repository) RecentEvents(ctx context.Context, limit uint64) ([]model.CachedEvent, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("recent_events", err, start)
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
ORDER BY ts DESC, tx_id DESC, unit_id ASC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent events: %w", err)
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
		return nil, fmt.Errorf("iterate recent events: %w", err)
	}

	return events, nil
}
