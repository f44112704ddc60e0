package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// Unit returns the cached current-state row for a unit, or false when the
// unit has never been projected.
func (r *Repository) Unit(ctx context.Context, unitID string) (*model.CachedUnit, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("unit", err, start)
	}()

	const query = `
SELECT
	unit_id,
	state,
	batch_id,
	site_id,
	warehouse_id,
	verifier_id,
	destination,
	last_ts,
	last_event_type
FROM filter_units FINAL
WHERE unit_id = ?`

	rows, err := r.conn.Query(ctx, query, unitID)
	if err != nil {
		return nil, false, fmt.Errorf("query unit: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, false, fmt.Errorf("iterate unit: %w", err)
		}
		return nil, false, nil
	}

	var (
		unit      model.CachedUnit
		state     string
		eventType string
	)
	if err = rows.Scan(
		&unit.UnitID,
		&state,
		&unit.BatchID,
		&unit.SiteID,
		&unit.WarehouseID,
		&unit.VerifierID,
		&unit.Destination,
		&unit.LastTs,
		&eventType,
	); err != nil {
		return nil, false, fmt.Errorf("scan unit: %w", err)
	}
	unit.State = model.State(state)
	unit.LastEventType = model.EventType(eventType)

	if err = rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate unit: %w", err)
	}

	return &unit, true, nil
}
