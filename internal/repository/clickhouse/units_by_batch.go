package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// UnitsByBatch returns the cached rows of every unit registered under a batch.
func (r *Repository) UnitsByBatch(ctx context.Context, batchID string) ([]model.CachedUnit, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("units_by_batch", err, start)
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
WHERE batch_id = ?
ORDER BY unit_id ASC`

	rows, err := r.conn.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("query units by batch: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var units []model.CachedUnit
	for rows.Next() {
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
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		unit.State = model.State(state)
		unit.LastEventType = model.EventType(eventType)

		units = append(units, unit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate units by batch: %w", err)
	}

	return units, nil
}
