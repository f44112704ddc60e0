package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// SearchUnits returns units whose unit, batch, site, or warehouse id contains
// the term, case-insensitively.
func (r *Repository) SearchUnits(ctx context.Context, term string, limit uint64) ([]model.CachedUnit, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("search_units", err, start)
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
WHERE positionCaseInsensitive(unit_id, ?) > 0
   OR positionCaseInsensitive(batch_id, ?) > 0
   OR positionCaseInsensitive(site_id, ?) > 0
   OR positionCaseInsensitive(warehouse_id, ?) > 0
ORDER BY last_ts DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, term, term, term, term, limit)
	if err != nil {
		return nil, fmt.Errorf("query search units: %w", err)
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
		return nil, fmt.Errorf("iterate search units: %w", err)
	}

	return units, nil
}
