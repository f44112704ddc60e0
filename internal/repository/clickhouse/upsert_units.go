package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// UpsertUnits stores full current-state rows for the given units. The engine
// keeps the row with the newest last_ts per unit id, so writing a stale or
// duplicate projection cannot regress a unit.
func (r *Repository) UpsertUnits(ctx context.Context, units []model.CachedUnit) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_units", err, start)
	}()

	if len(units) == 0 {
		return nil
	}

	const query = `
INSERT INTO filter_units (
	unit_id,
	state,
	batch_id,
	site_id,
	warehouse_id,
	verifier_id,
	destination,
	last_ts,
	last_event_type
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare units batch: %w", err)
	}

	for _, unit := range units {
		if err = batch.Append(
			unit.UnitID,
			string(unit.State),
			unit.BatchID,
			unit.SiteID,
			unit.WarehouseID,
			unit.VerifierID,
			unit.Destination,
			unit.LastTs,
			string(unit.LastEventType),
		); err != nil {
			return fmt.Errorf("append unit: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert units: %w", err)
	}
	return nil
}
