package clickhouse

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// Stats aggregates unit and event counts across the whole cache.
// replacementCompliance is replaced / (verified + replaced) as a percentage
// rounded to two decimals, zero when no unit has reached either state.
// verifiedDeliveries counts units that were verified at a site whether or not
// they were later replaced.
func (r *Repository) Stats(ctx context.Context) (*model.Stats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("stats", err, start)
	}()

	stats := &model.Stats{
		StateCounts:     make(map[model.State]uint64),
		EventTypeCounts: make(map[model.EventType]uint64),
	}

	if err = r.stateCounts(ctx, stats); err != nil {
		return nil, err
	}
	if err = r.eventTypeCounts(ctx, stats); err != nil {
		return nil, err
	}

	stats.VerifiedCount = stats.StateCounts[model.StateVerified]
	stats.ReplacedCount = stats.StateCounts[model.StateReplaced]
	stats.LostDamagedCount = stats.StateCounts[model.StateLostOrDamaged]
	stats.VerifiedDeliveries = stats.VerifiedCount + stats.ReplacedCount

	if stats.VerifiedDeliveries > 0 {
		ratio := float64(stats.ReplacedCount) / float64(stats.VerifiedDeliveries) * 100
		stats.ReplacementCompliance = math.Round(ratio*100) / 100
	}

	return stats, nil
}

func (r *Repository) stateCounts(ctx context.Context, stats *model.Stats) error {
	const query = `
SELECT state, count() AS cnt
FROM filter_units FINAL
GROUP BY state`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("query state counts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			state string
			cnt   uint64
		)
		if err := rows.Scan(&state, &cnt); err != nil {
			return fmt.Errorf("scan state count: %w", err)
		}
		stats.StateCounts[model.State(state)] = cnt
		stats.TotalUnits += cnt
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate state counts: %w", err)
	}
	return nil
}

func (r *Repository) eventTypeCounts(ctx context.Context, stats *model.Stats) error {
	const query = `
SELECT event_type, count() AS cnt
FROM filter_events FINAL
GROUP BY event_type`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("query event type counts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var (
			eventType string
			cnt       uint64
		)
		if err := rows.Scan(&eventType, &cnt); err != nil {
			return fmt.Errorf("scan event type count: %w", err)
		}
		stats.EventTypeCounts[model.EventType(eventType)] = cnt
		stats.TotalEvents += cnt
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate event type counts: %w", err)
	}
	return nil
}
