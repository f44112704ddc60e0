package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// UnitUpdate names one unit touched by a committed transaction together with
// the event the ledger recorded for it.
type UnitUpdate struct {
	UnitID string
	Event  model.Event
}

// Projector maps committed ledger transactions onto cache rows. It only ever
// writes facts the ledger has already accepted; the cache never leads.
type Projector struct {
	cache  CacheStore
	sink   EventSink
	logger *zap.Logger
}

func NewProjector(cache CacheStore, sink EventSink, logger *zap.Logger) *Projector {
	return &Projector{
		cache:  cache,
		sink:   sink,
		logger: logger.Named("projector"),
	}
}

// Project upserts one full current-state row per updated unit and appends one
// event log row per unit through the sink. The existing cache row supplies
// batch id and every context field the event does not set, so later events
// never erase what earlier ones recorded.
func (p *Projector) Project(ctx context.Context, txID string, updates []UnitUpdate) error {
	units := make([]model.CachedUnit, 0, len(updates))
	events := make([]model.CachedEvent, 0, len(updates))

	for _, update := range updates {
		state, ok := model.StateForEvent(update.Event.EventType)
		if !ok {
			return fmt.Errorf("no state for event type %q", update.Event.EventType)
		}

		row := model.CachedUnit{
			UnitID:        update.UnitID,
			State:         state,
			LastTs:        time.Unix(update.Event.Timestamp, 0).UTC(),
			LastEventType: update.Event.EventType,
		}

		existing, found, err := p.cache.Unit(ctx, update.UnitID)
		if err != nil {
			return fmt.Errorf("read cached unit: %w", err)
		}
		if found {
			row.BatchID = existing.BatchID
			row.SiteID = existing.SiteID
			row.WarehouseID = existing.WarehouseID
			row.VerifierID = existing.VerifierID
			row.Destination = existing.Destination
		}

		if update.Event.BatchID != "" {
			row.BatchID = update.Event.BatchID
		}
		if update.Event.SiteID != "" {
			row.SiteID = update.Event.SiteID
		}
		if update.Event.WarehouseID != "" {
			row.WarehouseID = update.Event.WarehouseID
		}
		if update.Event.VerifierID != "" {
			row.VerifierID = update.Event.VerifierID
		}
		if update.Event.Destination != "" {
			row.Destination = update.Event.Destination
		}

		units = append(units, row)

		metadata, err := json.Marshal(update.Event)
		if err != nil {
			return fmt.Errorf("marshal event metadata: %w", err)
		}
		events = append(events, model.CachedEvent{
			TxID:      txID,
			UnitID:    update.UnitID,
			EventType: update.Event.EventType,
			Ts:        row.LastTs,
			Org:       update.Event.Org,
			Status:    model.EventStatusCommitted,
			Metadata:  string(metadata),
		})
	}

	if err := p.cache.UpsertUnits(ctx, units); err != nil {
		return &model.CacheWriteError{Op: "project units", Err: err}
	}
	if err := p.sink.Enqueue(ctx, events); err != nil {
		return &model.CacheWriteError{Op: "project events", Err: err}
	}
	return nil
}

// Reconcile overwrites the cached row with the ledger's snapshot when the two
// disagree. The ledger wins unconditionally, including fields the cache has
// set and the ledger has not. The event log is left alone. Reports whether a
// repair was written.
func (p *Projector) Reconcile(ctx context.Context, snapshot *model.Snapshot) (bool, error) {
	lastEventType := model.EventType(snapshot.State)
	if n := len(snapshot.History); n > 0 {
		lastEventType = snapshot.History[n-1].EventType
	}

	want := model.CachedUnit{
		UnitID:        snapshot.UnitID,
		State:         snapshot.State,
		BatchID:       snapshot.BatchID,
		SiteID:        snapshot.SiteID,
		WarehouseID:   snapshot.WarehouseID,
		VerifierID:    snapshot.VerifierID,
		Destination:   snapshot.Destination,
		LastTs:        time.Unix(snapshot.LastUpdated, 0).UTC(),
		LastEventType: lastEventType,
	}

	existing, found, err := p.cache.Unit(ctx, snapshot.UnitID)
	if err != nil {
		return false, fmt.Errorf("read cached unit: %w", err)
	}
	if found && existing.Equal(want) {
		return false, nil
	}

	if err := p.cache.UpsertUnits(ctx, []model.CachedUnit{want}); err != nil {
		return false, &model.CacheWriteError{Op: "reconcile unit", Err: err}
	}

	p.logger.Debug("cache row repaired",
		zap.String("unit_id", snapshot.UnitID),
		zap.String("state", string(snapshot.State)))
	return true, nil
}
