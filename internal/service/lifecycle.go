package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/clearsourceworks/filtertrace-backend/internal/contract"
	"github.com/clearsourceworks/filtertrace-backend/internal/model"
	"github.com/clearsourceworks/filtertrace-backend/pkg/workerpool"
)

const (
	defaultRecentLimit    = 25
	defaultSearchLimit    = 50
	defaultReceiveWorkers = 4
)

// Lifecycle is the gateway between callers and the ledger. Every write goes
// to the ledger first; the cache is projected only after the transaction
// commits, and a cache failure never fails the write that caused it.
type Lifecycle struct {
	ledger         LedgerClient
	cache          CacheStore
	projector      *Projector
	metrics        Metrics
	logger         *zap.Logger
	org            string
	receiveWorkers int
}

func NewLifecycle(
	ledgerClient LedgerClient,
	cache CacheStore,
	projector *Projector,
	metrics Metrics,
	org string,
	receiveWorkers int,
	logger *zap.Logger,
) *Lifecycle {
	if receiveWorkers <= 0 {
		receiveWorkers = defaultReceiveWorkers
	}
	return &Lifecycle{
		ledger:         ledgerClient,
		cache:          cache,
		projector:      projector,
		metrics:        metrics,
		logger:         logger.Named("lifecycle"),
		org:            org,
		receiveWorkers: receiveWorkers,
	}
}

// RegisterBatch creates a batch of new units on the ledger.
func (s *Lifecycle) RegisterBatch(ctx context.Context, batchID string, unitIDs []string) (*model.RegisterResult, error) {
	if batchID == "" {
		return nil, model.NewValidationError("batch id is required")
	}
	if len(unitIDs) == 0 {
		return nil, model.NewValidationError("at least one unit id is required")
	}

	submitted, err := s.ledger.Submit(ctx, contract.FnRegisterBatch, batchID, mustEncodeIDs(unitIDs))
	if err != nil {
		return nil, err
	}

	var result model.RegisterResult
	if err := json.Unmarshal(submitted.Payload, &result); err != nil {
		return nil, fmt.Errorf("decode register result: %w", err)
	}
	result.TxID = submitted.TransactionID

	updates := make([]UnitUpdate, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		updates = append(updates, UnitUpdate{
			UnitID: unitID,
			Event: model.Event{
				EventType: model.EventRegistered,
				Timestamp: result.Timestamp,
				Org:       s.org,
				BatchID:   batchID,
			},
		})
	}
	s.project(ctx, result.TxID, updates)

	return &result, nil
}

// ShipBatch ships units towards a destination in one atomic ledger call.
// When the caller passes no unit ids, the still-registered units of the batch
// are resolved from the cache.
func (s *Lifecycle) ShipBatch(ctx context.Context, batchID, destination string, unitIDs []string) (*model.ShipResult, error) {
	if batchID == "" {
		return nil, model.NewValidationError("batch id is required")
	}
	if destination == "" {
		return nil, model.NewValidationError("destination is required")
	}

	if len(unitIDs) == 0 {
		cached, err := s.cache.UnitsByBatch(ctx, batchID)
		if err != nil {
			return nil, fmt.Errorf("resolve batch units: %w", err)
		}
		if len(cached) == 0 {
			return nil, &model.NotFoundError{Msg: fmt.Sprintf("batch %s not found", batchID)}
		}
		for _, unit := range cached {
			if unit.State == model.StateRegistered {
				unitIDs = append(unitIDs, unit.UnitID)
			}
		}
		if len(unitIDs) == 0 {
			return nil, model.NewValidationError("batch %s has no registered units to ship", batchID)
		}
	}

	submitted, err := s.ledger.Submit(ctx, contract.FnShipBatch, batchID, destination, mustEncodeIDs(unitIDs))
	if err != nil {
		return nil, err
	}

	var result model.ShipResult
	if err := json.Unmarshal(submitted.Payload, &result); err != nil {
		return nil, fmt.Errorf("decode ship result: %w", err)
	}
	result.TxID = submitted.TransactionID

	updates := make([]UnitUpdate, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		updates = append(updates, UnitUpdate{
			UnitID: unitID,
			Event: model.Event{
				EventType:   model.EventShipped,
				Timestamp:   result.Timestamp,
				Org:         s.org,
				BatchID:     batchID,
				Destination: destination,
			},
		})
	}
	s.project(ctx, result.TxID, updates)

	return &result, nil
}

// Receive marks a single unit received at a warehouse.
func (s *Lifecycle) Receive(ctx context.Context, unitID, warehouseID string) (*model.ReceiveResult, error) {
	if unitID == "" {
		return nil, model.NewValidationError("unit id is required")
	}
	if warehouseID == "" {
		return nil, model.NewValidationError("warehouse id is required")
	}

	submitted, err := s.ledger.Submit(ctx, contract.FnReceiveAtWarehouse, unitID, warehouseID)
	if err != nil {
		return nil, err
	}

	var result model.ReceiveResult
	if err := json.Unmarshal(submitted.Payload, &result); err != nil {
		return nil, fmt.Errorf("decode receive result: %w", err)
	}
	result.TxID = submitted.TransactionID

	s.project(ctx, result.TxID, []UnitUpdate{{
		UnitID: unitID,
		Event: model.Event{
			EventType:   model.EventReceived,
			Timestamp:   result.Timestamp,
			Org:         s.org,
			WarehouseID: warehouseID,
		},
	}})

	return &result, nil
}

// ReceiveBatch receives many units at a warehouse, one ledger transaction per
// unit, fanned out over a worker pool. Units fail independently; the
// operation errors only when not a single unit succeeds.
func (s *Lifecycle) ReceiveBatch(ctx context.Context, unitIDs []string, warehouseID string) (*model.ReceiveBatchResult, error) {
	if len(unitIDs) == 0 {
		return nil, model.NewValidationError("at least one unit id is required")
	}
	if warehouseID == "" {
		return nil, model.NewValidationError("warehouse id is required")
	}

	type receiveOutcome struct {
		unitID string
		result *model.ReceiveResult
	}

	outcomes := make([]receiveOutcome, len(unitIDs))
	for i, unitID := range unitIDs {
		outcomes[i].unitID = unitID
	}

	collected := workerpool.Collect(ctx, s.receiveWorkers, unitIDs, func(ctx context.Context, unitID string) error {
		result, err := s.Receive(ctx, unitID, warehouseID)
		if err != nil {
			return err
		}
		for i := range outcomes {
			if outcomes[i].unitID == unitID {
				outcomes[i].result = result
				break
			}
		}
		return nil
	})

	batch := &model.ReceiveBatchResult{}
	var firstErr error
	for i, outcome := range collected {
		if outcome.Err != nil {
			if firstErr == nil {
				firstErr = outcome.Err
			}
			batch.Failed = append(batch.Failed, model.ReceiveFailure{
				UnitID: outcome.Item,
				Error:  outcome.Err.Error(),
			})
			continue
		}
		batch.Received = append(batch.Received, *outcomes[i].result)
	}

	if len(batch.Received) == 0 {
		return nil, firstErr
	}
	return batch, nil
}

// Verify marks a unit verified as delivered at a site.
func (s *Lifecycle) Verify(ctx context.Context, unitID, siteID, verifierID string) (*model.VerifyResult, error) {
	if unitID == "" {
		return nil, model.NewValidationError("unit id is required")
	}
	if siteID == "" || verifierID == "" {
		return nil, model.NewValidationError("site id and verifier id are required")
	}

	submitted, err := s.ledger.Submit(ctx, contract.FnVerifyAtSite, unitID, siteID, verifierID)
	if err != nil {
		return nil, err
	}

	var result model.VerifyResult
	if err := json.Unmarshal(submitted.Payload, &result); err != nil {
		return nil, fmt.Errorf("decode verify result: %w", err)
	}
	result.TxID = submitted.TransactionID

	s.project(ctx, result.TxID, []UnitUpdate{{
		UnitID: unitID,
		Event: model.Event{
			EventType:  model.EventVerified,
			Timestamp:  result.Timestamp,
			Org:        s.org,
			SiteID:     siteID,
			VerifierID: verifierID,
		},
	}})

	return &result, nil
}

// Replace swaps a verified unit for a replacement in one atomic ledger
// transaction; both units are projected under the same tx id.
func (s *Lifecycle) Replace(ctx context.Context, oldUnitID, newUnitID, siteID string) (*model.ReplaceResult, error) {
	if oldUnitID == "" || newUnitID == "" {
		return nil, model.NewValidationError("old unit id and new unit id are required")
	}
	if siteID == "" {
		return nil, model.NewValidationError("site id is required")
	}

	submitted, err := s.ledger.Submit(ctx, contract.FnReplaceUnit, oldUnitID, newUnitID, siteID)
	if err != nil {
		return nil, err
	}

	var result model.ReplaceResult
	if err := json.Unmarshal(submitted.Payload, &result); err != nil {
		return nil, fmt.Errorf("decode replace result: %w", err)
	}
	result.TxID = submitted.TransactionID

	s.project(ctx, result.TxID, []UnitUpdate{
		{
			UnitID: oldUnitID,
			Event: model.Event{
				EventType:  model.EventReplaced,
				Timestamp:  result.Timestamp,
				Org:        s.org,
				SiteID:     siteID,
				ReplacedBy: newUnitID,
			},
		},
		{
			UnitID: newUnitID,
			Event: model.Event{
				EventType:    model.EventVerified,
				Timestamp:    result.Timestamp,
				Org:          s.org,
				SiteID:       siteID,
				ReplacedUnit: oldUnitID,
			},
		},
	})

	return &result, nil
}

// Flag marks a unit lost or damaged.
func (s *Lifecycle) Flag(ctx context.Context, unitID string, reason model.FlagReason) (*model.FlagResult, error) {
	if unitID == "" {
		return nil, model.NewValidationError("unit id is required")
	}
	if !model.KnownFlagReason(reason) {
		return nil, model.NewValidationError("reason must be either LOST or DAMAGED")
	}

	submitted, err := s.ledger.Submit(ctx, contract.FnFlagLostDamaged, unitID, string(reason))
	if err != nil {
		return nil, err
	}

	var result model.FlagResult
	if err := json.Unmarshal(submitted.Payload, &result); err != nil {
		return nil, fmt.Errorf("decode flag result: %w", err)
	}
	result.TxID = submitted.TransactionID

	s.project(ctx, result.TxID, []UnitUpdate{{
		UnitID: unitID,
		Event: model.Event{
			EventType: model.EventFlagged,
			Timestamp: result.Timestamp,
			Org:       s.org,
			Reason:    reason,
		},
	}})

	return &result, nil
}

// Read returns the authoritative snapshot from the ledger and repairs the
// cached row when it disagrees. The repair is best effort; the snapshot is
// returned either way.
func (s *Lifecycle) Read(ctx context.Context, unitID string) (*model.Snapshot, error) {
	if unitID == "" {
		return nil, model.NewValidationError("unit id is required")
	}

	payload, err := s.ledger.Evaluate(ctx, contract.FnReadUnit, unitID)
	if err != nil {
		return nil, err
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("decode unit snapshot: %w", err)
	}

	repaired, err := s.projector.Reconcile(ctx, &snapshot)
	if err != nil {
		s.logger.Warn("cache reconcile failed",
			zap.String("unit_id", snapshot.UnitID),
			zap.Error(err))
	} else if repaired {
		s.metrics.ReadRepair()
	}

	return &snapshot, nil
}

// RecentEvents returns the newest cached events, most recent first.
func (s *Lifecycle) RecentEvents(ctx context.Context, limit uint64) ([]model.CachedEvent, error) {
	if limit == 0 {
		limit = defaultRecentLimit
	}
	return s.cache.RecentEvents(ctx, limit)
}

// UnitEvents returns a unit's cached event history in chronological order.
func (s *Lifecycle) UnitEvents(ctx context.Context, unitID string) ([]model.CachedEvent, error) {
	if unitID == "" {
		return nil, model.NewValidationError("unit id is required")
	}
	return s.cache.UnitEvents(ctx, unitID)
}

// SearchUnits finds cached units by substring over unit, batch, site, and
// warehouse ids.
func (s *Lifecycle) SearchUnits(ctx context.Context, term string, limit uint64) ([]model.CachedUnit, error) {
	if term == "" {
		return nil, model.NewValidationError("search term is required")
	}
	if limit == 0 {
		limit = defaultSearchLimit
	}
	return s.cache.SearchUnits(ctx, term, limit)
}

// UnitsByBatch returns the cached units of a batch.
func (s *Lifecycle) UnitsByBatch(ctx context.Context, batchID string) ([]model.CachedUnit, error) {
	if batchID == "" {
		return nil, model.NewValidationError("batch id is required")
	}
	return s.cache.UnitsByBatch(ctx, batchID)
}

// Stats returns cache-wide aggregate counts.
func (s *Lifecycle) Stats(ctx context.Context) (*model.Stats, error) {
	return s.cache.Stats(ctx)
}

// project applies a committed transaction to the cache. Failures are logged
// and counted; the ledger write has already succeeded and its result stands.
func (s *Lifecycle) project(ctx context.Context, txID string, updates []UnitUpdate) {
	if len(updates) == 0 {
		return
	}
	eventType := string(updates[0].Event.EventType)

	if err := s.projector.Project(ctx, txID, updates); err != nil {
		s.metrics.ProjectionDropped(eventType)
		s.logger.Warn("cache projection dropped",
			zap.String("tx_id", txID),
			zap.String("event_type", eventType),
			zap.Error(err))
		return
	}
	s.metrics.ProjectionApplied(eventType, len(updates))
}

func mustEncodeIDs(unitIDs []string) string {
	payload, err := json.Marshal(unitIDs)
	if err != nil {
		// A []string cannot fail to marshal.
		panic(err)
	}
	return string(payload)
}
