// Package contract implements the lifecycle ledger contract: the pure
// state-transition logic the ledger network executes on every submitted
// transaction. It owns the authoritative record of each unit.
package contract

import (
	"context"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

type (
	// WorldState is the ledger's key-value view of unit records. Writes are
	// buffered by the surrounding transaction and commit atomically, so an
	// error from any step aborts the whole transaction.
	WorldState interface {
		GetUnit(ctx context.Context, unitID string) (*model.Unit, bool, error)
		PutUnit(ctx context.Context, unit *model.Unit) error
	}
)

// Tx carries the transaction context the ledger runtime assigns at execution
// time: commit-ordered timestamp, submitting organization, transaction id.
type Tx struct {
	ID        string
	Timestamp int64
	Org       string
}

// Contract validates and applies lifecycle transitions.
type Contract struct{}

// New returns a Contract.
func New() *Contract {
	return &Contract{}
}

// RegisterBatch creates every unit of a batch in REGISTERED state. Any unit id
// that already exists aborts the transaction; duplicate registration is an
// error, never a no-op.
func (c *Contract) RegisterBatch(ctx context.Context, state WorldState, tx Tx, batchID string, unitIDs []string) (*model.RegisterResult, error) {
	if batchID == "" {
		return nil, model.NewValidationError("batch id is required")
	}
	if len(unitIDs) == 0 {
		return nil, model.NewValidationError("unit ids must be a non-empty array")
	}

	for _, unitID := range unitIDs {
		if unitID == "" {
			return nil, model.NewValidationError("unit id is required")
		}
		if _, exists, err := state.GetUnit(ctx, unitID); err != nil {
			return nil, err
		} else if exists {
			return nil, model.NewConflictError(unitID)
		}

		unit := &model.Unit{
			UnitID:    unitID,
			BatchID:   batchID,
			State:     model.StateRegistered,
			Org:       tx.Org,
			CreatedAt: tx.Timestamp,
			History: []model.Event{{
				EventType: model.EventRegistered,
				Timestamp: tx.Timestamp,
				Org:       tx.Org,
				BatchID:   batchID,
			}},
		}
		if err := state.PutUnit(ctx, unit); err != nil {
			return nil, err
		}
	}

	return &model.RegisterResult{
		Success:   true,
		BatchID:   batchID,
		UnitCount: len(unitIDs),
		Timestamp: tx.Timestamp,
	}, nil
}

// ShipBatch moves every listed unit from REGISTERED to SHIPPED in one atomic
// transaction and records the destination.
func (c *Contract) ShipBatch(ctx context.Context, state WorldState, tx Tx, batchID, destination string, unitIDs []string) (*model.ShipResult, error) {
	if batchID == "" || destination == "" {
		return nil, model.NewValidationError("batch id and destination are required")
	}
	if len(unitIDs) == 0 {
		return nil, model.NewValidationError("unit ids must be a non-empty array")
	}

	for _, unitID := range unitIDs {
		unit, exists, err := state.GetUnit(ctx, unitID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.NewNotFoundError(unitID)
		}
		if unit.State != model.StateRegistered {
			return nil, model.NewInvalidTransitionError(unitID, "shipped", unit.State, "")
		}

		unit.State = model.StateShipped
		unit.ShippedAt = tx.Timestamp
		unit.Destination = destination
		unit.History = append(unit.History, model.Event{
			EventType:   model.EventShipped,
			Timestamp:   tx.Timestamp,
			Org:         tx.Org,
			Destination: destination,
		})
		if err := state.PutUnit(ctx, unit); err != nil {
			return nil, err
		}
	}

	return &model.ShipResult{
		Success:     true,
		BatchID:     batchID,
		Destination: destination,
		UnitCount:   len(unitIDs),
		Timestamp:   tx.Timestamp,
	}, nil
}

// ReceiveAtWarehouse moves a unit from SHIPPED to RECEIVED.
func (c *Contract) ReceiveAtWarehouse(ctx context.Context, state WorldState, tx Tx, unitID, warehouseID string) (*model.ReceiveResult, error) {
	if unitID == "" || warehouseID == "" {
		return nil, model.NewValidationError("unit id and warehouse id are required")
	}

	unit, exists, err := state.GetUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewNotFoundError(unitID)
	}
	if unit.State != model.StateShipped {
		return nil, model.NewInvalidTransitionError(unitID, "received", unit.State, "")
	}

	unit.State = model.StateReceived
	unit.ReceivedAt = tx.Timestamp
	unit.WarehouseID = warehouseID
	unit.History = append(unit.History, model.Event{
		EventType:   model.EventReceived,
		Timestamp:   tx.Timestamp,
		Org:         tx.Org,
		WarehouseID: warehouseID,
	})
	if err := state.PutUnit(ctx, unit); err != nil {
		return nil, err
	}

	return &model.ReceiveResult{
		Success:     true,
		UnitID:      unitID,
		WarehouseID: warehouseID,
		Timestamp:   tx.Timestamp,
	}, nil
}

// VerifyAtSite moves a unit from RECEIVED to VERIFIED and records the site and
// verifier.
func (c *Contract) VerifyAtSite(ctx context.Context, state WorldState, tx Tx, unitID, siteID, verifierID string) (*model.VerifyResult, error) {
	if unitID == "" || siteID == "" || verifierID == "" {
		return nil, model.NewValidationError("unit id, site id, and verifier id are required")
	}

	unit, exists, err := state.GetUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewNotFoundError(unitID)
	}
	if unit.State != model.StateReceived {
		return nil, model.NewInvalidTransitionError(unitID, "verified", unit.State, "")
	}

	unit.State = model.StateVerified
	unit.VerifiedAt = tx.Timestamp
	unit.SiteID = siteID
	unit.VerifierID = verifierID
	unit.History = append(unit.History, model.Event{
		EventType:  model.EventVerified,
		Timestamp:  tx.Timestamp,
		Org:        tx.Org,
		SiteID:     siteID,
		VerifierID: verifierID,
	})
	if err := state.PutUnit(ctx, unit); err != nil {
		return nil, err
	}

	return &model.VerifyResult{
		Success:    true,
		UnitID:     unitID,
		SiteID:     siteID,
		VerifierID: verifierID,
		Timestamp:  tx.Timestamp,
	}, nil
}

// ReplaceUnit is a dual-unit transition: the old unit moves VERIFIED→REPLACED
// and the new unit moves RECEIVED/REGISTERED→VERIFIED in the same transaction.
// The new unit must already be registered; it is never auto-created here
// because that would bypass registration's uniqueness checks.
func (c *Contract) ReplaceUnit(ctx context.Context, state WorldState, tx Tx, oldUnitID, newUnitID, siteID string) (*model.ReplaceResult, error) {
	if oldUnitID == "" || newUnitID == "" || siteID == "" {
		return nil, model.NewValidationError("old unit id, new unit id, and site id are required")
	}

	oldUnit, exists, err := state.GetUnit(ctx, oldUnitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewNotFoundError(oldUnitID)
	}
	if oldUnit.State != model.StateVerified {
		return nil, model.NewInvalidTransitionError(oldUnitID, "replaced", oldUnit.State, string(model.StateVerified))
	}

	newUnit, exists, err := state.GetUnit(ctx, newUnitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewNotFoundError(newUnitID)
	}
	if newUnit.State != model.StateReceived && newUnit.State != model.StateRegistered {
		return nil, model.NewInvalidTransitionError(newUnitID, "verified", newUnit.State, "RECEIVED or REGISTERED")
	}

	oldUnit.State = model.StateReplaced
	oldUnit.ReplacedAt = tx.Timestamp
	oldUnit.ReplacedBy = newUnitID
	oldUnit.History = append(oldUnit.History, model.Event{
		EventType:  model.EventReplaced,
		Timestamp:  tx.Timestamp,
		Org:        tx.Org,
		ReplacedBy: newUnitID,
		SiteID:     siteID,
	})
	if err := state.PutUnit(ctx, oldUnit); err != nil {
		return nil, err
	}

	newUnit.State = model.StateVerified
	newUnit.VerifiedAt = tx.Timestamp
	newUnit.SiteID = siteID
	newUnit.ReplacedUnit = oldUnitID
	newUnit.History = append(newUnit.History, model.Event{
		EventType:    model.EventVerified,
		Timestamp:    tx.Timestamp,
		Org:          tx.Org,
		SiteID:       siteID,
		ReplacedUnit: oldUnitID,
	})
	if err := state.PutUnit(ctx, newUnit); err != nil {
		return nil, err
	}

	return &model.ReplaceResult{
		Success:   true,
		OldUnitID: oldUnitID,
		NewUnitID: newUnitID,
		SiteID:    siteID,
		Timestamp: tx.Timestamp,
	}, nil
}

// FlagLostDamaged marks a unit LOST_OR_DAMAGED from any non-terminal state.
func (c *Contract) FlagLostDamaged(ctx context.Context, state WorldState, tx Tx, unitID string, reason model.FlagReason) (*model.FlagResult, error) {
	if unitID == "" || reason == "" {
		return nil, model.NewValidationError("unit id and reason are required")
	}
	if !model.KnownFlagReason(reason) {
		return nil, model.NewValidationError("reason must be either LOST or DAMAGED")
	}

	unit, exists, err := state.GetUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewNotFoundError(unitID)
	}
	if unit.State.Terminal() {
		return nil, model.NewInvalidTransitionError(unitID, "flagged", unit.State, "")
	}

	unit.State = model.StateLostOrDamaged
	unit.FlaggedAt = tx.Timestamp
	unit.FlagReason = reason
	unit.History = append(unit.History, model.Event{
		EventType: model.EventFlagged,
		Timestamp: tx.Timestamp,
		Org:       tx.Org,
		Reason:    reason,
	})
	if err := state.PutUnit(ctx, unit); err != nil {
		return nil, err
	}

	return &model.FlagResult{
		Success:   true,
		UnitID:    unitID,
		Reason:    reason,
		Timestamp: tx.Timestamp,
	}, nil
}

// ReadUnit returns the full current snapshot plus complete history. Pure
// query, no side effects on ledger state.
func (c *Contract) ReadUnit(ctx context.Context, state WorldState, unitID string) (*model.Snapshot, error) {
	if unitID == "" {
		return nil, model.NewValidationError("unit id is required")
	}

	unit, exists, err := state.GetUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewNotFoundError(unitID)
	}

	return &model.Snapshot{
		UnitID:       unit.UnitID,
		BatchID:      unit.BatchID,
		State:        unit.State,
		Destination:  unit.Destination,
		WarehouseID:  unit.WarehouseID,
		SiteID:       unit.SiteID,
		VerifierID:   unit.VerifierID,
		ReplacedBy:   unit.ReplacedBy,
		ReplacedUnit: unit.ReplacedUnit,
		FlagReason:   unit.FlagReason,
		History:      unit.History,
		CreatedAt:    unit.CreatedAt,
		LastUpdated:  unit.LastUpdated(),
	}, nil
}
