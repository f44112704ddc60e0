package contract

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// Chaincode function names as they appear on the wire.
const (
	FnRegisterBatch      = "RegisterBatch"
	FnShipBatch          = "ShipBatch"
	FnReceiveAtWarehouse = "ReceiveAtWarehouse"
	FnVerifyAtSite       = "VerifyAtSite"
	FnReplaceUnit        = "ReplaceUnit"
	FnFlagLostDamaged    = "FlagLostDamaged"
	FnReadUnit           = "ReadUnit"
)

// Invoke dispatches a transaction by function name with string arguments, the
// way the ledger runtime calls the contract. Multi-unit id arguments are
// JSON-encoded arrays. The result payload is JSON.
func (c *Contract) Invoke(ctx context.Context, state WorldState, tx Tx, fn string, args []string) ([]byte, error) {
	switch fn {
	case FnRegisterBatch:
		if len(args) != 2 {
			return nil, argCountError(fn, 2, len(args))
		}
		unitIDs, err := decodeUnitIDs(args[1])
		if err != nil {
			return nil, err
		}
		return marshal(c.RegisterBatch(ctx, state, tx, args[0], unitIDs))

	case FnShipBatch:
		if len(args) != 3 {
			return nil, argCountError(fn, 3, len(args))
		}
		unitIDs, err := decodeUnitIDs(args[2])
		if err != nil {
			return nil, err
		}
		return marshal(c.ShipBatch(ctx, state, tx, args[0], args[1], unitIDs))

	case FnReceiveAtWarehouse:
		if len(args) != 2 {
			return nil, argCountError(fn, 2, len(args))
		}
		return marshal(c.ReceiveAtWarehouse(ctx, state, tx, args[0], args[1]))

	case FnVerifyAtSite:
		if len(args) != 3 {
			return nil, argCountError(fn, 3, len(args))
		}
		return marshal(c.VerifyAtSite(ctx, state, tx, args[0], args[1], args[2]))

	case FnReplaceUnit:
		if len(args) != 3 {
			return nil, argCountError(fn, 3, len(args))
		}
		return marshal(c.ReplaceUnit(ctx, state, tx, args[0], args[1], args[2]))

	case FnFlagLostDamaged:
		if len(args) != 2 {
			return nil, argCountError(fn, 2, len(args))
		}
		return marshal(c.FlagLostDamaged(ctx, state, tx, args[0], model.FlagReason(args[1])))

	case FnReadUnit:
		if len(args) != 1 {
			return nil, argCountError(fn, 1, len(args))
		}
		return marshal(c.ReadUnit(ctx, state, args[0]))

	default:
		return nil, fmt.Errorf("unknown contract function %q", fn)
	}
}

func decodeUnitIDs(raw string) ([]string, error) {
	var unitIDs []string
	if err := json.Unmarshal([]byte(raw), &unitIDs); err != nil {
		return nil, model.NewValidationError("unit ids must be a JSON array: %v", err)
	}
	return unitIDs, nil
}

func argCountError(fn string, want, got int) error {
	return model.NewValidationError("%s requires %d arguments, got %d", fn, want, got)
}

func marshal[T any](result T, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal contract result: %w", err)
	}
	return payload, nil
}
