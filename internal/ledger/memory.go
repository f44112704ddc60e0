package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clearsourceworks/filtertrace-backend/internal/contract"
	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

// MemoryLedger runs the lifecycle contract in process. A mutex stands in for
// the network's guarantee that writes to the same unit are serialized, and a
// per-transaction write buffer gives the same atomicity as a real ledger
// transaction: nothing is committed unless the whole invocation succeeds.
// Used in tests and as the api-gateway's local development backend.
type MemoryLedger struct {
	mu       sync.Mutex
	contract *contract.Contract
	units    map[string]*model.Unit
	org      string
	now      func() time.Time
}

// NewMemoryLedger returns an empty in-process ledger submitting as org.
func NewMemoryLedger(org string) *MemoryLedger {
	return &MemoryLedger{
		contract: contract.New(),
		units:    make(map[string]*model.Unit),
		org:      org,
		now:      time.Now,
	}
}

// Submit executes fn as a committing transaction with a generated transaction
// id and a server-assigned timestamp.
func (l *MemoryLedger) Submit(ctx context.Context, fn string, args ...string) (*SubmitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := contract.Tx{
		ID:        uuid.NewString(),
		Timestamp: l.now().Unix(),
		Org:       l.org,
	}

	overlay := newOverlayState(l.units)
	payload, err := l.contract.Invoke(ctx, overlay, tx, fn, args)
	if err != nil {
		return nil, err
	}
	overlay.commit(l.units)

	return &SubmitResult{Payload: payload, TransactionID: tx.ID}, nil
}

// Evaluate executes fn as a non-committing query.
func (l *MemoryLedger) Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	overlay := newOverlayState(l.units)
	payload, err := l.contract.Invoke(ctx, overlay, contract.Tx{}, fn, args)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Close implements Client. The memory ledger holds no connection.
func (l *MemoryLedger) Close() error {
	return nil
}

// overlayState buffers writes on top of the committed unit map. Reads hand the
// contract deep copies so an aborted transaction leaves no trace.
type overlayState struct {
	committed map[string]*model.Unit
	pending   map[string]*model.Unit
}

func newOverlayState(committed map[string]*model.Unit) *overlayState {
	return &overlayState{
		committed: committed,
		pending:   make(map[string]*model.Unit),
	}
}

func (s *overlayState) GetUnit(_ context.Context, unitID string) (*model.Unit, bool, error) {
	if unit, ok := s.pending[unitID]; ok {
		return cloneUnit(unit), true, nil
	}
	if unit, ok := s.committed[unitID]; ok {
		return cloneUnit(unit), true, nil
	}
	return nil, false, nil
}

func (s *overlayState) PutUnit(_ context.Context, unit *model.Unit) error {
	s.pending[unit.UnitID] = cloneUnit(unit)
	return nil
}

func (s *overlayState) commit(committed map[string]*model.Unit) {
	for unitID, unit := range s.pending {
		committed[unitID] = unit
	}
}

func cloneUnit(unit *model.Unit) *model.Unit {
	clone := *unit
	clone.History = append([]model.Event(nil), unit.History...)
	return &clone
}
