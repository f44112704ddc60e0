package service

import (
	"context"

	"github.com/clearsourceworks/filtertrace-backend/internal/ledger"
	"github.com/clearsourceworks/filtertrace-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerClient submits committing transactions and evaluates read-only
	// queries against the authoritative ledger.
	LedgerClient interface {
		Submit(ctx context.Context, fn string, args ...string) (*ledger.SubmitResult, error)
		Evaluate(ctx context.Context, fn string, args ...string) ([]byte, error)
	}

	// CacheStore is the local queryable replica of the ledger.
	CacheStore interface {
		UpsertUnits(ctx context.Context, units []model.CachedUnit) error
		InsertEvents(ctx context.Context, events []model.CachedEvent) error
		Unit(ctx context.Context, unitID string) (*model.CachedUnit, bool, error)
		RecentEvents(ctx context.Context, limit uint64) ([]model.CachedEvent, error)
		UnitEvents(ctx context.Context, unitID string) ([]model.CachedEvent, error)
		UnitsByBatch(ctx context.Context, batchID string) ([]model.CachedUnit, error)
		SearchUnits(ctx context.Context, term string, limit uint64) ([]model.CachedUnit, error)
		Stats(ctx context.Context) (*model.Stats, error)
	}

	// EventSink receives the event log rows of a committed transaction.
	EventSink interface {
		Enqueue(ctx context.Context, events []model.CachedEvent) error
	}

	// Metrics counts cache synchronization outcomes.
	Metrics interface {
		ProjectionApplied(eventType string, units int)
		ProjectionDropped(eventType string)
		ReadRepair()
	}

	// SinkMetrics counts event rows lost to failed background flushes.
	SinkMetrics interface {
		FlushDropped(count int)
	}
)
