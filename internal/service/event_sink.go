package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/clearsourceworks/filtertrace-backend/internal/model"
	"github.com/clearsourceworks/filtertrace-backend/pkg/batcher"
)

// EventSinkConfig tunes the background event log writer.
type EventSinkConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// DefaultEventSinkConfig returns sane defaults for the event sink.
func DefaultEventSinkConfig() EventSinkConfig {
	return EventSinkConfig{
		FlushSize:     200,
		FlushInterval: 500 * time.Millisecond,
		RPS:           10,
	}
}

// BatchedEventSink buffers event log rows and writes them to the cache store
// in rate-limited batches. A failed flush drops its rows; the ledger holds
// the durable history, so losses are counted and the loop keeps going.
type BatchedEventSink struct {
	batcher *batcher.Batcher[model.CachedEvent]
}

func NewBatchedEventSink(cache CacheStore, metrics SinkMetrics, cfg EventSinkConfig, logger *zap.Logger) *BatchedEventSink {
	if cfg.FlushSize <= 0 || cfg.FlushInterval <= 0 || cfg.RPS <= 0 {
		cfg = DefaultEventSinkConfig()
	}

	b := batcher.New(logger.Named("event-sink"), func(ctx context.Context, events []model.CachedEvent) error {
		return cache.InsertEvents(ctx, events)
	}, cfg.FlushSize, cfg.FlushInterval, cfg.RPS)
	b.OnDropped(metrics.FlushDropped)

	return &BatchedEventSink{batcher: b}
}

// Start begins the background flush loop.
func (s *BatchedEventSink) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop flushes what is buffered and stops the loop.
func (s *BatchedEventSink) Stop() {
	s.batcher.Stop()
}

// Enqueue queues event rows for the next flush.
func (s *BatchedEventSink) Enqueue(ctx context.Context, events []model.CachedEvent) error {
	for _, event := range events {
		if err := s.batcher.Add(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
