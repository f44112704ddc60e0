package ledger

import (
	"context"
	"time"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient decorates a Client with per-operation metrics.
type ObservedClient struct {
	client  Client
	metrics Metrics
}

func NewObservedClient(client Client, metrics Metrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

func (o *ObservedClient) Submit(ctx context.Context, fn string, args ...string) (result *SubmitResult, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("submit:"+fn, err, started)
	}()
	return o.client.Submit(ctx, fn, args...)
}

func (o *ObservedClient) Evaluate(ctx context.Context, fn string, args ...string) (payload []byte, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("evaluate:"+fn, err, started)
	}()
	return o.client.Evaluate(ctx, fn, args...)
}

func (o *ObservedClient) Close() error {
	return o.client.Close()
}
