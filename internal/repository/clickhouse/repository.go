// Package clickhouse implements the local cache store over ClickHouse.
// filter_units is a ReplacingMergeTree keyed by unit id and versioned by the
// ledger event timestamp, so re-applying the same event is a no-op and the
// row with the newest last_ts always wins. filter_events is append-only,
// keyed by (tx_id, unit_id) so a replayed transaction overwrites rather than
// duplicates its rows.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE github.com/ClickHouse/clickhouse-go/v2/lib/driver Conn,Rows,Batch
//go:generate mockgen -source=$GOFILE -destination=mocks_metrics_test.go -package=$GOPACKAGE

type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

type Repository struct {
	conn    clickhouse.Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

// Ping reports whether the cache store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("ping", err, start)
	}()

	if err = r.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}
