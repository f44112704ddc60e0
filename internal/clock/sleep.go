// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WaitUntil retries probe every interval until it succeeds, attempts are
// exhausted, or the context ends. The last probe error is returned.
func WaitUntil(ctx context.Context, attempts int, interval time.Duration, probe func(context.Context) error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = probe(ctx); err == nil {
			return nil
		}
		if sleepErr := SleepWithContext(ctx, interval); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}
