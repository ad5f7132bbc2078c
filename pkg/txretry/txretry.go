// Package txretry retries store operations that lost an optimistic write race.
package txretry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/points-ledger/pkg/storage"
	"github.com/sethvargo/go-retry"
)

// Policy bounds how often a conflicting write is re-run.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultPolicy makes three attempts starting at a 20ms backoff.
func DefaultPolicy() Policy {
	return Policy{Attempts: 3, BaseDelay: 20 * time.Millisecond}
}

func (p Policy) backoff() retry.Backoff {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	base := p.BaseDelay
	if base <= 0 {
		base = time.Millisecond
	}
	return retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(base))
}

// Do runs fn until it succeeds, fails with anything other than
// storage.ErrWriteConflict, or the policy is used up. Running out of attempts
// is reported as storage.ErrUnavailable.
func Do[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0
	v, err := retry.DoValue(ctx, p.backoff(), func(ctx context.Context) (T, error) {
		attempt++
		v, err := fn(ctx)
		if errors.Is(err, storage.ErrWriteConflict) {
			slog.WarnContext(ctx, "write conflict, retrying", "op", op, "attempt", attempt, "error", err)
			return v, retry.RetryableError(err)
		}
		return v, err
	})
	if errors.Is(err, storage.ErrWriteConflict) {
		var zero T
		return zero, fmt.Errorf("%s: %w after %d attempts: %v", op, storage.ErrUnavailable, attempt, err)
	}
	return v, err
}
