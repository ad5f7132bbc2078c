package storage

import (
	"context"
	"time"

	"github.com/chris/points-ledger/pkg/models"
)

// ProgressStore defines the interface for per-user task progress.
// ClaimReward is the only path that credits an account balance.
type ProgressStore interface {
	// EnsureProgress returns the progress record of (userID, taskID), creating an
	// empty one if none exists. Concurrent callers observe the same record.
	EnsureProgress(ctx context.Context, userID, taskID string, now time.Time) (*models.TaskProgress, error)

	// GetProgress returns the progress record or ErrTaskNotStarted.
	GetProgress(ctx context.Context, userID, taskID string) (*models.TaskProgress, error)

	// MarkCompleted flips is_completed from false to true. If the record is already
	// completed it is returned unchanged.
	MarkCompleted(ctx context.Context, userID, taskID string, at time.Time) (*models.TaskProgress, error)

	// ClaimReward flips is_claimed, credits the account and records a ledger credit
	// in one atomic write.
	ClaimReward(ctx context.Context, req models.ClaimRequest) (*models.ClaimReceipt, error)

	// ListClaimedProgress returns the claimed progress records of a user, most recently claimed first.
	ListClaimedProgress(ctx context.Context, userID string) ([]models.TaskProgress, error)
}
