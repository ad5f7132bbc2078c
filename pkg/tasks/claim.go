package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/chris/points-ledger/pkg/txretry"
)

// ClaimNotifier is told about every committed claim. Its errors are logged and dropped.
type ClaimNotifier interface {
	RewardClaimed(ctx context.Context, receipt *models.ClaimReceipt) error
}

// ClaimAuthority pays out the reward of a completed task exactly once.
type ClaimAuthority struct {
	store     storage.TaskLedger
	retry     txretry.Policy
	now       func() time.Time
	notifiers []ClaimNotifier
}

func NewClaimAuthority(store storage.TaskLedger, retry txretry.Policy, now func() time.Time, notifiers ...ClaimNotifier) *ClaimAuthority {
	if now == nil {
		now = time.Now
	}
	return &ClaimAuthority{store: store, retry: retry, now: now, notifiers: notifiers}
}

// Claim credits the task's reward to the user. It fails with storage.ErrTaskNotStarted,
// storage.ErrNotCompleted or storage.ErrAlreadyClaimed when the progress record does
// not allow it, and with storage.ErrTaskNotFound once the task has been deleted.
func (c *ClaimAuthority) Claim(ctx context.Context, userID, taskID string) (*models.ClaimReceipt, error) {
	if err := validateIDs(userID, taskID); err != nil {
		return nil, err
	}

	task, err := c.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	receipt, err := txretry.Do(ctx, c.retry, "claim task reward", func(ctx context.Context) (*models.ClaimReceipt, error) {
		return c.store.ClaimReward(ctx, models.ClaimRequest{
			UserId:       userID,
			TaskId:       task.Id,
			RewardPoints: task.RewardPoints,
			Now:          c.now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task reward claimed", "userId", userID, "taskId", taskID, "points", receipt.PointsAwarded)

	for _, n := range c.notifiers {
		if err := n.RewardClaimed(ctx, receipt); err != nil {
			slog.ErrorContext(ctx, "failed to notify claim", "userId", userID, "taskId", taskID, "error", err)
		}
	}

	return receipt, nil
}
