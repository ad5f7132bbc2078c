package sqlite

import (
	"context"
	"fmt"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/google/uuid"
)

// ClaimReward flips is_claimed and credits the account in one immediate transaction.
// A zero-row flip means another claim won.
func (s *Store) ClaimReward(ctx context.Context, req models.ClaimRequest) (*models.ClaimReceipt, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		if isBusy(err) {
			return nil, fmt.Errorf("begin claim: %w", storage.ErrWriteConflict)
		}
		return nil, queryErr("begin claim", err)
	}
	defer tx.Rollback()

	progress, err := getProgress(ctx, tx, req.UserId, req.TaskId)
	if err != nil {
		return nil, claimError("read progress", err)
	}
	if !progress.IsCompleted {
		return nil, storage.ErrNotCompleted
	}
	if progress.IsClaimed {
		return nil, storage.ErrAlreadyClaimed
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE task_progress SET is_claimed = 1, claimed_at = ?
		 WHERE user_id = ? AND task_id = ? AND is_completed = 1 AND is_claimed = 0`,
		toMillis(req.Now), req.UserId, req.TaskId,
	)
	if err != nil {
		return nil, claimError("flip claim", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, claimError("flip claim", err)
	}
	if n == 0 {
		return nil, storage.ErrAlreadyClaimed
	}

	result, err = tx.ExecContext(ctx,
		`UPDATE accounts SET point_balance = point_balance + ?, version = version + 1 WHERE id = ?`,
		req.RewardPoints, req.UserId,
	)
	if err != nil {
		return nil, claimError("credit account", err)
	}
	n, err = result.RowsAffected()
	if err != nil {
		return nil, claimError("credit account", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("account %s: %w", req.UserId, storage.ErrAccountNotFound)
	}

	err = insertLedgerEntry(ctx, tx, models.LedgerEntry{
		EntryID:     uuid.NewString(),
		AccountID:   req.UserId,
		ReferenceID: req.TaskId,
		Kind:        models.LedgerKindTaskReward,
		Credit:      req.RewardPoints,
		Description: fmt.Sprintf("Reward for task %s", req.TaskId),
		Timestamp:   req.Now,
	})
	if err != nil {
		return nil, claimError("record ledger credit", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, claimError("commit claim", err)
	}

	return &models.ClaimReceipt{
		UserId:        req.UserId,
		TaskId:        req.TaskId,
		PointsAwarded: req.RewardPoints,
		ClaimedAt:     req.Now,
	}, nil
}

func claimError(op string, err error) error {
	if isBusy(err) {
		return fmt.Errorf("%s: %w", op, storage.ErrWriteConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
