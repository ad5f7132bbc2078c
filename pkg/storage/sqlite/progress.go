package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

const progressCols = `user_id, task_id, is_completed, completed_at, is_claimed, claimed_at, created_at`

func scanProgress(row scanner) (*models.TaskProgress, error) {
	var p models.TaskProgress
	var completed, claimed int
	var completedAt, claimedAt *int64
	var createdAt int64
	if err := row.Scan(&p.UserId, &p.TaskId, &completed, &completedAt, &claimed, &claimedAt, &createdAt); err != nil {
		return nil, err
	}
	p.IsCompleted = completed != 0
	p.CompletedAt = scanMillis(completedAt)
	p.IsClaimed = claimed != 0
	p.ClaimedAt = scanMillis(claimedAt)
	p.CreatedAt = fromMillis(createdAt)
	return &p, nil
}

func (s *Store) EnsureProgress(ctx context.Context, userID, taskID string, now time.Time) (*models.TaskProgress, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO task_progress (user_id, task_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, task_id) DO NOTHING`,
		userID, taskID, toMillis(now),
	)
	if err != nil {
		return nil, queryErr("ensure task progress", err)
	}
	return s.GetProgress(ctx, userID, taskID)
}

func (s *Store) GetProgress(ctx context.Context, userID, taskID string) (*models.TaskProgress, error) {
	return getProgress(ctx, s.db, userID, taskID)
}

func getProgress(ctx context.Context, q querier, userID, taskID string) (*models.TaskProgress, error) {
	p, err := scanProgress(q.QueryRowContext(ctx,
		`SELECT `+progressCols+` FROM task_progress WHERE user_id = ? AND task_id = ?`, userID, taskID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrTaskNotStarted
	}
	if err != nil {
		return nil, queryErr("get task progress", err)
	}
	return p, nil
}

// MarkCompleted only ever moves is_completed from 0 to 1.
func (s *Store) MarkCompleted(ctx context.Context, userID, taskID string, at time.Time) (*models.TaskProgress, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE task_progress SET is_completed = 1, completed_at = ?
		 WHERE user_id = ? AND task_id = ? AND is_completed = 0`,
		toMillis(at), userID, taskID,
	)
	if err != nil {
		return nil, queryErr("mark task progress completed", err)
	}
	return s.GetProgress(ctx, userID, taskID)
}

func (s *Store) ListClaimedProgress(ctx context.Context, userID string) ([]models.TaskProgress, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+progressCols+` FROM task_progress
		 WHERE user_id = ? AND is_claimed = 1
		 ORDER BY claimed_at DESC, task_id`,
		userID,
	)
	if err != nil {
		return nil, queryErr("list claimed task progress", err)
	}
	defer rows.Close()

	var claimed []models.TaskProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, queryErr("scan task progress", err)
		}
		claimed = append(claimed, *p)
	}
	return claimed, rows.Err()
}
