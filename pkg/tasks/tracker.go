// Package tasks tracks reservation quotas per user and pays out task rewards.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/google/uuid"
)

// recentlyEnded is how long after its end a task is still swept by RefreshActive.
const recentlyEnded = 24 * time.Hour

// Tracker recomputes task progress from reservation history.
type Tracker struct {
	store storage.TaskLedger
	now   func() time.Time
}

func NewTracker(store storage.TaskLedger, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: store, now: now}
}

// RefreshStatus counts the user's qualifying reservations and marks the task
// completed once the quota is met. Completion is never undone.
func (t *Tracker) RefreshStatus(ctx context.Context, userID, taskID string) (*models.TaskStatus, error) {
	if err := validateIDs(userID, taskID); err != nil {
		return nil, err
	}

	task, err := t.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return t.refresh(ctx, userID, task)
}

func (t *Tracker) refresh(ctx context.Context, userID string, task *models.Task) (*models.TaskStatus, error) {
	done, err := t.store.CountReservations(ctx, userID, task.Category, task.StartsAt, task.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("count reservations for task %s: %w", task.Id, err)
	}

	progress, err := t.store.EnsureProgress(ctx, userID, task.Id, t.now().UTC())
	if err != nil {
		return nil, err
	}

	if !progress.IsCompleted && done >= task.RequiredCount {
		progress, err = t.store.MarkCompleted(ctx, userID, task.Id, t.now().UTC())
		if err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "task completed", "userId", userID, "taskId", task.Id, "done", done)
	}

	return &models.TaskStatus{
		TaskId:      task.Id,
		Required:    task.RequiredCount,
		Done:        done,
		IsCompleted: progress.IsCompleted,
		IsClaimed:   progress.IsClaimed,
	}, nil
}

// RefreshForReservation refreshes every task in the reservation's category
// whose window contains the reservation time.
func (t *Tracker) RefreshForReservation(ctx context.Context, userID string, category models.Category, at time.Time) ([]models.TaskStatus, error) {
	tasks, err := t.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var statuses []models.TaskStatus
	for i := range tasks {
		task := &tasks[i]
		if task.Category != category || !task.Covers(at) {
			continue
		}
		status, err := t.refresh(ctx, userID, task)
		if err != nil {
			return statuses, fmt.Errorf("refresh task %s for user %s: %w", task.Id, userID, err)
		}
		statuses = append(statuses, *status)
	}
	return statuses, nil
}

// RefreshActive refreshes every user holding a qualifying reservation for each
// task that is running now or ended within the last day. It keeps going past
// individual failures and returns the number of refreshed (user, task) pairs.
func (t *Tracker) RefreshActive(ctx context.Context) (int, error) {
	now := t.now().UTC()
	tasks, err := t.store.ListTasks(ctx)
	if err != nil {
		return 0, fmt.Errorf("list tasks: %w", err)
	}

	refreshed := 0
	var failures int
	for i := range tasks {
		task := &tasks[i]
		if now.Before(task.StartsAt) || now.After(task.EndsAt.Add(recentlyEnded)) {
			continue
		}

		users, err := t.store.ListReservingUsers(ctx, task.Category, task.StartsAt, task.EndsAt)
		if err != nil {
			slog.ErrorContext(ctx, "failed to list reserving users", "taskId", task.Id, "error", err)
			failures++
			continue
		}

		for _, userID := range users {
			if _, err := t.refresh(ctx, userID, task); err != nil {
				slog.ErrorContext(ctx, "failed to refresh task progress", "taskId", task.Id, "userId", userID, "error", err)
				failures++
				continue
			}
			refreshed++
		}
	}

	if failures > 0 {
		return refreshed, fmt.Errorf("%d task progress refreshes failed", failures)
	}
	return refreshed, nil
}

func validateIDs(userID, taskID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("user id %q: %w", userID, storage.ErrInvalidID)
	}
	if _, err := uuid.Parse(taskID); err != nil {
		return fmt.Errorf("task id %q: %w", taskID, storage.ErrInvalidID)
	}
	return nil
}
