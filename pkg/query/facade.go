// Package query exposes the read side of the ledger to clients.
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/google/uuid"
)

// EligibilityChecker evaluates reservation preconditions without committing.
type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, userID, offerID string) (*models.Eligibility, error)
}

// StatusRefresher recomputes the progress of a user on a task.
type StatusRefresher interface {
	RefreshStatus(ctx context.Context, userID, taskID string) (*models.TaskStatus, error)
}

// HistoryReader is the part of the store the facade reads directly.
type HistoryReader interface {
	ListReservationsByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	ListClaimedProgress(ctx context.Context, userID string) ([]models.TaskProgress, error)
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
}

// Facade groups the read-only projections consumed by the UI.
type Facade struct {
	eligibility EligibilityChecker
	status      StatusRefresher
	history     HistoryReader
}

func NewFacade(eligibility EligibilityChecker, status StatusRefresher, history HistoryReader) *Facade {
	return &Facade{eligibility: eligibility, status: status, history: history}
}

func (f *Facade) CheckEligibility(ctx context.Context, userID, offerID string) (*models.Eligibility, error) {
	return f.eligibility.CheckEligibility(ctx, userID, offerID)
}

// TaskStatus may lazily create the progress record of the pair.
func (f *Facade) TaskStatus(ctx context.Context, userID, taskID string) (*models.TaskStatus, error) {
	return f.status.RefreshStatus(ctx, userID, taskID)
}

// ListReservations returns the user's reservations, newest first.
func (f *Facade) ListReservations(ctx context.Context, userID string) ([]models.Reservation, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	return f.history.ListReservationsByUser(ctx, userID)
}

// ListClaimedTasks returns the user's claimed tasks, most recently claimed first.
// A claim whose task has since been deleted is returned with a nil Task.
func (f *Facade) ListClaimedTasks(ctx context.Context, userID string) ([]models.ClaimedTask, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}

	progress, err := f.history.ListClaimedProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	claimed := make([]models.ClaimedTask, 0, len(progress))
	for _, p := range progress {
		task, err := f.history.GetTask(ctx, p.TaskId)
		if err != nil && !errors.Is(err, storage.ErrTaskNotFound) {
			return nil, err
		}
		claimed = append(claimed, models.ClaimedTask{Progress: p, Task: task})
	}
	return claimed, nil
}

func validateUser(userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("user id %q: %w", userID, storage.ErrInvalidID)
	}
	return nil
}
