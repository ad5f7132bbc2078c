package scheduler

//go:generate go run github.com/vektra/mockery/v2 --name=Scheduler --output=mocks

import (
	"context"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/mapping"
	"github.com/chris/points-ledger/pkg/models"
)

// Scheduler defines the interface for a component that queues task progress refreshes.
type Scheduler interface {
	// ScheduleRefresh enqueues a progress refresh for asynchronous processing.
	ScheduleRefresh(ctx context.Context, refresh *api.ProgressRefresh) error
}

// Notifier schedules a progress refresh for every committed reservation.
type Notifier struct {
	Scheduler Scheduler
}

func (n *Notifier) ReservationCommitted(ctx context.Context, receipt *models.ReservationReceipt) error {
	return n.Scheduler.ScheduleRefresh(ctx, mapping.ToApiProgressRefresh(&receipt.Reservation))
}
