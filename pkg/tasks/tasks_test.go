package tasks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/chris/points-ledger/pkg/storage/mocks"
	"github.com/chris/points-ledger/pkg/storage/sqlite"
	"github.com/chris/points-ledger/pkg/txretry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	jan1  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan10 = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	jan31 = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type fixture struct {
	store  *sqlite.Store
	userID string
	task   *models.Task
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store := sqlite.New(db)

	account, err := store.CreateAccount(ctx, &models.Account{Id: uuid.NewString(), Role: models.RoleUser, PointBalance: 1000, CreatedAt: jan1})
	require.NoError(t, err)

	task, err := store.CreateTask(ctx, &models.Task{
		Id:            uuid.NewString(),
		Title:         "Cinema January",
		Category:      models.CategoryCinema,
		RequiredCount: 2,
		StartsAt:      jan1,
		EndsAt:        jan31,
		RewardPoints:  100,
		CreatedAt:     jan1,
		UpdatedAt:     jan1,
	})
	require.NoError(t, err)

	return &fixture{store: store, userID: account.Id, task: task}
}

func (f *fixture) reserve(t *testing.T, category models.Category, at time.Time) {
	t.Helper()
	ctx := context.Background()
	offer, err := f.store.CreateOffer(ctx, &models.Offer{
		Id:                uuid.NewString(),
		PartnerId:         uuid.NewString(),
		Title:             "Screening",
		Price:             10,
		Category:          category,
		RemainingCapacity: 10,
		StartsAt:          jan1.Add(-24 * time.Hour),
		CreatedAt:         jan1,
	})
	require.NoError(t, err)
	_, err = f.store.ReserveOffer(ctx, models.ReserveRequest{UserId: f.userID, OfferId: offer.Id, Now: at, EnforceWindow: true})
	require.NoError(t, err)
}

func TestTaskScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tracker := NewTracker(f.store, fixedClock(jan10))
	claims := NewClaimAuthority(f.store, txretry.DefaultPolicy(), fixedClock(jan10))

	status, err := tracker.RefreshStatus(ctx, f.userID, f.task.Id)
	require.NoError(t, err)
	assert.Equal(t, &models.TaskStatus{TaskId: f.task.Id, Required: 2, Done: 0}, status)

	_, err = claims.Claim(ctx, f.userID, f.task.Id)
	assert.ErrorIs(t, err, storage.ErrNotCompleted)

	f.reserve(t, models.CategoryCinema, jan1)
	f.reserve(t, models.CategoryBooks, jan10)
	f.reserve(t, models.CategoryCinema, jan31)

	status, err = tracker.RefreshStatus(ctx, f.userID, f.task.Id)
	require.NoError(t, err)
	assert.Equal(t, &models.TaskStatus{TaskId: f.task.Id, Required: 2, Done: 2, IsCompleted: true}, status)

	receipt, err := claims.Claim(ctx, f.userID, f.task.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(100), receipt.PointsAwarded)

	account, err := f.store.GetAccount(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000-30+100), account.PointBalance)

	_, err = claims.Claim(ctx, f.userID, f.task.Id)
	assert.ErrorIs(t, err, storage.ErrAlreadyClaimed)

	status, err = tracker.RefreshStatus(ctx, f.userID, f.task.Id)
	require.NoError(t, err)
	assert.True(t, status.IsClaimed)
}

func TestClaimAuthority(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Started", func(t *testing.T) {
		f := newFixture(t)
		claims := NewClaimAuthority(f.store, txretry.DefaultPolicy(), fixedClock(jan10))

		_, err := claims.Claim(ctx, f.userID, f.task.Id)
		assert.ErrorIs(t, err, storage.ErrTaskNotStarted)
	})

	t.Run("Deleted Task", func(t *testing.T) {
		f := newFixture(t)
		claims := NewClaimAuthority(f.store, txretry.DefaultPolicy(), fixedClock(jan10))
		require.NoError(t, f.store.DeleteTask(ctx, f.task.Id))

		_, err := claims.Claim(ctx, f.userID, f.task.Id)
		assert.ErrorIs(t, err, storage.ErrTaskNotFound)
	})

	t.Run("Invalid IDs", func(t *testing.T) {
		claims := NewClaimAuthority(mocks.NewTaskLedger(t), txretry.DefaultPolicy(), nil)

		_, err := claims.Claim(ctx, "42", uuid.NewString())
		assert.ErrorIs(t, err, storage.ErrInvalidID)
	})

	t.Run("Concurrent Claims Credit Once", func(t *testing.T) {
		f := newFixture(t)
		tracker := NewTracker(f.store, fixedClock(jan10))
		claims := NewClaimAuthority(f.store, txretry.DefaultPolicy(), fixedClock(jan10))
		f.reserve(t, models.CategoryCinema, jan10)
		f.reserve(t, models.CategoryCinema, jan10)
		_, err := tracker.RefreshStatus(ctx, f.userID, f.task.Id)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = claims.Claim(ctx, f.userID, f.task.Id)
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, storage.ErrAlreadyClaimed)
		}
		assert.Equal(t, 1, succeeded)

		account, err := f.store.GetAccount(ctx, f.userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1000-20+100), account.PointBalance)
	})

	t.Run("Conflict Is Retried", func(t *testing.T) {
		store := mocks.NewTaskLedger(t)
		claims := NewClaimAuthority(store, txretry.Policy{Attempts: 3, BaseDelay: time.Millisecond}, fixedClock(jan10))
		userID, taskID := uuid.NewString(), uuid.NewString()
		receipt := &models.ClaimReceipt{UserId: userID, TaskId: taskID, PointsAwarded: 100, ClaimedAt: jan10}

		store.On("GetTask", mock.Anything, taskID).Return(&models.Task{Id: taskID, RewardPoints: 100}, nil).Once()
		store.On("ClaimReward", mock.Anything, models.ClaimRequest{UserId: userID, TaskId: taskID, RewardPoints: 100, Now: jan10}).
			Return(nil, storage.ErrWriteConflict).Once()
		store.On("ClaimReward", mock.Anything, mock.Anything).Return(receipt, nil).Once()

		got, err := claims.Claim(ctx, userID, taskID)
		require.NoError(t, err)
		assert.Equal(t, receipt, got)
	})
}

func TestTracker_CompletionIsMonotonic(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewTaskLedger(t)
	tracker := NewTracker(store, fixedClock(jan10))
	userID, taskID := uuid.NewString(), uuid.NewString()
	task := &models.Task{Id: taskID, Category: models.CategoryBooks, RequiredCount: 5, StartsAt: jan1, EndsAt: jan31}
	completedAt := jan1

	store.On("GetTask", mock.Anything, taskID).Return(task, nil).Once()
	store.On("CountReservations", mock.Anything, userID, models.CategoryBooks, jan1, jan31).Return(1, nil).Once()
	store.On("EnsureProgress", mock.Anything, userID, taskID, jan10).
		Return(&models.TaskProgress{UserId: userID, TaskId: taskID, IsCompleted: true, CompletedAt: &completedAt}, nil).Once()

	status, err := tracker.RefreshStatus(ctx, userID, taskID)

	require.NoError(t, err)
	assert.Equal(t, 1, status.Done)
	assert.True(t, status.IsCompleted)
	store.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTracker_Refreshes(t *testing.T) {
	ctx := context.Background()

	t.Run("For Reservation", func(t *testing.T) {
		f := newFixture(t)
		tracker := NewTracker(f.store, fixedClock(jan10))
		f.reserve(t, models.CategoryCinema, jan10)
		f.reserve(t, models.CategoryCinema, jan10.Add(time.Hour))

		statuses, err := tracker.RefreshForReservation(ctx, f.userID, models.CategoryCinema, jan10)
		require.NoError(t, err)
		require.Len(t, statuses, 1)
		assert.True(t, statuses[0].IsCompleted)

		statuses, err = tracker.RefreshForReservation(ctx, f.userID, models.CategoryBooks, jan10)
		require.NoError(t, err)
		assert.Empty(t, statuses)
	})

	t.Run("Active Sweep", func(t *testing.T) {
		f := newFixture(t)
		f.reserve(t, models.CategoryCinema, jan10)
		f.reserve(t, models.CategoryCinema, jan10)

		refreshed, err := NewTracker(f.store, fixedClock(jan31.Add(12*time.Hour))).RefreshActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, refreshed)

		progress, err := f.store.GetProgress(ctx, f.userID, f.task.Id)
		require.NoError(t, err)
		assert.True(t, progress.IsCompleted)

		refreshed, err = NewTracker(f.store, fixedClock(jan31.Add(48*time.Hour))).RefreshActive(ctx)
		require.NoError(t, err)
		assert.Zero(t, refreshed)
	})
}
