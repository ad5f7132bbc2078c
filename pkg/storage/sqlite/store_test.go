package sqlite

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan15 = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func seedAccount(t *testing.T, s *Store, balance int64) string {
	t.Helper()
	account := &models.Account{Id: uuid.NewString(), Role: models.RoleUser, PointBalance: balance, CreatedAt: jan15}
	_, err := s.CreateAccount(context.Background(), account)
	require.NoError(t, err)
	return account.Id
}

func seedOffer(t *testing.T, s *Store, price, capacity int64, category models.Category) string {
	t.Helper()
	offer := &models.Offer{
		Id:                uuid.NewString(),
		PartnerId:         uuid.NewString(),
		Title:             "Matinee",
		Price:             price,
		Category:          category,
		RemainingCapacity: capacity,
		StartsAt:          jan15.Add(-30 * 24 * time.Hour),
		CreatedAt:         jan15,
	}
	_, err := s.CreateOffer(context.Background(), offer)
	require.NoError(t, err)
	return offer.Id
}

func reserveAt(s *Store, userID, offerID string, at time.Time) (*models.ReservationReceipt, error) {
	return s.ReserveOffer(context.Background(), models.ReserveRequest{UserId: userID, OfferId: offerID, Now: at, EnforceWindow: true})
}

func TestReserveOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Then Capacity Exhausted", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 100)
		other := seedAccount(t, s, 100)
		offer := seedOffer(t, s, 50, 1, models.CategoryCinema)

		receipt, err := reserveAt(s, user, offer, jan15)
		require.NoError(t, err)
		assert.Equal(t, int64(50), receipt.RemainingPoints)
		assert.Equal(t, models.CategoryCinema, receipt.Reservation.Category)

		account, err := s.GetAccount(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(50), account.PointBalance)
		assert.Equal(t, int64(1), account.Version)

		o, err := s.GetOffer(ctx, offer)
		require.NoError(t, err)
		assert.Equal(t, int64(0), o.RemainingCapacity)

		_, err = reserveAt(s, other, offer, jan15)
		assert.ErrorIs(t, err, storage.ErrCapacityExhausted)

		entries, err := s.ListLedgerEntries(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(50), entries[0].Debit)
		assert.Equal(t, receipt.Reservation.Id, entries[0].ReferenceID)
	})

	t.Run("Insufficient Points", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 100)
		offer := seedOffer(t, s, 150, 1, models.CategoryBooks)

		_, err := reserveAt(s, user, offer, jan15)

		var insufficient *storage.InsufficientPointsError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, int64(100), insufficient.UserPoints)
		assert.Equal(t, int64(150), insufficient.OfferPoints)

		account, err := s.GetAccount(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(100), account.PointBalance)
	})

	t.Run("Already Reserved", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 100)
		offer := seedOffer(t, s, 10, 5, models.CategoryBooks)

		first, err := reserveAt(s, user, offer, jan15)
		require.NoError(t, err)

		_, err = reserveAt(s, user, offer, jan15)
		var already *storage.AlreadyReservedError
		require.True(t, errors.As(err, &already))
		assert.Equal(t, first.Reservation.Id, already.ReservationID)

		// The unique key path reports the same reservation.
		tx, err := s.db.BeginTx(ctx, nil)
		require.NoError(t, err)
		defer tx.Rollback()
		err = alreadyReserved(ctx, tx, models.ReserveRequest{UserId: user, OfferId: offer})
		require.True(t, errors.As(err, &already))
		assert.Equal(t, first.Reservation.Id, already.ReservationID)
	})

	t.Run("Offer Not Active", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 100)
		offer := seedOffer(t, s, 10, 5, models.CategoryMuseums)

		_, err := reserveAt(s, user, offer, jan15.Add(-365*24*time.Hour))
		assert.ErrorIs(t, err, storage.ErrOfferNotActive)
	})

	t.Run("Missing Offer And Account", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 100)
		offer := seedOffer(t, s, 10, 5, models.CategoryMuseums)

		_, err := reserveAt(s, user, uuid.NewString(), jan15)
		assert.ErrorIs(t, err, storage.ErrOfferNotFound)

		_, err = reserveAt(s, uuid.NewString(), offer, jan15)
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
	})
}

func TestReserveOfferConcurrent(t *testing.T) {
	const callers = 8
	ctx := context.Background()

	t.Run("Same User And Offer", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 1000)
		offer := seedOffer(t, s, 100, 10, models.CategoryLibrary)

		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = reserveAt(s, user, offer, jan15)
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, storage.ErrAlreadyReserved)
		}
		assert.Equal(t, 1, succeeded)

		account, err := s.GetAccount(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(900), account.PointBalance)
	})

	t.Run("Last Unit Of Capacity", func(t *testing.T) {
		s := newTestStore(t)
		offer := seedOffer(t, s, 10, 1, models.CategoryCinema)
		users := make([]string, callers)
		for i := range users {
			users[i] = seedAccount(t, s, 100)
		}

		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i, user := range users {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = reserveAt(s, user, offer, jan15)
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, storage.ErrCapacityExhausted)
		}
		assert.Equal(t, 1, succeeded)

		o, err := s.GetOffer(ctx, offer)
		require.NoError(t, err)
		assert.Equal(t, int64(0), o.RemainingCapacity)
	})
}

func TestCountReservations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedAccount(t, s, 1000)
	from := jan15
	to := jan15.Add(24 * time.Hour)

	_, err := reserveAt(s, user, seedOffer(t, s, 1, 5, models.CategoryCinema), from)
	require.NoError(t, err)
	_, err = reserveAt(s, user, seedOffer(t, s, 1, 5, models.CategoryCinema), to)
	require.NoError(t, err)
	_, err = reserveAt(s, user, seedOffer(t, s, 1, 5, models.CategoryCinema), to.Add(time.Millisecond))
	require.NoError(t, err)
	_, err = reserveAt(s, user, seedOffer(t, s, 1, 5, models.CategoryBooks), from)
	require.NoError(t, err)

	count, err := s.CountReservations(ctx, user, models.CategoryCinema, from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "window is inclusive on both ends and filtered by category")

	users, err := s.ListReservingUsers(ctx, models.CategoryCinema, from, to)
	require.NoError(t, err)
	assert.Equal(t, []string{user}, users)

	listed, err := s.ListReservationsByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.True(t, listed[0].CreatedAt.Equal(to.Add(time.Millisecond)))
}

func TestCountReservationsSubSecondWindow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedAccount(t, s, 1000)
	start := time.Date(2024, 1, 15, 10, 0, 0, 500_000_000, time.UTC)
	end := start.Add(time.Hour)

	_, err := reserveAt(s, user, seedOffer(t, s, 1, 5, models.CategoryCinema), start.Add(-300*time.Millisecond))
	require.NoError(t, err)

	count, err := s.CountReservations(ctx, user, models.CategoryCinema, start, end)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = reserveAt(s, user, seedOffer(t, s, 1, 5, models.CategoryCinema), start)
	require.NoError(t, err)

	// A bound with sub-millisecond digits still includes the next whole millisecond.
	count, err = s.CountReservations(ctx, user, models.CategoryCinema, start.Add(-time.Microsecond), end)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	users, err := s.ListReservingUsers(ctx, models.CategoryCinema, start, end)
	require.NoError(t, err)
	assert.Equal(t, []string{user}, users)
}

func TestOfferCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Price Edit Applies To Later Reservations Only", func(t *testing.T) {
		s := newTestStore(t)
		first := seedAccount(t, s, 100)
		second := seedAccount(t, s, 100)
		offerID := seedOffer(t, s, 30, 5, models.CategoryBooks)

		_, err := reserveAt(s, first, offerID, jan15)
		require.NoError(t, err)

		offer, err := s.GetOffer(ctx, offerID)
		require.NoError(t, err)
		offer.Price = 60
		offer.RemainingCapacity = 99
		updated, err := s.UpdateOffer(ctx, offer)
		require.NoError(t, err)
		assert.Equal(t, int64(60), updated.Price)
		assert.Equal(t, int64(4), updated.RemainingCapacity, "capacity is owned by reservations")
		assert.Equal(t, offer.Version+1, updated.Version)

		receipt, err := reserveAt(s, second, offerID, jan15)
		require.NoError(t, err)
		assert.Equal(t, int64(60), receipt.Reservation.Price)
		assert.Equal(t, int64(40), receipt.RemainingPoints)

		earlier, err := s.GetReservation(ctx, first, offerID)
		require.NoError(t, err)
		assert.Equal(t, int64(30), earlier.Price)

		after, err := s.GetOffer(ctx, offerID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), after.ReservedCount)
		assert.Equal(t, int64(3), after.RemainingCapacity)
	})

	t.Run("Update Missing Offer", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.UpdateOffer(ctx, &models.Offer{Id: uuid.NewString(), Title: "Gone", Category: models.CategoryBooks})
		assert.ErrorIs(t, err, storage.ErrOfferNotFound)
	})

	t.Run("Delete Refuses Reserved Offer", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 100)
		reserved := seedOffer(t, s, 10, 5, models.CategoryMuseums)
		unused := seedOffer(t, s, 10, 5, models.CategoryMuseums)

		_, err := reserveAt(s, user, reserved, jan15)
		require.NoError(t, err)

		assert.ErrorIs(t, s.DeleteOffer(ctx, reserved), storage.ErrOfferInUse)
		_, err = s.GetOffer(ctx, reserved)
		require.NoError(t, err)

		require.NoError(t, s.DeleteOffer(ctx, unused))
		_, err = s.GetOffer(ctx, unused)
		assert.ErrorIs(t, err, storage.ErrOfferNotFound)
		assert.ErrorIs(t, s.DeleteOffer(ctx, unused), storage.ErrOfferNotFound)
	})

	t.Run("List By Partner", func(t *testing.T) {
		s := newTestStore(t)
		partner := uuid.NewString()
		for i, title := range []string{"Old", "New"} {
			_, err := s.CreateOffer(ctx, &models.Offer{
				Id:        uuid.NewString(),
				PartnerId: partner,
				Title:     title,
				Price:     5,
				Category:  models.CategoryLibrary,
				StartsAt:  jan15,
				CreatedAt: jan15.Add(time.Duration(i) * time.Hour),
			})
			require.NoError(t, err)
		}
		seedOffer(t, s, 5, 5, models.CategoryLibrary)

		offers, err := s.ListOffersByPartner(ctx, partner)
		require.NoError(t, err)
		require.Len(t, offers, 2)
		assert.Equal(t, "New", offers[0].Title)
		assert.Equal(t, "Old", offers[1].Title)

		all, err := s.ListOffers(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestQueryErr(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Hold the only write lock from a second connection to the same file.
	path := t.TempDir() + "/ledger.db"
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	locker, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { locker.Close() })

	_, err = locker.ExecContext(ctx, `PRAGMA busy_timeout = 0`)
	require.NoError(t, err)
	tx, err := locker.BeginTx(ctx, nil)
	require.NoError(t, err)
	t.Cleanup(func() { tx.Rollback() })

	busy := New(db)
	_, err = busy.db.ExecContext(ctx, `PRAGMA busy_timeout = 0`)
	require.NoError(t, err)
	_, err = busy.CreateAccount(ctx, &models.Account{Id: uuid.NewString(), Role: models.RoleUser, CreatedAt: jan15})
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	_, err = s.GetAccount(ctx, uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrAccountNotFound)
	assert.NotErrorIs(t, err, storage.ErrUnavailable)
}

func TestTaskProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("Completion Is Monotonic", func(t *testing.T) {
		s := newTestStore(t)
		first := jan15
		later := jan15.Add(time.Hour)

		progress, err := s.EnsureProgress(ctx, "user-1", "task-1", first)
		require.NoError(t, err)
		assert.False(t, progress.IsCompleted)

		progress, err = s.MarkCompleted(ctx, "user-1", "task-1", first)
		require.NoError(t, err)
		assert.True(t, progress.IsCompleted)

		progress, err = s.MarkCompleted(ctx, "user-1", "task-1", later)
		require.NoError(t, err)
		require.NotNil(t, progress.CompletedAt)
		assert.True(t, progress.CompletedAt.Equal(first))

		again, err := s.EnsureProgress(ctx, "user-1", "task-1", later)
		require.NoError(t, err)
		assert.True(t, again.IsCompleted)
	})

	t.Run("Claim Preconditions", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 0)
		req := models.ClaimRequest{UserId: user, TaskId: "task-1", RewardPoints: 100, Now: jan15}

		_, err := s.ClaimReward(ctx, req)
		assert.ErrorIs(t, err, storage.ErrTaskNotStarted)

		_, err = s.EnsureProgress(ctx, user, "task-1", jan15)
		require.NoError(t, err)
		_, err = s.ClaimReward(ctx, req)
		assert.ErrorIs(t, err, storage.ErrNotCompleted)

		_, err = s.MarkCompleted(ctx, user, "task-1", jan15)
		require.NoError(t, err)
		receipt, err := s.ClaimReward(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(100), receipt.PointsAwarded)

		_, err = s.ClaimReward(ctx, req)
		assert.ErrorIs(t, err, storage.ErrAlreadyClaimed)

		account, err := s.GetAccount(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(100), account.PointBalance)
	})

	t.Run("Concurrent Claims Credit Once", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 0)
		_, err := s.EnsureProgress(ctx, user, "task-1", jan15)
		require.NoError(t, err)
		_, err = s.MarkCompleted(ctx, user, "task-1", jan15)
		require.NoError(t, err)

		const callers = 8
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = s.ClaimReward(ctx, models.ClaimRequest{UserId: user, TaskId: "task-1", RewardPoints: 25, Now: jan15})
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

		account, err := s.GetAccount(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(25), account.PointBalance)
	})

	t.Run("Claimed History Newest First", func(t *testing.T) {
		s := newTestStore(t)
		user := seedAccount(t, s, 0)
		for i, task := range []string{"task-a", "task-b"} {
			_, err := s.EnsureProgress(ctx, user, task, jan15)
			require.NoError(t, err)
			_, err = s.MarkCompleted(ctx, user, task, jan15)
			require.NoError(t, err)
			_, err = s.ClaimReward(ctx, models.ClaimRequest{UserId: user, TaskId: task, RewardPoints: 10, Now: jan15.Add(time.Duration(i) * time.Hour)})
			require.NoError(t, err)
		}

		claimed, err := s.ListClaimedProgress(ctx, user)
		require.NoError(t, err)
		require.Len(t, claimed, 2)
		assert.Equal(t, "task-b", claimed[0].TaskId)
		assert.Equal(t, "task-a", claimed[1].TaskId)
	})
}

func TestTaskCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	task := &models.Task{
		Id:            uuid.NewString(),
		Title:         "Movie month",
		Category:      models.CategoryCinema,
		RequiredCount: 2,
		StartsAt:      jan15,
		EndsAt:        jan15.Add(14 * 24 * time.Hour),
		RewardPoints:  100,
		CreatedAt:     jan15,
		UpdatedAt:     jan15,
	}

	_, err := s.CreateTask(ctx, task)
	require.NoError(t, err)

	_, err = s.CreateTask(ctx, task)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	task.RequiredCount = 3
	task.UpdatedAt = jan15.Add(time.Hour)
	updated, err := s.UpdateTask(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.RequiredCount)
	assert.True(t, updated.CreatedAt.Equal(jan15))

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.NoError(t, s.DeleteTask(ctx, task.Id))
	_, err = s.GetTask(ctx, task.Id)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
	assert.ErrorIs(t, s.DeleteTask(ctx, task.Id), storage.ErrTaskNotFound)
}
