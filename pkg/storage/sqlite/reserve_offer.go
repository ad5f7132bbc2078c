package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/google/uuid"
)

// ReserveOffer runs the precondition checks and all four writes inside one
// immediate transaction.
func (s *Store) ReserveOffer(ctx context.Context, req models.ReserveRequest) (*models.ReservationReceipt, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		if isBusy(err) {
			return nil, fmt.Errorf("begin reservation: %w", storage.ErrWriteConflict)
		}
		return nil, queryErr("begin reservation", err)
	}
	defer tx.Rollback()

	receipt, err := reserveOffer(ctx, tx, req)
	if err != nil {
		if isBusy(err) {
			return nil, fmt.Errorf("reserve offer %s: %w", req.OfferId, storage.ErrWriteConflict)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		if isBusy(err) {
			return nil, fmt.Errorf("commit reservation: %w", storage.ErrWriteConflict)
		}
		return nil, queryErr("commit reservation", err)
	}
	return receipt, nil
}

func reserveOffer(ctx context.Context, tx *sql.Tx, req models.ReserveRequest) (*models.ReservationReceipt, error) {
	existing, err := getReservation(ctx, tx, req.UserId, req.OfferId)
	if err == nil {
		return nil, &storage.AlreadyReservedError{ReservationID: existing.Id}
	}
	if !errors.Is(err, storage.ErrReservationNotFound) {
		return nil, err
	}

	offer, err := getOffer(ctx, tx, req.OfferId)
	if err != nil {
		return nil, err
	}
	if offer.RemainingCapacity <= 0 {
		return nil, storage.ErrCapacityExhausted
	}

	account, err := getAccount(ctx, tx, req.UserId)
	if err != nil {
		return nil, err
	}
	if account.PointBalance < offer.Price {
		return nil, &storage.InsufficientPointsError{UserPoints: account.PointBalance, OfferPoints: offer.Price}
	}

	if req.EnforceWindow && !offer.ActiveAt(req.Now) {
		return nil, storage.ErrOfferNotActive
	}

	reservation := models.Reservation{
		Id:        uuid.NewString(),
		UserId:    req.UserId,
		OfferId:   req.OfferId,
		Category:  offer.Category,
		Price:     offer.Price,
		CreatedAt: fromMillis(toMillis(req.Now)),
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO reservations (`+reservationCols+`) VALUES (?, ?, ?, ?, ?, ?)`,
		reservation.Id, reservation.UserId, reservation.OfferId, reservation.Category, reservation.Price, toMillis(reservation.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, alreadyReserved(ctx, tx, req)
		}
		return nil, queryErr("insert reservation", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE offers SET remaining_capacity = remaining_capacity - 1, reserved_count = reserved_count + 1, version = version + 1
		 WHERE id = ? AND remaining_capacity > 0 AND version = ?`,
		offer.Id, offer.Version,
	)
	if err := expectOneRow(result, err, "decrement offer capacity"); err != nil {
		return nil, err
	}

	result, err = tx.ExecContext(ctx,
		`UPDATE accounts SET point_balance = point_balance - ?, version = version + 1
		 WHERE id = ? AND point_balance >= ? AND version = ?`,
		offer.Price, account.Id, offer.Price, account.Version,
	)
	if err := expectOneRow(result, err, "debit account"); err != nil {
		return nil, err
	}

	err = insertLedgerEntry(ctx, tx, models.LedgerEntry{
		EntryID:     uuid.NewString(),
		AccountID:   account.Id,
		ReferenceID: reservation.Id,
		Kind:        models.LedgerKindReservation,
		Debit:       offer.Price,
		Description: fmt.Sprintf("Reservation of offer %s", offer.Id),
		Timestamp:   req.Now,
	})
	if err != nil {
		return nil, err
	}

	return &models.ReservationReceipt{
		Reservation:     reservation,
		RemainingPoints: account.PointBalance - offer.Price,
	}, nil
}

// alreadyReserved reports the reservation that holds the (user, offer) key.
func alreadyReserved(ctx context.Context, tx *sql.Tx, req models.ReserveRequest) error {
	existing, err := getReservation(ctx, tx, req.UserId, req.OfferId)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrAlreadyReserved, err)
	}
	return &storage.AlreadyReservedError{ReservationID: existing.Id}
}

// expectOneRow turns a guarded UPDATE that matched nothing into a write conflict.
func expectOneRow(result sql.Result, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n != 1 {
		return fmt.Errorf("%s: %w", op, storage.ErrWriteConflict)
	}
	return nil
}
