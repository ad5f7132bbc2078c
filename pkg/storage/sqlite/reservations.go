package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

const reservationCols = `id, user_id, offer_id, category, price, created_at`

func scanReservation(row scanner) (*models.Reservation, error) {
	var r models.Reservation
	var createdAt int64
	if err := row.Scan(&r.Id, &r.UserId, &r.OfferId, &r.Category, &r.Price, &createdAt); err != nil {
		return nil, err
	}
	r.CreatedAt = fromMillis(createdAt)
	return &r, nil
}

func (s *Store) GetReservation(ctx context.Context, userID, offerID string) (*models.Reservation, error) {
	return getReservation(ctx, s.db, userID, offerID)
}

func getReservation(ctx context.Context, q querier, userID, offerID string) (*models.Reservation, error) {
	r, err := scanReservation(q.QueryRowContext(ctx,
		`SELECT `+reservationCols+` FROM reservations WHERE user_id = ? AND offer_id = ?`, userID, offerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrReservationNotFound
	}
	if err != nil {
		return nil, queryErr("get reservation", err)
	}
	return r, nil
}

// ListReservationsByUser returns a user's reservations, newest first.
func (s *Store) ListReservationsByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reservationCols+` FROM reservations WHERE user_id = ? ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, queryErr("list reservations", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, queryErr("scan reservation", err)
		}
		reservations = append(reservations, *r)
	}
	return reservations, rows.Err()
}

func (s *Store) CountReservations(ctx context.Context, userID string, category models.Category, from, to time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations
		 WHERE user_id = ? AND category = ? AND created_at BETWEEN ? AND ?`,
		userID, category, ceilMillis(from), toMillis(to),
	).Scan(&count)
	if err != nil {
		return 0, queryErr("count reservations", err)
	}
	return count, nil
}

func (s *Store) ListReservingUsers(ctx context.Context, category models.Category, from, to time.Time) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT user_id FROM reservations
		 WHERE category = ? AND created_at BETWEEN ? AND ?
		 ORDER BY user_id`,
		category, ceilMillis(from), toMillis(to),
	)
	if err != nil {
		return nil, queryErr("list reserving users", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, queryErr("scan user id", err)
		}
		users = append(users, id)
	}
	return users, rows.Err()
}
