package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

const offerCols = `id, partner_id, title, description, location, price, category, remaining_capacity, reserved_count, starts_at, ends_at, version, created_at`

func scanOffer(row scanner) (*models.Offer, error) {
	var o models.Offer
	var startsAt, createdAt int64
	var endsAt *int64
	err := row.Scan(&o.Id, &o.PartnerId, &o.Title, &o.Description, &o.Location, &o.Price, &o.Category,
		&o.RemainingCapacity, &o.ReservedCount, &startsAt, &endsAt, &o.Version, &createdAt)
	if err != nil {
		return nil, err
	}
	o.StartsAt = fromMillis(startsAt)
	o.EndsAt = scanMillis(endsAt)
	o.CreatedAt = fromMillis(createdAt)
	return &o, nil
}

func (s *Store) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO offers (`+offerCols+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		offer.Id, offer.PartnerId, offer.Title, offer.Description, offer.Location, offer.Price, offer.Category,
		offer.RemainingCapacity, offer.ReservedCount, toMillis(offer.StartsAt), nullMillis(offer.EndsAt), offer.Version, toMillis(offer.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("offer %s: %w", offer.Id, storage.ErrAlreadyExists)
		}
		return nil, queryErr("insert offer", err)
	}
	return offer, nil
}

func (s *Store) GetOffer(ctx context.Context, offerID string) (*models.Offer, error) {
	return getOffer(ctx, s.db, offerID)
}

func getOffer(ctx context.Context, q querier, offerID string) (*models.Offer, error) {
	o, err := scanOffer(q.QueryRowContext(ctx, `SELECT `+offerCols+` FROM offers WHERE id = ?`, offerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("offer %s: %w", offerID, storage.ErrOfferNotFound)
	}
	if err != nil {
		return nil, queryErr("get offer", err)
	}
	return o, nil
}

// ListOffers returns all offers, newest first.
func (s *Store) ListOffers(ctx context.Context) ([]models.Offer, error) {
	return s.listOffers(ctx, `SELECT `+offerCols+` FROM offers ORDER BY created_at DESC, id`)
}

func (s *Store) ListOffersByPartner(ctx context.Context, partnerID string) ([]models.Offer, error) {
	return s.listOffers(ctx, `SELECT `+offerCols+` FROM offers WHERE partner_id = ? ORDER BY created_at DESC, id`, partnerID)
}

func (s *Store) listOffers(ctx context.Context, query string, args ...any) ([]models.Offer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryErr("list offers", err)
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, queryErr("scan offer", err)
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

// UpdateOffer rewrites the editable fields and bumps the version, so a
// reservation that read the old price loses its version check.
func (s *Store) UpdateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE offers SET title = ?, description = ?, location = ?, price = ?, category = ?,
		        starts_at = ?, ends_at = ?, version = version + 1
		 WHERE id = ?`,
		offer.Title, offer.Description, offer.Location, offer.Price, offer.Category,
		toMillis(offer.StartsAt), nullMillis(offer.EndsAt), offer.Id,
	)
	if err != nil {
		return nil, queryErr("update offer", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, queryErr("update offer", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("offer %s: %w", offer.Id, storage.ErrOfferNotFound)
	}
	return s.GetOffer(ctx, offer.Id)
}

// DeleteOffer removes an offer nobody has reserved.
func (s *Store) DeleteOffer(ctx context.Context, offerID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return queryErr("begin offer delete", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM offers WHERE id = ? AND NOT EXISTS (SELECT 1 FROM reservations WHERE offer_id = ?)`,
		offerID, offerID,
	)
	if err != nil {
		return queryErr("delete offer", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return queryErr("delete offer", err)
	}
	if n == 0 {
		if _, err := getOffer(ctx, tx, offerID); err != nil {
			return err
		}
		return fmt.Errorf("offer %s: %w", offerID, storage.ErrOfferInUse)
	}

	if err := tx.Commit(); err != nil {
		return queryErr("commit offer delete", err)
	}
	return nil
}
