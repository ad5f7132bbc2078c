// Package reservations spends a user's points on an offer.
package reservations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/chris/points-ledger/pkg/txretry"
	"github.com/google/uuid"
)

// Notifier is told about every committed reservation. Its errors are logged and dropped.
type Notifier interface {
	ReservationCommitted(ctx context.Context, receipt *models.ReservationReceipt) error
}

// Engine validates and executes reservations against the ledger store.
type Engine struct {
	store         storage.ReservationLedger
	retry         txretry.Policy
	enforceWindow bool
	now           func() time.Time
	notifiers     []Notifier
}

type Option func(*Engine)

func WithRetryPolicy(p txretry.Policy) Option {
	return func(e *Engine) { e.retry = p }
}

// WithWindowEnforcement toggles the offer active-window check.
func WithWindowEnforcement(enforce bool) Option {
	return func(e *Engine) { e.enforceWindow = enforce }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithNotifiers(n ...Notifier) Option {
	return func(e *Engine) { e.notifiers = append(e.notifiers, n...) }
}

// NewEngine creates an Engine that enforces offer windows and retries with txretry.DefaultPolicy.
func NewEngine(store storage.ReservationLedger, opts ...Option) *Engine {
	e := &Engine{
		store:         store,
		retry:         txretry.DefaultPolicy(),
		enforceWindow: true,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reserve spends the offer's price from the user's balance and takes one unit of its capacity.
//
// Failures are reported with the storage error taxonomy: *storage.AlreadyReservedError,
// storage.ErrCapacityExhausted, *storage.InsufficientPointsError, storage.ErrOfferNotActive,
// storage.ErrOfferNotFound and storage.ErrAccountNotFound. A write that keeps losing
// races surfaces as storage.ErrUnavailable.
func (e *Engine) Reserve(ctx context.Context, userID, offerID string) (*models.ReservationReceipt, error) {
	if err := validateIDs(userID, offerID); err != nil {
		return nil, err
	}

	receipt, err := txretry.Do(ctx, e.retry, "reserve offer", func(ctx context.Context) (*models.ReservationReceipt, error) {
		return e.store.ReserveOffer(ctx, models.ReserveRequest{
			UserId:        userID,
			OfferId:       offerID,
			Now:           e.now().UTC(),
			EnforceWindow: e.enforceWindow,
		})
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "offer reserved",
		"reservationId", receipt.Reservation.Id,
		"userId", userID,
		"offerId", offerID,
		"remainingPoints", receipt.RemainingPoints,
	)

	for _, n := range e.notifiers {
		if err := n.ReservationCommitted(ctx, receipt); err != nil {
			slog.ErrorContext(ctx, "failed to notify reservation", "reservationId", receipt.Reservation.Id, "error", err)
		}
	}

	return receipt, nil
}

// CheckEligibility evaluates the reservation preconditions without writing anything.
func (e *Engine) CheckEligibility(ctx context.Context, userID, offerID string) (*models.Eligibility, error) {
	if err := validateIDs(userID, offerID); err != nil {
		return nil, err
	}

	offer, err := e.store.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	account, err := e.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	hasReservation := true
	if _, err := e.store.GetReservation(ctx, userID, offerID); err != nil {
		if !errors.Is(err, storage.ErrReservationNotFound) {
			return nil, err
		}
		hasReservation = false
	}

	canReserve := !hasReservation &&
		offer.RemainingCapacity > 0 &&
		account.PointBalance >= offer.Price &&
		(!e.enforceWindow || offer.ActiveAt(e.now().UTC()))

	return &models.Eligibility{
		HasReservation: hasReservation,
		UserPoints:     account.PointBalance,
		OfferPoints:    offer.Price,
		CanReserve:     canReserve,
	}, nil
}

func validateIDs(userID, offerID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("user id %q: %w", userID, storage.ErrInvalidID)
	}
	if _, err := uuid.Parse(offerID); err != nil {
		return fmt.Errorf("offer id %q: %w", offerID, storage.ErrInvalidID)
	}
	return nil
}
