package storage

import (
	"context"
	"time"

	"github.com/chris/points-ledger/pkg/models"
)

// ReservationCounter counts the reservations backing task progress.
type ReservationCounter interface {
	// CountReservations counts the reservations of a user in a category with
	// created_at inside [from, to], both ends inclusive.
	CountReservations(ctx context.Context, userID string, category models.Category, from, to time.Time) (int, error)

	// ListReservingUsers returns the distinct users holding a reservation in a category inside [from, to].
	ListReservingUsers(ctx context.Context, category models.Category, from, to time.Time) ([]string, error)
}

// ReservationReader defines the interface for reading reservation data.
type ReservationReader interface {
	ReservationCounter

	// GetReservation retrieves the reservation of a user for an offer. Returns ErrReservationNotFound if absent.
	GetReservation(ctx context.Context, userID, offerID string) (*models.Reservation, error)

	// ListReservationsByUser retrieves all reservations of a user, newest first.
	ListReservationsByUser(ctx context.Context, userID string) ([]models.Reservation, error)
}

// ReservationWriter is the privileged interface that spends points on an offer.
// It is the only path that debits an account balance or decrements an offer's capacity.
type ReservationWriter interface {
	// ReserveOffer checks every precondition and, in one atomic write, inserts the
	// reservation, debits the account, decrements the offer capacity and records
	// a ledger debit. A lost optimistic race is reported as ErrWriteConflict.
	ReserveOffer(ctx context.Context, req models.ReserveRequest) (*models.ReservationReceipt, error)
}
