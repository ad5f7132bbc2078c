package storage

import (
	"errors"
	"fmt"
)

// Validation errors. Returned before the store is touched.
var (
	ErrInvalidID    = errors.New("invalid identifier")
	ErrInvalidInput = errors.New("invalid input")
)

// Business conflicts. These are expected outcomes, not failures of the store.
var (
	ErrAlreadyReserved    = errors.New("offer already reserved by user")
	ErrCapacityExhausted  = errors.New("offer capacity exhausted")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOfferNotActive     = errors.New("offer is not active")
	ErrTaskNotStarted     = errors.New("task not started")
	ErrNotCompleted       = errors.New("task not completed")
	ErrAlreadyClaimed     = errors.New("task reward already claimed")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrOfferInUse         = errors.New("offer has reservations")
)

// Not found.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrOfferNotFound       = errors.New("offer not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// ErrWriteConflict is returned when an optimistic write lost a race with a concurrent writer.
// Callers retry it; it is never surfaced past the retry loop.
var ErrWriteConflict = errors.New("concurrent write conflict")

// ErrUnavailable is returned when the store could not commit within the retry budget.
var ErrUnavailable = errors.New("ledger store unavailable")

// AlreadyReservedError reports the reservation that already exists for the (user, offer) pair.
type AlreadyReservedError struct {
	ReservationID string
}

func (e *AlreadyReservedError) Error() string {
	return fmt.Sprintf("%s: reservation %s", ErrAlreadyReserved, e.ReservationID)
}

func (e *AlreadyReservedError) Is(target error) bool {
	return target == ErrAlreadyReserved
}

// InsufficientPointsError reports both sides of the shortfall.
type InsufficientPointsError struct {
	UserPoints  int64
	OfferPoints int64
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("%s: have %d, need %d", ErrInsufficientPoints, e.UserPoints, e.OfferPoints)
}

func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}
