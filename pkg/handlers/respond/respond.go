// Package respond writes JSON bodies and maps ledger errors to HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Decode reads a JSON body into v and validates it.
// Both failures are reported as storage.ErrInvalidInput.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: request body: %v", storage.ErrInvalidInput, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInvalidInput, err)
	}
	return nil
}

type class struct {
	target error
	status int
	code   string
}

var classes = []class{
	{storage.ErrInvalidID, http.StatusBadRequest, "invalid_id"},
	{storage.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},

	{storage.ErrAccountNotFound, http.StatusNotFound, "account_not_found"},
	{storage.ErrOfferNotFound, http.StatusNotFound, "offer_not_found"},
	{storage.ErrTaskNotFound, http.StatusNotFound, "task_not_found"},
	{storage.ErrReservationNotFound, http.StatusNotFound, "reservation_not_found"},

	{storage.ErrInsufficientPoints, http.StatusUnprocessableEntity, "insufficient_points"},
	{storage.ErrAlreadyReserved, http.StatusConflict, "already_reserved"},
	{storage.ErrCapacityExhausted, http.StatusConflict, "capacity_exhausted"},
	{storage.ErrOfferNotActive, http.StatusConflict, "offer_not_active"},
	{storage.ErrTaskNotStarted, http.StatusConflict, "task_not_started"},
	{storage.ErrNotCompleted, http.StatusConflict, "not_completed"},
	{storage.ErrAlreadyClaimed, http.StatusConflict, "already_claimed"},
	{storage.ErrAlreadyExists, http.StatusConflict, "already_exists"},
	{storage.ErrOfferInUse, http.StatusConflict, "offer_in_use"},

	{storage.ErrUnavailable, http.StatusServiceUnavailable, "unavailable"},
}

// Status returns the HTTP status and error code for err.
func Status(err error) (int, string) {
	for _, c := range classes {
		if errors.Is(err, c.target) {
			return c.status, c.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

// Error writes err as an api.Error body. Unclassified errors are logged and
// their message is not exposed.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, code := Status(err)
	body := api.Error{Code: code, Message: err.Error()}

	var already *storage.AlreadyReservedError
	if errors.As(err, &already) {
		body.ReservationId = already.ReservationID
	}
	var insufficient *storage.InsufficientPointsError
	if errors.As(err, &insufficient) {
		body.UserPoints = &insufficient.UserPoints
		body.OfferPoints = &insufficient.OfferPoints
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		body.Message = "internal error"
	}

	JSON(w, status, body)
}

// BadParam is the ChiServerOptions.ErrorHandlerFunc for path and query binding failures.
func BadParam(w http.ResponseWriter, r *http.Request, err error) {
	JSON(w, http.StatusBadRequest, api.Error{Code: "invalid_parameter", Message: err.Error()})
}
