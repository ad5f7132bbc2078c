package reservations

import (
	"context"
	"net/http"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/handlers/respond"
	"github.com/chris/points-ledger/pkg/mapping"
	"github.com/chris/points-ledger/pkg/models"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Reserver executes reservations.
type Reserver interface {
	Reserve(ctx context.Context, userID, offerID string) (*models.ReservationReceipt, error)
}

// Query is the read side used by the reservation routes.
type Query interface {
	CheckEligibility(ctx context.Context, userID, offerID string) (*models.Eligibility, error)
	ListReservations(ctx context.Context, userID string) ([]models.Reservation, error)
}

// ReservationsHandler holds the dependencies for reservation-related handlers.
type ReservationsHandler struct {
	Engine Reserver
	Query  Query
}

func NewReservationsHandler(engine Reserver, query Query) *ReservationsHandler {
	return &ReservationsHandler{Engine: engine, Query: query}
}

// ReserveOffer spends the user's points on the offer. A losing call reports
// which precondition failed.
func (h *ReservationsHandler) ReserveOffer(w http.ResponseWriter, r *http.Request, userId openapi_types.UUID, offerId openapi_types.UUID) {
	receipt, err := h.Engine.Reserve(r.Context(), userId.String(), offerId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiReservationResult(receipt))
}

func (h *ReservationsHandler) CheckEligibility(w http.ResponseWriter, r *http.Request, userId openapi_types.UUID, offerId openapi_types.UUID) {
	eligibility, err := h.Query.CheckEligibility(r.Context(), userId.String(), offerId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiEligibility(eligibility))
}

// ListReservations returns the user's reservations, newest first.
func (h *ReservationsHandler) ListReservations(w http.ResponseWriter, r *http.Request, userId openapi_types.UUID) {
	reservations, err := h.Query.ListReservations(r.Context(), userId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	apiReservations := make([]*api.Reservation, len(reservations))
	for i, reservation := range reservations {
		apiReservations[i] = mapping.ToApiReservation(&reservation)
	}

	respond.JSON(w, http.StatusOK, apiReservations)
}
