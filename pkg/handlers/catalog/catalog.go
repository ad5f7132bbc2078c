package catalog

import (
	"net/http"
	"time"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/handlers/respond"
	"github.com/chris/points-ledger/pkg/mapping"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CatalogHandler serves the offer catalog.
type CatalogHandler struct {
	Store storage.OfferStore
	Now   func() time.Time
}

func NewCatalogHandler(store storage.OfferStore) *CatalogHandler {
	return &CatalogHandler{Store: store, Now: time.Now}
}

// CreateOffer publishes an offer. Capacity defaults to mapping.DefaultOfferCapacity.
func (h *CatalogHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var newOffer api.CreateOfferJSONRequestBody
	if err := respond.Decode(r, &newOffer); err != nil {
		respond.Error(w, r, err)
		return
	}

	offer := mapping.ToDomainNewOffer(&newOffer, h.Now().UTC())
	if !offer.Category.Valid() {
		respond.Error(w, r, storage.ErrInvalidInput)
		return
	}

	created, err := h.Store.CreateOffer(r.Context(), offer)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiOffer(created))
}

func (h *CatalogHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Store.ListOffers(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toApiOffers(offers))
}

func (h *CatalogHandler) ListPartnerOffers(w http.ResponseWriter, r *http.Request, partnerId openapi_types.UUID) {
	offers, err := h.Store.ListOffersByPartner(r.Context(), partnerId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toApiOffers(offers))
}

// UpdateOffer edits an offer. The new price only applies to later reservations.
func (h *CatalogHandler) UpdateOffer(w http.ResponseWriter, r *http.Request, offerId openapi_types.UUID) {
	var update api.UpdateOfferJSONRequestBody
	if err := respond.Decode(r, &update); err != nil {
		respond.Error(w, r, err)
		return
	}

	offer := mapping.ToDomainOfferUpdate(offerId.String(), &update)
	if !offer.Category.Valid() {
		respond.Error(w, r, storage.ErrInvalidInput)
		return
	}

	updated, err := h.Store.UpdateOffer(r.Context(), offer)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiOffer(updated))
}

func (h *CatalogHandler) DeleteOffer(w http.ResponseWriter, r *http.Request, offerId openapi_types.UUID) {
	if err := h.Store.DeleteOffer(r.Context(), offerId.String()); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiOffers(offers []models.Offer) []*api.Offer {
	apiOffers := make([]*api.Offer, len(offers))
	for i, offer := range offers {
		apiOffers[i] = mapping.ToApiOffer(&offer)
	}
	return apiOffers
}

func (h *CatalogHandler) GetOffer(w http.ResponseWriter, r *http.Request, offerId openapi_types.UUID) {
	offer, err := h.Store.GetOffer(r.Context(), offerId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiOffer(offer))
}
