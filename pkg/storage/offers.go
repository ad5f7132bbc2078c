package storage

import (
	"context"

	"github.com/chris/points-ledger/pkg/models"
)

// OfferReader defines the interface for reading offers.
type OfferReader interface {
	// GetOffer retrieves an offer by its ID. Returns ErrOfferNotFound if absent.
	GetOffer(ctx context.Context, offerID string) (*models.Offer, error)
}

// OfferStore defines the interface for managing the offer catalog.
type OfferStore interface {
	OfferReader

	// CreateOffer publishes a new offer.
	CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error)

	// ListOffers retrieves all offers, newest first.
	ListOffers(ctx context.Context) ([]models.Offer, error)

	// ListOffersByPartner retrieves the offers of one partner, newest first.
	ListOffersByPartner(ctx context.Context, partnerID string) ([]models.Offer, error)

	// UpdateOffer rewrites the editable fields of an offer and bumps its version.
	// Remaining capacity is never written. Returns ErrOfferNotFound if absent.
	UpdateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error)

	// DeleteOffer removes an offer. Returns ErrOfferInUse once it has been reserved.
	DeleteOffer(ctx context.Context, offerID string) error
}
