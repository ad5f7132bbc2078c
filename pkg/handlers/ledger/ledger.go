package ledger

import (
	"net/http"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/handlers/respond"
	"github.com/chris/points-ledger/pkg/mapping"
	"github.com/chris/points-ledger/pkg/storage"
)

const (
	defaultLimit = 20
	maxLimit     = 500
)

// LedgerHandler holds the dependencies for ledger-related handlers.
type LedgerHandler struct {
	Store storage.LedgerReader
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(store storage.LedgerReader) *LedgerHandler {
	return &LedgerHandler{Store: store}
}

// ListLedgerEntries returns the most recent balance changes across all accounts.
func (h *LedgerHandler) ListLedgerEntries(w http.ResponseWriter, r *http.Request, params api.ListLedgerEntriesParams) {
	limit := int32(defaultLimit)
	if params.Limit != nil {
		limit = *params.Limit
	}
	if limit <= 0 || limit > maxLimit {
		respond.Error(w, r, storage.ErrInvalidInput)
		return
	}

	domainEntries, err := h.Store.ListLedgerEntries(r.Context(), limit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	apiEntries := make([]*api.LedgerEntry, len(domainEntries))
	for i, entry := range domainEntries {
		apiEntries[i] = mapping.ToApiLedgerEntry(&entry)
	}

	respond.JSON(w, http.StatusOK, apiEntries)
}
