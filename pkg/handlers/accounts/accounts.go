package accounts

import (
	"net/http"
	"time"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/handlers/respond"
	"github.com/chris/points-ledger/pkg/mapping"
	"github.com/chris/points-ledger/pkg/storage"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountStore
	Now   func() time.Time
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore) *AccountsHandler {
	return &AccountsHandler{Store: store, Now: time.Now}
}

// CreateAccount opens an account with its starting point balance.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := respond.Decode(r, &newAccount); err != nil {
		respond.Error(w, r, err)
		return
	}

	account := mapping.ToDomainNewAccount(&newAccount, h.Now().UTC())
	if !account.Role.Valid() {
		respond.Error(w, r, storage.ErrInvalidInput)
		return
	}

	created, err := h.Store.CreateAccount(r.Context(), account)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiAccount(created))
}

func (h *AccountsHandler) GetAccount(w http.ResponseWriter, r *http.Request, accountId openapi_types.UUID) {
	account, err := h.Store.GetAccount(r.Context(), accountId.String())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiAccount(account))
}
