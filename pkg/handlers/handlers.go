package handlers

import (
	"net/http"

	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/handlers/accounts"
	"github.com/chris/points-ledger/pkg/handlers/catalog"
	"github.com/chris/points-ledger/pkg/handlers/ledger"
	"github.com/chris/points-ledger/pkg/handlers/reservations"
	"github.com/chris/points-ledger/pkg/handlers/respond"
	"github.com/chris/points-ledger/pkg/handlers/tasks"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ApiHandler implements api.ServerInterface by composing the per-resource handlers.
type ApiHandler struct {
	*accounts.AccountsHandler
	*catalog.CatalogHandler
	*tasks.TasksHandler
	*reservations.ReservationsHandler
	*ledger.LedgerHandler
}

// Dependencies are the collaborators the API needs beyond the store.
type Dependencies struct {
	Engine reservations.Reserver
	Claims tasks.Claimer
	Query  Query
}

// Query is the read side shared by the reservation and task routes.
type Query interface {
	reservations.Query
	tasks.Query
}

// NewApiHandler creates an ApiHandler backed by store.
func NewApiHandler(store storage.ApiStore, deps Dependencies) *ApiHandler {
	return &ApiHandler{
		AccountsHandler:     accounts.NewAccountsHandler(store),
		CatalogHandler:      catalog.NewCatalogHandler(store),
		TasksHandler:        tasks.NewTasksHandler(store, deps.Claims, deps.Query),
		ReservationsHandler: reservations.NewReservationsHandler(deps.Engine, deps.Query),
		LedgerHandler:       ledger.NewLedgerHandler(store),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// Mount registers every API route on r.
func (h *ApiHandler) Mount(r chi.Router) http.Handler {
	return api.HandlerWithOptions(h, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: respond.BadParam,
	})
}
