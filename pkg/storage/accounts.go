package storage

import (
	"context"

	"github.com/chris/points-ledger/pkg/models"
)

// AccountReader defines the interface for reading accounts.
type AccountReader interface {
	// GetAccount retrieves an account by its ID. Returns ErrAccountNotFound if absent.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
}

// AccountStore defines the interface for managing accounts.
// Balances are never written through this interface once an account exists.
type AccountStore interface {
	AccountReader

	// CreateAccount creates a new account with its opening balance.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)
}
