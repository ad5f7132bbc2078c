package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

type scanner interface{ Scan(...any) error }

const accountCols = `id, role, point_balance, version, created_at`

func scanAccount(row scanner) (*models.Account, error) {
	var a models.Account
	var createdAt int64
	if err := row.Scan(&a.Id, &a.Role, &a.PointBalance, &a.Version, &createdAt); err != nil {
		return nil, err
	}
	a.CreatedAt = fromMillis(createdAt)
	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (`+accountCols+`) VALUES (?, ?, ?, ?, ?)`,
		account.Id, account.Role, account.PointBalance, account.Version, toMillis(account.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("account %s: %w", account.Id, storage.ErrAlreadyExists)
		}
		return nil, queryErr("insert account", err)
	}
	return account, nil
}

func (s *Store) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	return getAccount(ctx, s.db, accountID)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getAccount(ctx context.Context, q querier, accountID string) (*models.Account, error) {
	a, err := scanAccount(q.QueryRowContext(ctx, `SELECT `+accountCols+` FROM accounts WHERE id = ?`, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", accountID, storage.ErrAccountNotFound)
	}
	if err != nil {
		return nil, queryErr("get account", err)
	}
	return a, nil
}
