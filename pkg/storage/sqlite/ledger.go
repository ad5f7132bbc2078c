package sqlite

import (
	"context"
	"database/sql"

	"github.com/chris/points-ledger/pkg/models"
)

func insertLedgerEntry(ctx context.Context, tx *sql.Tx, e models.LedgerEntry) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO ledger_entries (entry_id, account_id, reference_id, kind, debit, credit, description, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.EntryID, e.AccountID, e.ReferenceID, e.Kind, e.Debit, e.Credit, e.Description, toMillis(e.Timestamp),
	)
	if err != nil {
		return queryErr("insert ledger entry", err)
	}
	return nil
}

// ListLedgerEntries returns the most recent entries first.
func (s *Store) ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, account_id, reference_id, kind, debit, credit, description, timestamp
		 FROM ledger_entries ORDER BY timestamp DESC, entry_id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, queryErr("list ledger entries", err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		var ts int64
		if err := rows.Scan(&e.EntryID, &e.AccountID, &e.ReferenceID, &e.Kind, &e.Debit, &e.Credit, &e.Description, &ts); err != nil {
			return nil, queryErr("scan ledger entry", err)
		}
		e.Timestamp = fromMillis(ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
