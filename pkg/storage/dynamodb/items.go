package dynamodb

import (
	"time"

	"github.com/chris/points-ledger/pkg/models"
)

// ledgerPartition is the constant partition key of the ledger timestamp index.
const ledgerPartition = "LEDGER_ENTRIES"

// ledgerTimeLayout is fixed width so the index sort key orders lexically by time.
const ledgerTimeLayout = "2006-01-02T15:04:05.000000000Z"

// reservationItem is the stored form of a reservation. created_at is unix
// milliseconds, the same encoding as the category index sort key.
type reservationItem struct {
	UserId    string          `dynamodbav:"user_id"`
	OfferId   string          `dynamodbav:"offer_id"`
	Id        string          `dynamodbav:"id"`
	Category  models.Category `dynamodbav:"category"`
	Price     int64           `dynamodbav:"price"`
	CreatedAt int64           `dynamodbav:"created_at"`
}

func toReservationItem(r *models.Reservation) reservationItem {
	return reservationItem{
		UserId:    r.UserId,
		OfferId:   r.OfferId,
		Id:        r.Id,
		Category:  r.Category,
		Price:     r.Price,
		CreatedAt: r.CreatedAt.UnixMilli(),
	}
}

func (i reservationItem) toModel() models.Reservation {
	return models.Reservation{
		Id:        i.Id,
		UserId:    i.UserId,
		OfferId:   i.OfferId,
		Category:  i.Category,
		Price:     i.Price,
		CreatedAt: time.UnixMilli(i.CreatedAt).UTC(),
	}
}

// ledgerItem is the stored form of a ledger entry.
type ledgerItem struct {
	EntryID     string                 `dynamodbav:"entry_id"`
	AccountID   string                 `dynamodbav:"account_id"`
	ReferenceID string                 `dynamodbav:"reference_id"`
	Kind        models.LedgerEntryKind `dynamodbav:"kind"`
	Debit       int64                  `dynamodbav:"debit,omitempty"`
	Credit      int64                  `dynamodbav:"credit,omitempty"`
	Description string                 `dynamodbav:"description"`
	Timestamp   string                 `dynamodbav:"timestamp"`
	GSI1PK      string                 `dynamodbav:"gsi1pk"`
}

func toLedgerItem(e *models.LedgerEntry) ledgerItem {
	return ledgerItem{
		EntryID:     e.EntryID,
		AccountID:   e.AccountID,
		ReferenceID: e.ReferenceID,
		Kind:        e.Kind,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Description: e.Description,
		Timestamp:   ledgerTimestamp(e.Timestamp),
		GSI1PK:      ledgerPartition,
	}
}

func (i ledgerItem) toModel() (models.LedgerEntry, error) {
	ts, err := time.Parse(ledgerTimeLayout, i.Timestamp)
	if err != nil {
		return models.LedgerEntry{}, err
	}
	return models.LedgerEntry{
		EntryID:     i.EntryID,
		AccountID:   i.AccountID,
		ReferenceID: i.ReferenceID,
		Kind:        i.Kind,
		Debit:       i.Debit,
		Credit:      i.Credit,
		Description: i.Description,
		Timestamp:   ts,
	}, nil
}

func ledgerTimestamp(t time.Time) string {
	return t.UTC().Format(ledgerTimeLayout)
}

// windowStart is the first millisecond not before t.
func windowStart(t time.Time) int64 {
	ms := t.UnixMilli()
	if time.UnixMilli(ms).Before(t) {
		ms++
	}
	return ms
}
