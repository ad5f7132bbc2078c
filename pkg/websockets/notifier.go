package websockets

import (
	"context"
	"fmt"

	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

// BalanceNotifier turns committed reservations and claims into balanceUpdate messages.
type BalanceNotifier struct {
	Publisher Publisher
	Accounts  storage.AccountReader
}

func NewBalanceNotifier(publisher Publisher, accounts storage.AccountReader) *BalanceNotifier {
	return &BalanceNotifier{Publisher: publisher, Accounts: accounts}
}

func (n *BalanceNotifier) ReservationCommitted(ctx context.Context, receipt *models.ReservationReceipt) error {
	return n.Publisher.Publish(ctx, Message{
		Type: MessageTypeBalanceUpdate,
		Payload: BalanceUpdatePayload{
			UserID:      receipt.Reservation.UserId,
			ReferenceID: receipt.Reservation.Id,
			Change:      -receipt.Reservation.Price,
			NewBalance:  receipt.RemainingPoints,
		},
	})
}

// RewardClaimed reads the balance back since the claim does not return it.
func (n *BalanceNotifier) RewardClaimed(ctx context.Context, receipt *models.ClaimReceipt) error {
	account, err := n.Accounts.GetAccount(ctx, receipt.UserId)
	if err != nil {
		return fmt.Errorf("read balance after claim: %w", err)
	}
	return n.Publisher.Publish(ctx, Message{
		Type: MessageTypeBalanceUpdate,
		Payload: BalanceUpdatePayload{
			UserID:      receipt.UserId,
			ReferenceID: receipt.TaskId,
			Change:      receipt.PointsAwarded,
			NewBalance:  account.PointBalance,
		},
	})
}
