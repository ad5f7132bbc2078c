package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/google/uuid"
)

// Positions of the items in the reservation transaction.
const (
	reserveItemReservation = iota
	reserveItemOffer
	reserveItemAccount
	reserveItemLedger
)

// ReserveOffer checks the reservation preconditions against a consistent read of
// the offer and the account, then commits the reservation in a single
// TransactWriteItems call. The offer and account updates are guarded by their
// versions, so a concurrent writer makes the transaction fail as a whole and the
// caller retries against fresh state.
func (s *Store) ReserveOffer(ctx context.Context, req models.ReserveRequest) (*models.ReservationReceipt, error) {
	// 1. One reservation per user and offer.
	existing, err := s.GetReservation(ctx, req.UserId, req.OfferId)
	if err == nil {
		return nil, &storage.AlreadyReservedError{ReservationID: existing.Id}
	}
	if !errors.Is(err, storage.ErrReservationNotFound) {
		return nil, retryable(err)
	}

	// 2. Offer exists and has capacity left.
	offer, err := s.GetOffer(ctx, req.OfferId)
	if err != nil {
		return nil, retryable(err)
	}
	if offer.RemainingCapacity <= 0 {
		return nil, storage.ErrCapacityExhausted
	}

	// 3. Account exists and can pay.
	account, err := s.GetAccount(ctx, req.UserId)
	if err != nil {
		return nil, retryable(err)
	}
	if account.PointBalance < offer.Price {
		return nil, &storage.InsufficientPointsError{UserPoints: account.PointBalance, OfferPoints: offer.Price}
	}

	// 4. Offer window.
	if req.EnforceWindow && !offer.ActiveAt(req.Now) {
		return nil, storage.ErrOfferNotActive
	}

	reservation := models.Reservation{
		Id:        uuid.NewString(),
		UserId:    req.UserId,
		OfferId:   req.OfferId,
		Category:  offer.Category,
		Price:     offer.Price,
		CreatedAt: req.Now.Truncate(time.Millisecond),
	}
	debit := models.LedgerEntry{
		EntryID:     uuid.NewString(),
		AccountID:   req.UserId,
		ReferenceID: reservation.Id,
		Kind:        models.LedgerKindReservation,
		Debit:       offer.Price,
		Description: fmt.Sprintf("Reservation of offer %s", offer.Id),
		Timestamp:   req.Now,
	}

	input, err := s.reserveInput(&reservation, &debit, offer, account)
	if err != nil {
		return nil, err
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return nil, s.reserveFailure(ctx, req, err)
	}

	return &models.ReservationReceipt{
		Reservation:     reservation,
		RemainingPoints: account.PointBalance - offer.Price,
	}, nil
}

func (s *Store) reserveInput(reservation *models.Reservation, debit *models.LedgerEntry, offer *models.Offer, account *models.Account) (*dynamodb.TransactWriteItemsInput, error) {
	reservationAV, err := attributevalue.MarshalMap(toReservationItem(reservation))
	if err != nil {
		return nil, storeErr("failed to marshal reservation", err)
	}
	debitAV, err := attributevalue.MarshalMap(toLedgerItem(debit))
	if err != nil {
		return nil, storeErr("failed to marshal ledger debit", err)
	}
	priceAV := &types.AttributeValueMemberN{Value: strconv.FormatInt(offer.Price, 10)}
	one := &types.AttributeValueMemberN{Value: "1"}

	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			reserveItemReservation: {
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Reservations),
					Item:                reservationAV,
					ConditionExpression: aws.String("attribute_not_exists(user_id)"),
				},
			},
			reserveItemOffer: {
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Offers),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: offer.Id}},
					UpdateExpression:    aws.String("SET remaining_capacity = remaining_capacity - :one, reserved_count = if_not_exists(reserved_count, :zero) + :one, version = version + :one"),
					ConditionExpression: aws.String("remaining_capacity >= :one AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":one":     one,
						":zero":    &types.AttributeValueMemberN{Value: "0"},
						":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(offer.Version, 10)},
					},
				},
			},
			reserveItemAccount: {
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Accounts),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: account.Id}},
					UpdateExpression:    aws.String("SET point_balance = point_balance - :price, version = version + :one"),
					ConditionExpression: aws.String("point_balance >= :price AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":price":   priceAV,
						":one":     one,
						":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(account.Version, 10)},
					},
				},
			},
			reserveItemLedger: {
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Ledger),
					Item:                debitAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
		},
	}, nil
}

// reserveFailure classifies a failed reservation transaction.
func (s *Store) reserveFailure(ctx context.Context, req models.ReserveRequest, err error) error {
	var txc *types.TransactionCanceledException
	if errors.As(err, &txc) {
		if cancelledAt(txc, reserveItemReservation) {
			existing, getErr := s.GetReservation(ctx, req.UserId, req.OfferId)
			if getErr != nil {
				return storage.ErrAlreadyReserved
			}
			return &storage.AlreadyReservedError{ReservationID: existing.Id}
		}
		// Offer or account moved since it was read, or another transaction held the items.
		return fmt.Errorf("reservation of offer %s cancelled: %w", req.OfferId, storage.ErrWriteConflict)
	}
	if isContention(err) {
		return fmt.Errorf("reservation of offer %s: %w", req.OfferId, storage.ErrWriteConflict)
	}
	return storeErr("failed to execute reservation transaction", err)
}
