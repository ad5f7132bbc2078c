package dynamodb

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/chris/points-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOffer(t *testing.T) {
	startsAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	offer := &models.Offer{
		Id:                "offer-1",
		Title:             "Late show",
		Price:             80,
		Category:          models.CategoryCinema,
		RemainingCapacity: 500,
		StartsAt:          startsAt,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var captured *dynamodb.UpdateItemInput
		updated := *offer
		updated.RemainingCapacity = 3
		updated.Version = 5
		updatedAV, _ := attributevalue.MarshalMap(updated)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.UpdateItemInput)
			}).
			Return(&dynamodb.UpdateItemOutput{Attributes: updatedAV}, nil).Once()

		store := New(mockClient, testTables)
		result, err := store.UpdateOffer(context.Background(), offer)

		require.NoError(t, err)
		assert.Equal(t, int64(3), result.RemainingCapacity)
		assert.Equal(t, "offers", *captured.TableName)
		assert.Contains(t, *captured.UpdateExpression, "version = version + :one")
		assert.True(t, strings.HasSuffix(*captured.UpdateExpression, "REMOVE ends_at"))
		assert.Equal(t, &types.AttributeValueMemberN{Value: "80"}, captured.ExpressionAttributeValues[":price"])
		assert.NotContains(t, *captured.UpdateExpression, "remaining_capacity")
		assert.NotContains(t, captured.ExpressionAttributeNames, "#remaining_capacity")
		assert.NotContains(t, captured.ExpressionAttributeNames, "#reserved_count")
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()

		store := New(mockClient, testTables)
		_, err := store.UpdateOffer(context.Background(), offer)

		assert.ErrorIs(t, err, storage.ErrOfferNotFound)
		mockClient.AssertExpectations(t)
	})
}

// A price edit bumps the version, so a reservation prepared against the old
// price loses its condition and is retried.
func TestPriceEditDuringReservation(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	offer := &models.Offer{Id: "offer-1", Price: 30, Category: models.CategoryBooks, RemainingCapacity: 5, StartsAt: now.Add(-time.Hour), Version: 2}
	account := &models.Account{Id: "user-1", PointBalance: 100, Version: 1}

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()
	offerAV, _ := attributevalue.MarshalMap(offer)
	mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: offerAV}, nil).Once()
	accountAV, _ := attributevalue.MarshalMap(account)
	mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil).Once()

	var captured *dynamodb.TransactWriteItemsInput
	mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
		}).
		Return(nil, cancelledWith("None", "ConditionalCheckFailed", "None", "None")).Once()

	store := New(mockClient, testTables)
	_, err := store.ReserveOffer(context.Background(), models.ReserveRequest{UserId: "user-1", OfferId: "offer-1", Now: now})

	assert.ErrorIs(t, err, storage.ErrWriteConflict)
	offerUpdate := captured.TransactItems[reserveItemOffer].Update
	assert.Equal(t, &types.AttributeValueMemberN{Value: "2"}, offerUpdate.ExpressionAttributeValues[":version"])
	assert.Contains(t, *offerUpdate.UpdateExpression, "reserved_count = if_not_exists(reserved_count, :zero) + :one")
	assert.Equal(t, &types.AttributeValueMemberN{Value: "30"}, captured.TransactItems[reserveItemAccount].Update.ExpressionAttributeValues[":price"])
	mockClient.AssertExpectations(t)
}

func TestDeleteOffer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.DeleteItemInput) bool {
			return strings.Contains(*in.ConditionExpression, "reserved_count = :zero")
		})).Return(&dynamodb.DeleteItemOutput{}, nil).Once()

		store := New(mockClient, testTables)
		require.NoError(t, store.DeleteOffer(context.Background(), "offer-1"))
		mockClient.AssertExpectations(t)
	})

	t.Run("Reserved", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()
		offerAV, _ := attributevalue.MarshalMap(&models.Offer{Id: "offer-1", ReservedCount: 2})
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: offerAV}, nil).Once()

		store := New(mockClient, testTables)
		err := store.DeleteOffer(context.Background(), "offer-1")

		assert.ErrorIs(t, err, storage.ErrOfferInUse)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil).Once()

		store := New(mockClient, testTables)
		err := store.DeleteOffer(context.Background(), "offer-1")

		assert.ErrorIs(t, err, storage.ErrOfferNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestListOffersByPartner(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var items []map[string]types.AttributeValue
	for i, id := range []string{"o1", "o2"} {
		av, _ := attributevalue.MarshalMap(models.Offer{Id: id, PartnerId: "partner-1", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		items = append(items, av)
	}

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return *in.IndexName == offersByPartnerGSI
	})).Return(&dynamodb.QueryOutput{Items: items}, nil).Once()

	store := New(mockClient, testTables)
	offers, err := store.ListOffersByPartner(context.Background(), "partner-1")

	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "o2", offers[0].Id)
	mockClient.AssertExpectations(t)
}
