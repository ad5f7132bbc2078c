package dynamodb

import (
	"context"
	"errors"
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

func TestCountReservations(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	lastKey := map[string]types.AttributeValue{
		"user_id":  &types.AttributeValueMemberS{Value: "user-1"},
		"offer_id": &types.AttributeValueMemberS{Value: "offer-9"},
	}

	t.Run("Sums Pages", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.ExclusiveStartKey == nil &&
				in.Select == types.SelectCount &&
				assert.ObjectsAreEqual(&types.AttributeValueMemberN{Value: "1704067200000"}, in.ExpressionAttributeValues[":from"]) &&
				assert.ObjectsAreEqual(&types.AttributeValueMemberS{Value: "Cinema"}, in.ExpressionAttributeValues[":category"])
		})).Return(&dynamodb.QueryOutput{Count: 2, LastEvaluatedKey: lastKey}, nil).Once()
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.ExclusiveStartKey != nil
		})).Return(&dynamodb.QueryOutput{Count: 1}, nil).Once()

		store := New(mockClient, testTables)
		count, err := store.CountReservations(context.Background(), "user-1", models.CategoryCinema, from, to)

		require.NoError(t, err)
		assert.Equal(t, 3, count)
		mockClient.AssertExpectations(t)
	})

	t.Run("Sub Second Window Start", func(t *testing.T) {
		// A task starting at 10:00:00.500 must not count a reservation made at 10:00:00.200.
		start := time.Date(2024, 1, 1, 10, 0, 0, 500_000_000, time.UTC)
		end := start.Add(time.Hour).Add(250 * time.Microsecond)
		reservedAt := time.Date(2024, 1, 1, 10, 0, 0, 200_000_000, time.UTC)

		mockClient := new(mocks.DynamoDBAPI)
		var captured *dynamodb.QueryInput
		mockClient.On("Query", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.QueryInput)
			}).
			Return(&dynamodb.QueryOutput{}, nil).Once()

		store := New(mockClient, testTables)
		_, err := store.CountReservations(context.Background(), "user-1", models.CategoryCinema, start, end)

		require.NoError(t, err)
		assert.Equal(t, &types.AttributeValueMemberN{Value: "1704103200500"}, captured.ExpressionAttributeValues[":from"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "1704106800500"}, captured.ExpressionAttributeValues[":to"])
		stored := toReservationItem(&models.Reservation{CreatedAt: reservedAt})
		assert.Less(t, stored.CreatedAt, int64(1704103200500))
		mockClient.AssertExpectations(t)
	})

	t.Run("Query Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		store := New(mockClient, testTables)
		_, err := store.CountReservations(context.Background(), "user-1", models.CategoryCinema, from, to)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrUnavailable)
		assert.Contains(t, err.Error(), "failed to count reservations")
		mockClient.AssertExpectations(t)
	})

	t.Run("Throttled", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, &types.RequestLimitExceeded{}).Once()

		store := New(mockClient, testTables)
		_, err := store.CountReservations(context.Background(), "user-1", models.CategoryCinema, from, to)

		assert.ErrorIs(t, err, storage.ErrUnavailable)
		mockClient.AssertExpectations(t)
	})
}

func TestWindowStart(t *testing.T) {
	exact := time.Date(2024, 1, 1, 10, 0, 0, 500_000_000, time.UTC)
	assert.Equal(t, exact.UnixMilli(), windowStart(exact))
	assert.Equal(t, exact.UnixMilli()+1, windowStart(exact.Add(time.Nanosecond)))
}

func TestListReservationsByUser(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reservations := []models.Reservation{
		{Id: "r1", UserId: "user-1", OfferId: "a", Category: models.CategoryBooks, CreatedAt: base},
		{Id: "r2", UserId: "user-1", OfferId: "b", Category: models.CategoryBooks, CreatedAt: base.Add(2 * time.Hour)},
		{Id: "r3", UserId: "user-1", OfferId: "c", Category: models.CategoryBooks, CreatedAt: base.Add(time.Hour)},
	}
	var itemsAV []map[string]types.AttributeValue
	for _, r := range reservations {
		av, _ := attributevalue.MarshalMap(toReservationItem(&r))
		itemsAV = append(itemsAV, av)
	}

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: itemsAV}, nil).Once()

	store := New(mockClient, testTables)
	listed, err := store.ListReservationsByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{"r2", "r3", "r1"}, []string{listed[0].Id, listed[1].Id, listed[2].Id})
	assert.True(t, listed[2].CreatedAt.Equal(base))
	mockClient.AssertExpectations(t)
}

func TestListReservingUsers(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(30 * 24 * time.Hour)
	rows := []map[string]types.AttributeValue{
		{"user_id": &types.AttributeValueMemberS{Value: "user-1"}},
		{"user_id": &types.AttributeValueMemberS{Value: "user-2"}},
		{"user_id": &types.AttributeValueMemberS{Value: "user-1"}},
	}

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return *in.IndexName == reservationsByCatGSI
	})).Return(&dynamodb.QueryOutput{Items: rows}, nil).Once()

	store := New(mockClient, testTables)
	users, err := store.ListReservingUsers(context.Background(), models.CategoryMuseums, from, to)

	require.NoError(t, err)
	assert.Equal(t, []string{"user-1", "user-2"}, users)
	mockClient.AssertExpectations(t)
}
