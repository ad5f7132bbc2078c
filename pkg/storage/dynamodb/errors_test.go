package dynamodb

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/handlers/respond"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/chris/points-ledger/pkg/storage/dynamodb/mocks"
	"github.com/chris/points-ledger/pkg/txretry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStoreErr(t *testing.T) {
	transient := []error{
		&types.ProvisionedThroughputExceededException{Message: aws.String("throughput")},
		&types.RequestLimitExceeded{},
		&types.TransactionInProgressException{},
		&types.TransactionConflictException{},
	}
	for _, cause := range transient {
		err := storeErr("failed to get offer from DynamoDB", cause)
		assert.ErrorIs(t, err, storage.ErrUnavailable)
		assert.ErrorIs(t, err, cause)
	}

	err := storeErr("failed to get offer from DynamoDB", errors.New("access denied"))
	assert.NotErrorIs(t, err, storage.ErrUnavailable)
}

func TestThrottledReservationRetries(t *testing.T) {
	policy := txretry.Policy{Attempts: 3, BaseDelay: time.Millisecond}
	req := models.ReserveRequest{UserId: "user-1", OfferId: "offer-1", Now: time.Now()}

	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("GetItem", mock.Anything, mock.Anything).
		Return(nil, &types.ProvisionedThroughputExceededException{Message: aws.String("slow down")}).Times(3)
	store := New(mockClient, testTables)

	_, err := txretry.Do(context.Background(), policy, "reserve", func(ctx context.Context) (*models.ReservationReceipt, error) {
		return store.ReserveOffer(ctx, req)
	})

	assert.ErrorIs(t, err, storage.ErrUnavailable)
	status, code := respond.Status(err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unavailable", code)
	mockClient.AssertNumberOfCalls(t, "GetItem", 3)
	mockClient.AssertExpectations(t)
}

func TestThrottledReadOnlyPaths(t *testing.T) {
	throttled := &types.ProvisionedThroughputExceededException{Message: aws.String("slow down")}

	t.Run("GetTask", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, throttled).Once()

		_, err := New(mockClient, testTables).GetTask(context.Background(), "task-1")

		status, _ := respond.Status(err)
		assert.Equal(t, http.StatusServiceUnavailable, status)
		mockClient.AssertExpectations(t)
	})

	t.Run("EnsureProgress", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.RequestLimitExceeded{}).Once()

		_, err := New(mockClient, testTables).EnsureProgress(context.Background(), "user-1", "task-1", time.Now())

		assert.ErrorIs(t, err, storage.ErrUnavailable)
		mockClient.AssertExpectations(t)
	})

	t.Run("MarkCompleted", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.TransactionInProgressException{}).Once()

		_, err := New(mockClient, testTables).MarkCompleted(context.Background(), "user-1", "task-1", time.Now())

		assert.ErrorIs(t, err, storage.ErrUnavailable)
		mockClient.AssertExpectations(t)
	})

	t.Run("ClaimReward Read", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, throttled).Once()

		_, err := New(mockClient, testTables).ClaimReward(context.Background(), models.ClaimRequest{UserId: "user-1", TaskId: "task-1"})

		assert.ErrorIs(t, err, storage.ErrWriteConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Scan", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, throttled).Once()

		_, err := New(mockClient, testTables).ListOffers(context.Background())

		assert.ErrorIs(t, err, storage.ErrUnavailable)
		mockClient.AssertExpectations(t)
	})
}
