package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddConnection(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		id, ok := in.Item["connection_id"].(*types.AttributeValueMemberS)
		if !ok || id.Value != "conn-1" || *in.TableName != "connections" {
			return false
		}
		_, hasTTL := in.Item["expires_at"].(*types.AttributeValueMemberN)
		return hasTTL
	})).Return(&dynamodb.PutItemOutput{}, nil)

	store := New(mockClient, testTables)
	require.NoError(t, store.AddConnection(context.Background(), "conn-1"))
	mockClient.AssertExpectations(t)
}

func TestGetAllConnections(t *testing.T) {
	t.Run("Follows Pagination", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		lastKey := map[string]types.AttributeValue{"connection_id": &types.AttributeValueMemberS{Value: "a"}}
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.ExclusiveStartKey == nil
		})).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{"connection_id": &types.AttributeValueMemberS{Value: "a"}},
			},
			LastEvaluatedKey: lastKey,
		}, nil).Once()
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.ExclusiveStartKey != nil
		})).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{"connection_id": &types.AttributeValueMemberS{Value: "b"}},
			},
		}, nil).Once()

		store := New(mockClient, testTables)
		ids, err := store.GetAllConnections(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids)
		mockClient.AssertExpectations(t)
	})

	t.Run("Query Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		store := New(mockClient, testTables)
		_, err := store.GetAllConnections(context.Background())

		assert.ErrorIs(t, err, assert.AnError)
	})
}
