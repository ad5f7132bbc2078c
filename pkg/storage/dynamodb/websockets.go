package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	connectionsPartition = "connections"
	// API Gateway closes a websocket after two hours at most. expires_at is the
	// table's TTL attribute, so records missed by $disconnect age out.
	connectionTTL = 2 * time.Hour
)

// WebSocketConnection represents a record in the WebSocket connections table.
type WebSocketConnection struct {
	ConnectionID string `dynamodbav:"connection_id"`
	PK           string `dynamodbav:"pk"`
	ConnectedAt  int64  `dynamodbav:"connected_at,omitempty"`
	ExpiresAt    int64  `dynamodbav:"expires_at,omitempty"`
}

// AddConnection saves a new WebSocket connection ID to the database.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	now := time.Now()
	conn := WebSocketConnection{
		ConnectionID: connectionID,
		PK:           connectionsPartition,
		ConnectedAt:  now.Unix(),
		ExpiresAt:    now.Add(connectionTTL).Unix(),
	}
	item, err := attributevalue.MarshalMap(conn)
	if err != nil {
		return storeErr("failed to marshal connection", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Connections),
		Item:      item,
	})
	if err != nil {
		return storeErr("failed to put item", err)
	}

	return nil
}

// RemoveConnection deletes a WebSocket connection ID from the database.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{
		"connection_id": connectionID,
	})
	if err != nil {
		return storeErr("failed to marshal connection key", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.Tables.Connections),
		Key:       key,
	})
	if err != nil {
		return storeErr("failed to delete item", err)
	}

	return nil
}

// GetAllConnections retrieves all active WebSocket connection IDs from the database.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	var connections []WebSocketConnection
	var startKey map[string]types.AttributeValue
	for {
		queryOutput, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Connections),
			IndexName:              aws.String(connectionsGSI),
			KeyConditionExpression: aws.String("pk = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: connectionsPartition},
			},
			ProjectionExpression: aws.String("connection_id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, storeErr("failed to query connections table", err)
		}

		var page []WebSocketConnection
		if err := attributevalue.UnmarshalListOfMaps(queryOutput.Items, &page); err != nil {
			return nil, storeErr("failed to unmarshal connections", err)
		}
		connections = append(connections, page...)

		if len(queryOutput.LastEvaluatedKey) == 0 {
			break
		}
		startKey = queryOutput.LastEvaluatedKey
	}

	connectionIDs := make([]string, len(connections))
	for i, conn := range connections {
		connectionIDs[i] = conn.ConnectionID
	}

	return connectionIDs, nil
}
