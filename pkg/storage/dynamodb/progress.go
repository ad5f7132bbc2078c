package dynamodb

import (
	"context"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

// EnsureProgress creates the progress record of (userID, taskID) unless one already exists.
func (s *Store) EnsureProgress(ctx context.Context, userID, taskID string, now time.Time) (*models.TaskProgress, error) {
	progress := &models.TaskProgress{UserId: userID, TaskId: taskID, CreatedAt: now}
	progressAV, err := attributevalue.MarshalMap(progress)
	if err != nil {
		return nil, storeErr("failed to marshal task progress", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Progress),
		Item:                progressAV,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if err == nil {
		return progress, nil
	}
	if !isConditionalCheckFailed(err) {
		return nil, storeErr("failed to create task progress", err)
	}
	// Someone got there first.
	return s.GetProgress(ctx, userID, taskID)
}

// GetProgress retrieves the progress record of (userID, taskID).
func (s *Store) GetProgress(ctx context.Context, userID, taskID string) (*models.TaskProgress, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.Tables.Progress),
		Key:            progressKey(userID, taskID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, storeErr("failed to get task progress from DynamoDB", err)
	}

	if result.Item == nil {
		return nil, storage.ErrTaskNotStarted
	}

	var progress models.TaskProgress
	if err := attributevalue.UnmarshalMap(result.Item, &progress); err != nil {
		return nil, storeErr("failed to unmarshal task progress", err)
	}

	return &progress, nil
}

// MarkCompleted sets is_completed once. A record that is already completed keeps its original completed_at.
func (s *Store) MarkCompleted(ctx context.Context, userID, taskID string, at time.Time) (*models.TaskProgress, error) {
	atAV, err := attributevalue.Marshal(at)
	if err != nil {
		return nil, storeErr("failed to marshal completion time", err)
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.Tables.Progress),
		Key:                 progressKey(userID, taskID),
		UpdateExpression:    aws.String("SET is_completed = :true, completed_at = :at"),
		ConditionExpression: aws.String("attribute_exists(user_id) AND is_completed = :false"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":at":    atAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return s.GetProgress(ctx, userID, taskID)
		}
		return nil, storeErr("failed to mark task progress completed", err)
	}

	var progress models.TaskProgress
	if err := attributevalue.UnmarshalMap(result.Attributes, &progress); err != nil {
		return nil, storeErr("failed to unmarshal task progress", err)
	}
	return &progress, nil
}

// ListClaimedProgress returns the claimed progress records of a user, most recently claimed first.
func (s *Store) ListClaimedProgress(ctx context.Context, userID string) ([]models.TaskProgress, error) {
	var claimed []models.TaskProgress
	var startKey map[string]types.AttributeValue
	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Progress),
			KeyConditionExpression: aws.String("user_id = :user_id"),
			FilterExpression:       aws.String("is_claimed = :true"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user_id": &types.AttributeValueMemberS{Value: userID},
				":true":    &types.AttributeValueMemberBOOL{Value: true},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, storeErr("failed to query claimed task progress", err)
		}

		var page []models.TaskProgress
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, storeErr("failed to unmarshal task progress", err)
		}
		claimed = append(claimed, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	slices.SortFunc(claimed, func(a, b models.TaskProgress) int {
		return claimedAt(b).Compare(claimedAt(a))
	})
	return claimed, nil
}

func claimedAt(p models.TaskProgress) time.Time {
	if p.ClaimedAt == nil {
		return time.Time{}
	}
	return *p.ClaimedAt
}

func progressKey(userID, taskID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id": &types.AttributeValueMemberS{Value: userID},
		"task_id": &types.AttributeValueMemberS{Value: taskID},
	}
}
