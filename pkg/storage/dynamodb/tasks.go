package dynamodb

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

func (s *Store) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	taskAV, err := attributevalue.MarshalMap(task)
	if err != nil {
		return nil, storeErr("failed to marshal task", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Tasks),
		Item:                taskAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, fmt.Errorf("task %s: %w", task.Id, storage.ErrAlreadyExists)
		}
		return nil, storeErr("failed to create task in DynamoDB", err)
	}

	return task, nil
}

// GetTask retrieves a task from DynamoDB by its ID.
func (s *Store) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": taskID})
	if err != nil {
		return nil, storeErr("failed to marshal task ID", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Tasks),
		Key:       key,
	})
	if err != nil {
		return nil, storeErr("failed to get task from DynamoDB", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, storage.ErrTaskNotFound)
	}

	var task models.Task
	if err := attributevalue.UnmarshalMap(result.Item, &task); err != nil {
		return nil, storeErr("failed to unmarshal task", err)
	}

	return &task, nil
}

// UpdateTask rewrites the editable fields of an existing task.
func (s *Store) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	fields := map[string]any{
		"title":          task.Title,
		"description":    task.Description,
		"category":       task.Category,
		"required_count": task.RequiredCount,
		"starts_at":      task.StartsAt,
		"ends_at":        task.EndsAt,
		"reward_points":  task.RewardPoints,
		"updated_at":     task.UpdatedAt,
	}
	update, names, values, err := setExpression(fields)
	if err != nil {
		return nil, storeErr("failed to marshal task update", err)
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.Tables.Tasks),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: task.Id}},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, fmt.Errorf("task %s: %w", task.Id, storage.ErrTaskNotFound)
		}
		return nil, storeErr("failed to update task in DynamoDB", err)
	}

	var updated models.Task
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, storeErr("failed to unmarshal updated task", err)
	}
	return &updated, nil
}

// setExpression builds a SET update for the given attributes, in a stable order.
func setExpression(fields map[string]any) (string, map[string]string, map[string]types.AttributeValue, error) {
	attrs := make([]string, 0, len(fields))
	for attr := range fields {
		attrs = append(attrs, attr)
	}
	slices.Sort(attrs)

	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	clauses := make([]string, 0, len(fields))
	for _, attr := range attrs {
		av, err := attributevalue.Marshal(fields[attr])
		if err != nil {
			return "", nil, nil, err
		}
		names["#"+attr] = attr
		values[":"+attr] = av
		clauses = append(clauses, fmt.Sprintf("#%s = :%s", attr, attr))
	}
	return "SET " + strings.Join(clauses, ", "), names, values, nil
}

// DeleteTask removes a task. Progress records of the task are kept.
func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.Tables.Tasks),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: taskID}},
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("task %s: %w", taskID, storage.ErrTaskNotFound)
		}
		return storeErr("failed to delete task from DynamoDB", err)
	}
	return nil
}

// ListTasks scans the tasks table and returns the tasks newest first.
func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	var startKey map[string]types.AttributeValue
	for {
		result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.Tables.Tasks),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, storeErr("failed to scan tasks table", err)
		}

		var page []models.Task
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, storeErr("failed to unmarshal tasks", err)
		}
		tasks = append(tasks, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	slices.SortFunc(tasks, func(a, b models.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return tasks, nil
}
