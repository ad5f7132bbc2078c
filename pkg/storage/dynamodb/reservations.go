package dynamodb

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

// The reservations table is keyed on (user_id, offer_id). The key itself is the
// uniqueness gate for one reservation per user and offer.

// GetReservation retrieves the reservation of a user for an offer.
func (s *Store) GetReservation(ctx context.Context, userID, offerID string) (*models.Reservation, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.Tables.Reservations),
		Key:            reservationKey(userID, offerID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, storeErr("failed to get reservation from DynamoDB", err)
	}

	if result.Item == nil {
		return nil, storage.ErrReservationNotFound
	}

	var item reservationItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, storeErr("failed to unmarshal reservation", err)
	}

	reservation := item.toModel()
	return &reservation, nil
}

// ListReservationsByUser returns every reservation of a user, newest first.
func (s *Store) ListReservationsByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	var startKey map[string]types.AttributeValue
	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Reservations),
			KeyConditionExpression: aws.String("user_id = :user_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user_id": &types.AttributeValueMemberS{Value: userID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, storeErr("failed to query reservations by user", err)
		}

		var page []reservationItem
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, storeErr("failed to unmarshal reservations", err)
		}
		for _, item := range page {
			reservations = append(reservations, item.toModel())
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	// Sort key is offer_id, so order by time here.
	slices.SortFunc(reservations, func(a, b models.Reservation) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return reservations, nil
}

// CountReservations counts a user's reservations in a category with created_at in [from, to].
// Both bounds are inclusive at millisecond precision.
func (s *Store) CountReservations(ctx context.Context, userID string, category models.Category, from, to time.Time) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Reservations),
			KeyConditionExpression: aws.String("user_id = :user_id"),
			FilterExpression:       aws.String("#category = :category AND created_at BETWEEN :from AND :to"),
			ExpressionAttributeNames: map[string]string{
				"#category": "category",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user_id":  &types.AttributeValueMemberS{Value: userID},
				":category": &types.AttributeValueMemberS{Value: string(category)},
				":from":     unixMillis(windowStart(from)),
				":to":       unixMillis(to.UnixMilli()),
			},
			Select:            types.SelectCount,
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, storeErr("failed to count reservations", err)
		}
		total += int(result.Count)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}
	return total, nil
}

// ListReservingUsers returns the distinct users with a reservation in a category inside [from, to].
func (s *Store) ListReservingUsers(ctx context.Context, category models.Category, from, to time.Time) ([]string, error) {
	seen := make(map[string]struct{})
	var users []string
	var startKey map[string]types.AttributeValue
	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Reservations),
			IndexName:              aws.String(reservationsByCatGSI),
			KeyConditionExpression: aws.String("#category = :category AND created_at BETWEEN :from AND :to"),
			ExpressionAttributeNames: map[string]string{
				"#category": "category",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":category": &types.AttributeValueMemberS{Value: string(category)},
				":from":     unixMillis(windowStart(from)),
				":to":       unixMillis(to.UnixMilli()),
			},
			ProjectionExpression: aws.String("user_id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, storeErr("failed to query reservations by category", err)
		}

		var page []struct {
			UserID string `dynamodbav:"user_id"`
		}
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, storeErr("failed to unmarshal reserving users", err)
		}
		for _, row := range page {
			if _, ok := seen[row.UserID]; ok {
				continue
			}
			seen[row.UserID] = struct{}{}
			users = append(users, row.UserID)
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}
	return users, nil
}

func reservationKey(userID, offerID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"user_id":  &types.AttributeValueMemberS{Value: userID},
		"offer_id": &types.AttributeValueMemberS{Value: offerID},
	}
}

func unixMillis(ms int64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(ms, 10)}
}
