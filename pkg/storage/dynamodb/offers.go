package dynamodb

import (
	"context"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
)

// CreateOffer publishes a new offer.
func (s *Store) CreateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	offerAV, err := attributevalue.MarshalMap(offer)
	if err != nil {
		return nil, storeErr("failed to marshal offer", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Offers),
		Item:                offerAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, fmt.Errorf("offer %s: %w", offer.Id, storage.ErrAlreadyExists)
		}
		return nil, storeErr("failed to create offer in DynamoDB", err)
	}

	return offer, nil
}

// GetOffer retrieves an offer from DynamoDB by its ID.
func (s *Store) GetOffer(ctx context.Context, offerID string) (*models.Offer, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": offerID})
	if err != nil {
		return nil, storeErr("failed to marshal offer ID", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.Tables.Offers),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, storeErr("failed to get offer from DynamoDB", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("offer %s: %w", offerID, storage.ErrOfferNotFound)
	}

	var offer models.Offer
	if err := attributevalue.UnmarshalMap(result.Item, &offer); err != nil {
		return nil, storeErr("failed to unmarshal offer", err)
	}

	return &offer, nil
}

// ListOffers scans the offers table and returns the offers newest first.
func (s *Store) ListOffers(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	var startKey map[string]types.AttributeValue
	for {
		result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.Tables.Offers),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, storeErr("failed to scan offers table", err)
		}

		var page []models.Offer
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, storeErr("failed to unmarshal offers", err)
		}
		offers = append(offers, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	slices.SortFunc(offers, func(a, b models.Offer) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return offers, nil
}

// ListOffersByPartner queries the partner index and returns the offers newest first.
func (s *Store) ListOffersByPartner(ctx context.Context, partnerID string) ([]models.Offer, error) {
	var offers []models.Offer
	var startKey map[string]types.AttributeValue
	for {
		result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.Tables.Offers),
			IndexName:              aws.String(offersByPartnerGSI),
			KeyConditionExpression: aws.String("partner_id = :partner_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":partner_id": &types.AttributeValueMemberS{Value: partnerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, storeErr("failed to query offers by partner", err)
		}

		var page []models.Offer
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, storeErr("failed to unmarshal offers", err)
		}
		offers = append(offers, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	slices.SortFunc(offers, func(a, b models.Offer) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return offers, nil
}

// UpdateOffer rewrites the editable fields and bumps the version. An in-flight
// reservation that read the old price then fails its version condition.
func (s *Store) UpdateOffer(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	fields := map[string]any{
		"title":       offer.Title,
		"description": offer.Description,
		"location":    offer.Location,
		"price":       offer.Price,
		"category":    offer.Category,
		"starts_at":   offer.StartsAt,
	}
	if offer.EndsAt != nil {
		fields["ends_at"] = *offer.EndsAt
	}
	update, names, values, err := setExpression(fields)
	if err != nil {
		return nil, storeErr("failed to marshal offer update", err)
	}
	update += ", version = version + :one"
	values[":one"] = &types.AttributeValueMemberN{Value: "1"}
	if offer.EndsAt == nil {
		update += " REMOVE ends_at"
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.Tables.Offers),
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: offer.Id}},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, fmt.Errorf("offer %s: %w", offer.Id, storage.ErrOfferNotFound)
		}
		return nil, storeErr("failed to update offer in DynamoDB", err)
	}

	var updated models.Offer
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, storeErr("failed to unmarshal updated offer", err)
	}
	return &updated, nil
}

// DeleteOffer removes an offer whose reserved_count is still zero.
func (s *Store) DeleteOffer(ctx context.Context, offerID string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.Tables.Offers),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: offerID}},
		ConditionExpression: aws.String("attribute_exists(id) AND (attribute_not_exists(reserved_count) OR reserved_count = :zero)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
	})
	if err == nil {
		return nil
	}
	if !isConditionalCheckFailed(err) {
		return storeErr("failed to delete offer from DynamoDB", err)
	}
	if _, err := s.GetOffer(ctx, offerID); err != nil {
		return err
	}
	return fmt.Errorf("offer %s: %w", offerID, storage.ErrOfferInUse)
}
