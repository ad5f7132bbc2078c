package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/storage"
	"github.com/google/uuid"
)

const (
	claimItemProgress = iota
	claimItemAccount
	claimItemLedger
)

// ClaimReward flips is_claimed and credits the reward in one transaction.
// The conditional flip is the only guard against a double credit.
func (s *Store) ClaimReward(ctx context.Context, req models.ClaimRequest) (*models.ClaimReceipt, error) {
	progress, err := s.GetProgress(ctx, req.UserId, req.TaskId)
	if err != nil {
		return nil, retryable(err)
	}
	if !progress.IsCompleted {
		return nil, storage.ErrNotCompleted
	}
	if progress.IsClaimed {
		return nil, storage.ErrAlreadyClaimed
	}

	credit := models.LedgerEntry{
		EntryID:     uuid.NewString(),
		AccountID:   req.UserId,
		ReferenceID: req.TaskId,
		Kind:        models.LedgerKindTaskReward,
		Credit:      req.RewardPoints,
		Description: fmt.Sprintf("Reward for task %s", req.TaskId),
		Timestamp:   req.Now,
	}
	creditAV, err := attributevalue.MarshalMap(toLedgerItem(&credit))
	if err != nil {
		return nil, storeErr("failed to marshal ledger credit", err)
	}
	nowAV, err := attributevalue.Marshal(req.Now)
	if err != nil {
		return nil, storeErr("failed to marshal claim time", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			claimItemProgress: {
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Progress),
					Key:                 progressKey(req.UserId, req.TaskId),
					UpdateExpression:    aws.String("SET is_claimed = :true, claimed_at = :now"),
					ConditionExpression: aws.String("is_completed = :true AND is_claimed = :false"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":true":  &types.AttributeValueMemberBOOL{Value: true},
						":false": &types.AttributeValueMemberBOOL{Value: false},
						":now":   nowAV,
					},
				},
			},
			claimItemAccount: {
				Update: &types.Update{
					TableName:           aws.String(s.Tables.Accounts),
					Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: req.UserId}},
					UpdateExpression:    aws.String("SET point_balance = point_balance + :reward, version = version + :one"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":reward": &types.AttributeValueMemberN{Value: strconv.FormatInt(req.RewardPoints, 10)},
						":one":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			claimItemLedger: {
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Ledger),
					Item:                creditAV,
					ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		return nil, s.claimFailure(ctx, req, err)
	}

	return &models.ClaimReceipt{
		UserId:        req.UserId,
		TaskId:        req.TaskId,
		PointsAwarded: req.RewardPoints,
		ClaimedAt:     req.Now,
	}, nil
}

func (s *Store) claimFailure(ctx context.Context, req models.ClaimRequest, err error) error {
	var txc *types.TransactionCanceledException
	if errors.As(err, &txc) {
		switch {
		case cancelledAt(txc, claimItemProgress):
			current, getErr := s.GetProgress(ctx, req.UserId, req.TaskId)
			if getErr == nil && current.IsClaimed {
				return storage.ErrAlreadyClaimed
			}
			return fmt.Errorf("claim of task %s cancelled: %w", req.TaskId, storage.ErrWriteConflict)
		case cancelledAt(txc, claimItemAccount):
			return fmt.Errorf("account %s: %w", req.UserId, storage.ErrAccountNotFound)
		}
		return fmt.Errorf("claim of task %s cancelled: %w", req.TaskId, storage.ErrWriteConflict)
	}
	if isContention(err) {
		return fmt.Errorf("claim of task %s: %w", req.TaskId, storage.ErrWriteConflict)
	}
	return storeErr("failed to execute claim transaction", err)
}
