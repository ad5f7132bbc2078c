package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/config"
	"github.com/chris/points-ledger/pkg/logging"
	"github.com/chris/points-ledger/pkg/models"
	dydbstore "github.com/chris/points-ledger/pkg/storage/dynamodb"
	"github.com/chris/points-ledger/pkg/tasks"
)

var tracker *tasks.Tracker

func init() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		slog.Error("unable to load SDK config", "error", err)
		os.Exit(1)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables(cfg.Tables))
	tracker = tasks.NewTracker(store, nil)
}

// HandleRequest refreshes the task progress touched by each committed reservation.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		var refresh api.ProgressRefresh
		if err := json.Unmarshal([]byte(message.Body), &refresh); err != nil {
			// A malformed body will never succeed, so it is dropped rather than retried.
			slog.ErrorContext(ctx, "failed to unmarshal progress refresh", "messageId", message.MessageId, "error", err)
			continue
		}

		statuses, err := tracker.RefreshForReservation(ctx, refresh.UserId, models.Category(refresh.Category), refresh.ReservedAt)
		if err != nil {
			// Returning an error makes SQS redeliver the batch. Refreshing is idempotent.
			return fmt.Errorf("refresh progress for message %s: %w", message.MessageId, err)
		}

		slog.InfoContext(ctx, "refreshed task progress",
			"messageId", message.MessageId,
			"userId", refresh.UserId,
			"category", refresh.Category,
			"tasks", len(statuses),
		)
	}
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
