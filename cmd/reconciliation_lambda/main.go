package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/points-ledger/pkg/config"
	"github.com/chris/points-ledger/pkg/logging"
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

// HandleRequest is triggered by an EventBridge Schedule. It re-derives progress
// for every user reserving in the category of an active or recently ended task,
// covering any refresh message that was lost.
func HandleRequest(ctx context.Context) error {
	slog.InfoContext(ctx, "starting progress reconciliation")

	refreshed, err := tracker.RefreshActive(ctx)
	if err != nil {
		// Individual failures were already logged; the sweep is retried on the next schedule.
		slog.ErrorContext(ctx, "progress reconciliation incomplete", "refreshed", refreshed, "error", err)
		return err
	}

	slog.InfoContext(ctx, "progress reconciliation finished", "refreshed", refreshed)
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
