package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/points-ledger/pkg/config"
	"github.com/chris/points-ledger/pkg/handlers"
	wshandlers "github.com/chris/points-ledger/pkg/handlers/websockets"
	"github.com/chris/points-ledger/pkg/logging"
	custommiddleware "github.com/chris/points-ledger/pkg/middleware"
	"github.com/chris/points-ledger/pkg/query"
	"github.com/chris/points-ledger/pkg/reservations"
	"github.com/chris/points-ledger/pkg/scheduler"
	"github.com/chris/points-ledger/pkg/storage"
	dydbstore "github.com/chris/points-ledger/pkg/storage/dynamodb"
	"github.com/chris/points-ledger/pkg/storage/sqlite"
	"github.com/chris/points-ledger/pkg/tasks"
	"github.com/chris/points-ledger/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	var (
		store     storage.Storage
		sqsClient *sqs.Client
	)

	// Balance updates go to API Gateway when it is configured, otherwise to local /ws clients.
	hub := wshandlers.NewLocalHub()
	var publisher websockets.Publisher = hub

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		store = sqlite.New(db)
	default:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("unable to load SDK config", "error", err)
			os.Exit(1)
		}
		dynamoStore := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables(cfg.Tables))
		store = dynamoStore
		if cfg.SQSQueueURL != "" {
			sqsClient = sqs.NewFromConfig(awsCfg)
		}
		if cfg.WebSocketAPIEndpoint != "" {
			publisher = websockets.NewPublisher(awsCfg, dynamoStore, cfg.WebSocketAPIEndpoint)
		}
	}

	balances := websockets.NewBalanceNotifier(publisher, store)

	notifiers := []reservations.Notifier{balances}
	if sqsClient != nil {
		notifiers = append(notifiers, &scheduler.Notifier{Scheduler: scheduler.NewSQSScheduler(sqsClient, cfg.SQSQueueURL)})
	}

	engine := reservations.NewEngine(store,
		reservations.WithRetryPolicy(cfg.Retry),
		reservations.WithWindowEnforcement(cfg.EnforceWindow),
		reservations.WithNotifiers(notifiers...),
	)
	tracker := tasks.NewTracker(store, time.Now)
	claims := tasks.NewClaimAuthority(store, cfg.Retry, time.Now, balances)
	facade := query.NewFacade(engine, tracker, store)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(custommiddleware.NewStructuredLogger(logger))
	router.Handle("/ws", hub)

	handler := handlers.NewApiHandler(store, handlers.Dependencies{Engine: engine, Claims: claims, Query: facade})
	handler.Mount(router)

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("starting server", "port", cfg.HTTPPort, "backend", cfg.Backend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
