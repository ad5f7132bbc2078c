package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

// PostToConnectionAPI is the part of the API Gateway management client the publisher uses.
type PostToConnectionAPI interface {
	PostToConnection(ctx context.Context, params *apigatewaymanagementapi.PostToConnectionInput, optFns ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error)
}

// DefaultPublisher posts messages to every connection through API Gateway.
type DefaultPublisher struct {
	connections ConnectionStore
	apiGwClient PostToConnectionAPI
}

// NewPublisher creates a DefaultPublisher that talks to the websocket API at apiEndpoint.
func NewPublisher(cfg aws.Config, connections ConnectionStore, apiEndpoint string) *DefaultPublisher {
	apiGwClient := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})
	return NewPublisherWithClient(connections, apiGwClient)
}

func NewPublisherWithClient(connections ConnectionStore, client PostToConnectionAPI) *DefaultPublisher {
	return &DefaultPublisher{connections: connections, apiGwClient: client}
}

// Publish sends a message to all connected clients. Connections API Gateway
// reports as gone are removed.
func (p *DefaultPublisher) Publish(ctx context.Context, message Message) error {
	connectionIDs, err := p.connections.GetAllConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to get all connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := p.apiGwClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})
		if err == nil {
			continue
		}

		var goneErr *apigwtypes.GoneException
		if errors.As(err, &goneErr) {
			slog.InfoContext(ctx, "stale connection found, deleting", "connectionId", connectionID)
			if err := p.connections.RemoveConnection(ctx, connectionID); err != nil {
				slog.ErrorContext(ctx, "failed to delete stale connection", "connectionId", connectionID, "error", err)
			}
			continue
		}
		slog.ErrorContext(ctx, "failed to post to connection", "connectionId", connectionID, "error", err)
	}

	return nil
}
