package websockets

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnections struct {
	ids     []string
	removed []string
}

func (f *fakeConnections) AddConnection(ctx context.Context, id string) error {
	f.ids = append(f.ids, id)
	return nil
}

func (f *fakeConnections) RemoveConnection(ctx context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeConnections) GetAllConnections(ctx context.Context) ([]string, error) {
	return f.ids, nil
}

type fakeGateway struct {
	gone  map[string]bool
	posts map[string][]byte
}

func (f *fakeGateway) PostToConnection(ctx context.Context, in *apigatewaymanagementapi.PostToConnectionInput, _ ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error) {
	id := aws.ToString(in.ConnectionId)
	if f.gone[id] {
		return nil, &apigwtypes.GoneException{}
	}
	f.posts[id] = in.Data
	return &apigatewaymanagementapi.PostToConnectionOutput{}, nil
}

type recordingPublisher struct {
	messages []Message
}

func (p *recordingPublisher) Publish(ctx context.Context, m Message) error {
	p.messages = append(p.messages, m)
	return nil
}

type staticAccounts struct {
	balance int64
}

func (a staticAccounts) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	return &models.Account{Id: id, PointBalance: a.balance}, nil
}

func TestDefaultPublisher(t *testing.T) {
	connections := &fakeConnections{ids: []string{"live", "stale"}}
	gateway := &fakeGateway{gone: map[string]bool{"stale": true}, posts: map[string][]byte{}}
	publisher := NewPublisherWithClient(connections, gateway)

	err := publisher.Publish(context.Background(), Message{
		Type:    MessageTypeBalanceUpdate,
		Payload: BalanceUpdatePayload{UserID: "u1", ReferenceID: "r1", Change: -50, NewBalance: 50},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, connections.removed)
	require.Contains(t, gateway.posts, "live")

	var decoded struct {
		Type    string               `json:"type"`
		Payload BalanceUpdatePayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(gateway.posts["live"], &decoded))
	assert.Equal(t, "balanceUpdate", decoded.Type)
	assert.Equal(t, int64(-50), decoded.Payload.Change)
}

func TestBalanceNotifier(t *testing.T) {
	ctx := context.Background()
	publisher := &recordingPublisher{}
	notifier := NewBalanceNotifier(publisher, staticAccounts{balance: 175})

	require.NoError(t, notifier.ReservationCommitted(ctx, &models.ReservationReceipt{
		Reservation:     models.Reservation{Id: "res-1", UserId: "u1", Price: 25},
		RemainingPoints: 75,
	}))
	require.NoError(t, notifier.RewardClaimed(ctx, &models.ClaimReceipt{UserId: "u1", TaskId: "task-1", PointsAwarded: 100}))

	require.Len(t, publisher.messages, 2)
	assert.Equal(t, BalanceUpdatePayload{UserID: "u1", ReferenceID: "res-1", Change: -25, NewBalance: 75}, publisher.messages[0].Payload)
	assert.Equal(t, BalanceUpdatePayload{UserID: "u1", ReferenceID: "task-1", Change: 100, NewBalance: 175}, publisher.messages[1].Payload)
}
