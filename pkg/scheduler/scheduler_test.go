package scheduler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/points-ledger/pkg/api"
	"github.com/chris/points-ledger/pkg/models"
	"github.com/chris/points-ledger/pkg/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sqs.SendMessageOutput{}, f.err
}

func TestSQSScheduler_ScheduleRefresh(t *testing.T) {
	client := &fakeSQS{}
	s := NewSQSScheduler(client, "https://sqs.local/queue")
	reservedAt := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

	err := s.ScheduleRefresh(context.Background(), &api.ProgressRefresh{UserId: "u1", Category: "Cinema", ReservedAt: reservedAt})

	require.NoError(t, err)
	require.Len(t, client.inputs, 1)
	assert.Equal(t, "https://sqs.local/queue", aws.ToString(client.inputs[0].QueueUrl))

	var sent api.ProgressRefresh
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.inputs[0].MessageBody)), &sent))
	assert.Equal(t, "u1", sent.UserId)
	assert.Equal(t, api.Cinema, sent.Category)
	assert.True(t, sent.ReservedAt.Equal(reservedAt))

	client.err = assert.AnError
	err = s.ScheduleRefresh(context.Background(), &api.ProgressRefresh{UserId: "u1"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNotifier(t *testing.T) {
	mockScheduler := mocks.NewScheduler(t)
	n := &Notifier{Scheduler: mockScheduler}
	reservedAt := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

	mockScheduler.On("ScheduleRefresh", mock.Anything, &api.ProgressRefresh{UserId: "u1", Category: "Books", ReservedAt: reservedAt}).Return(nil).Once()

	err := n.ReservationCommitted(context.Background(), &models.ReservationReceipt{
		Reservation: models.Reservation{Id: "r1", UserId: "u1", Category: models.CategoryBooks, CreatedAt: reservedAt},
	})
	assert.NoError(t, err)
}
