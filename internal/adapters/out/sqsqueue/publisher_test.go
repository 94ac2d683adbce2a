package sqsqueue_test

import (
	"context"
	"errors"
	"testing"

	"pedidos/internal/adapters/out/sqsqueue"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSQSAPI struct{ mock.Mock }

func (m *MockSQSAPI) SendMessage(
	ctx context.Context,
	params *sqs.SendMessageInput,
	_ ...func(*sqs.Options),
) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*sqs.SendMessageOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("should send the payload to the configured queue", func(t *testing.T) {
		ctx := t.Context()
		client := new(MockSQSAPI)
		client.On("SendMessage", ctx, mock.MatchedBy(func(input *sqs.SendMessageInput) bool {
			return *input.QueueUrl == "https://sqs.test/notifications" &&
				*input.MessageBody == `{"orderId":"abc"}`
		})).Return(&sqs.SendMessageOutput{}, nil).Once()

		p := sqsqueue.NewPublisher(client, "https://sqs.test/notifications")
		err := p.Publish(ctx, []byte(`{"orderId":"abc"}`))

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("should wrap broker failures", func(t *testing.T) {
		ctx := t.Context()
		client := new(MockSQSAPI)
		client.On("SendMessage", ctx, mock.Anything).Return(nil, errors.New("broker down")).Once()

		p := sqsqueue.NewPublisher(client, "https://sqs.test/notifications")
		err := p.Publish(ctx, []byte(`{}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker down")
	})
}
