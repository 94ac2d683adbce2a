package queue_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pedidos/internal/adapters/in/queue"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testQueueURL = "https://sqs.test/orders"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockSQSAPI struct{ mock.Mock }

func (m *MockSQSAPI) ReceiveMessage(
	ctx context.Context,
	params *sqs.ReceiveMessageInput,
	_ ...func(*sqs.Options),
) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*sqs.ReceiveMessageOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSQSAPI) DeleteMessage(
	ctx context.Context,
	params *sqs.DeleteMessageInput,
	_ ...func(*sqs.Options),
) (*sqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*sqs.DeleteMessageOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if aggregate, ok := args.Get(0).(*order.Order); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) DeleteCustomerData(ctx context.Context, customerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockOrderUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockOrderUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockPaymentUoW struct{ MockOrderUoW }

func (m *MockPaymentUoW) NotificationOutbox() ports.NotificationOutbox {
	return m.Called().Get(0).(ports.NotificationOutbox)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

// singleMessage wires a mock to deliver one message on the first poll and
// empty batches afterwards. The returned channel closes once the consumer
// has moved past the first batch.
func singleMessage(client *MockSQSAPI, body, receiptHandle string) <-chan struct{} {
	client.On("ReceiveMessage", mock.Anything, mock.MatchedBy(func(input *sqs.ReceiveMessageInput) bool {
		return *input.QueueUrl == testQueueURL
	})).Return(&sqs.ReceiveMessageOutput{
		Messages: []types.Message{{
			Body:          aws.String(body),
			ReceiptHandle: aws.String(receiptHandle),
		}},
	}, nil).Once()

	drained := make(chan struct{})
	var once sync.Once
	client.On("ReceiveMessage", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { once.Do(func() { close(drained) }) }).
		Return(&sqs.ReceiveMessageOutput{}, nil)

	return drained
}

func waitFor(t *testing.T, signal <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-signal:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestConsumer(t *testing.T) {
	t.Run("should delete a message after the handler succeeds", func(t *testing.T) {
		client := new(MockSQSAPI)
		drained := singleMessage(client, `{"ping":true}`, "rh-1")

		deleted := make(chan struct{})
		client.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(input *sqs.DeleteMessageInput) bool {
			return *input.QueueUrl == testQueueURL && *input.ReceiptHandle == "rh-1"
		})).Run(func(mock.Arguments) { close(deleted) }).
			Return(&sqs.DeleteMessageOutput{}, nil).Once()

		var handledBody string
		consumer := queue.NewConsumer(client, testQueueURL, "test_consumer",
			func(_ context.Context, body string) error {
				handledBody = body
				return nil
			}, discardLogger())

		consumer.Start(t.Context())
		waitFor(t, deleted, "message deletion")
		waitFor(t, drained, "poll loop to drain")
		consumer.Stop()

		assert.Equal(t, `{"ping":true}`, handledBody)
		client.AssertExpectations(t)
	})

	t.Run("should leave a message in the queue when the handler fails", func(t *testing.T) {
		client := new(MockSQSAPI)
		drained := singleMessage(client, `{"ping":true}`, "rh-1")

		consumer := queue.NewConsumer(client, testQueueURL, "test_consumer",
			func(context.Context, string) error {
				return errors.New("downstream unavailable")
			}, discardLogger())

		consumer.Start(t.Context())
		waitFor(t, drained, "poll loop to drain")
		consumer.Stop()

		client.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
	})

	t.Run("should stop polling once stopped", func(t *testing.T) {
		client := new(MockSQSAPI)
		polled := make(chan struct{})
		var once sync.Once
		client.On("ReceiveMessage", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { once.Do(func() { close(polled) }) }).
			Return(&sqs.ReceiveMessageOutput{}, nil)

		consumer := queue.NewConsumer(client, testQueueURL, "test_consumer",
			func(context.Context, string) error { return nil }, discardLogger())

		consumer.Start(t.Context())
		waitFor(t, polled, "first poll")
		consumer.Stop()

		// Stop returned, so the loop goroutine has exited.
	})
}

func TestPaymentConfirmationConsumer(t *testing.T) {
	t.Run("should leave malformed messages in the queue untouched", func(t *testing.T) {
		client := new(MockSQSAPI)
		drained := singleMessage(client, `not-json`, "rh-1")

		factory := new(MockPaymentUoWFactory)
		handler := commands.NewConfirmPaymentCommandHandler(factory)

		consumer := queue.NewPaymentConfirmationConsumer(client, testQueueURL, handler, discardLogger())
		consumer.Start(t.Context())
		waitFor(t, drained, "poll loop to drain")
		consumer.Stop()

		client.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should reject an unknown payment outcome without deleting", func(t *testing.T) {
		client := new(MockSQSAPI)
		orderID := kernel.NewUUID()
		drained := singleMessage(client,
			`{"orderId":"`+orderID.String()+`","paymentOutcome":"maybe"}`, "rh-1")

		factory := new(MockPaymentUoWFactory)
		handler := commands.NewConfirmPaymentCommandHandler(factory)

		consumer := queue.NewPaymentConfirmationConsumer(client, testQueueURL, handler, discardLogger())
		consumer.Start(t.Context())
		waitFor(t, drained, "poll loop to drain")
		consumer.Stop()

		client.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should dispatch a valid decision to the command handler", func(t *testing.T) {
		client := new(MockSQSAPI)
		orderID := kernel.NewUUID()
		drained := singleMessage(client,
			`{"orderId":"`+orderID.String()+`","paymentOutcome":"Approved"}`, "rh-1")

		// A failing Begin proves the message decoded and reached the
		// handler; the full confirmation path is covered by the command
		// handler tests.
		uow := new(MockPaymentUoW)
		uow.On("Begin", mock.Anything).Return(errors.New("connection lost")).Once()

		factory := new(MockPaymentUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewConfirmPaymentCommandHandler(factory)

		consumer := queue.NewPaymentConfirmationConsumer(client, testQueueURL, handler, discardLogger())
		consumer.Start(t.Context())
		waitFor(t, drained, "poll loop to drain")
		consumer.Stop()

		client.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
		factory.AssertExpectations(t)
		uow.AssertExpectations(t)
	})
}

func TestCustomerErasureConsumer(t *testing.T) {
	t.Run("should erase customer data and delete the message", func(t *testing.T) {
		client := new(MockSQSAPI)
		customerID := kernel.NewUUID()
		drained := singleMessage(client, `{"customerId":"`+customerID.String()+`"}`, "rh-1")

		deleted := make(chan struct{})
		client.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(input *sqs.DeleteMessageInput) bool {
			return *input.ReceiptHandle == "rh-1"
		})).Run(func(mock.Arguments) { close(deleted) }).
			Return(&sqs.DeleteMessageOutput{}, nil).Once()

		repo := new(MockOrderRepository)
		repo.On("DeleteCustomerData", mock.Anything, customerID).Return(int64(2), nil).Once()

		uow := new(MockOrderUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		uow.On("Rollback", mock.Anything).Return(errors.New("no transaction")).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewDeleteCustomerDataCommandHandler(factory, discardLogger())

		consumer := queue.NewCustomerErasureConsumer(client, testQueueURL, handler, discardLogger())
		consumer.Start(t.Context())
		waitFor(t, deleted, "message deletion")
		waitFor(t, drained, "poll loop to drain")
		consumer.Stop()

		client.AssertExpectations(t)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should leave a message with an invalid customer id in the queue", func(t *testing.T) {
		client := new(MockSQSAPI)
		drained := singleMessage(client, `{"customerId":"not-a-uuid"}`, "rh-1")

		factory := new(MockOrderUoWFactory)
		handler := commands.NewDeleteCustomerDataCommandHandler(factory, discardLogger())

		consumer := queue.NewCustomerErasureConsumer(client, testQueueURL, handler, discardLogger())
		consumer.Start(t.Context())
		waitFor(t, drained, "poll loop to drain")
		consumer.Stop()

		client.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
		factory.AssertNotCalled(t, "Create")
	})
}
