package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
)

// customerErasureMessage is the wire shape of a right-to-erasure request.
type customerErasureMessage struct {
	CustomerID string `json:"customerId"`
}

// NewCustomerErasureConsumer creates the worker that strips customer data
// from orders. Messages carry {"customerId"}.
func NewCustomerErasureConsumer(
	client SQSAPI,
	queueURL string,
	handler commands.DeleteCustomerDataCommandHandler,
	logger *slog.Logger,
) *Consumer {
	handle := func(ctx context.Context, body string) error {
		var message customerErasureMessage
		if err := json.Unmarshal([]byte(body), &message); err != nil {
			return fmt.Errorf("decoding erasure request: %w", err)
		}

		customerID, err := kernel.UUIDFromString(message.CustomerID)
		if err != nil {
			return fmt.Errorf("erasure request carries invalid customer id %q: %w", message.CustomerID, err)
		}

		cmd, err := commands.NewDeleteCustomerDataCommand(customerID)
		if err != nil {
			return err
		}

		return handler.Handle(ctx, cmd)
	}

	return NewConsumer(client, queueURL, "customer_erasure_consumer", handle, logger)
}
