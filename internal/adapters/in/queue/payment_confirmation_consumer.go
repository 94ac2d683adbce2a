package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// paymentConfirmationMessage is the wire shape of a payment decision arriving
// from the payment provider.
type paymentConfirmationMessage struct {
	OrderID        string `json:"orderId"`
	PaymentOutcome string `json:"paymentOutcome"`
}

// NewPaymentConfirmationConsumer creates the worker that applies payment
// decisions to orders. Messages carry {"orderId", "paymentOutcome"}.
func NewPaymentConfirmationConsumer(
	client SQSAPI,
	queueURL string,
	handler commands.ConfirmPaymentCommandHandler,
	logger *slog.Logger,
) *Consumer {
	handle := func(ctx context.Context, body string) error {
		var message paymentConfirmationMessage
		if err := json.Unmarshal([]byte(body), &message); err != nil {
			return fmt.Errorf("decoding payment confirmation: %w", err)
		}

		orderID, err := kernel.UUIDFromString(message.OrderID)
		if err != nil {
			return fmt.Errorf("payment confirmation carries invalid order id %q: %w", message.OrderID, err)
		}

		outcome, err := order.ParsePaymentStatus(message.PaymentOutcome)
		if err != nil {
			return fmt.Errorf("payment confirmation carries invalid outcome %q: %w", message.PaymentOutcome, err)
		}

		cmd, err := commands.NewConfirmPaymentCommand(orderID, outcome)
		if err != nil {
			return err
		}

		return handler.Handle(ctx, cmd)
	}

	return NewConsumer(client, queueURL, "payment_confirmation_consumer", handle, logger)
}
