package commands_test

import (
	"testing"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmPaymentCommand(t *testing.T) {
	t.Run("should create command with valid data", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewConfirmPaymentCommand(id, order.PaymentApproved)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.PaymentApproved, cmd.Outcome())
	})

	t.Run("should reject zero-value order id", func(t *testing.T) {
		_, err := commands.NewConfirmPaymentCommand(kernel.UUID{}, order.PaymentApproved)

		require.Error(t, err)
	})

	t.Run("should reject unknown outcome", func(t *testing.T) {
		_, err := commands.NewConfirmPaymentCommand(kernel.NewUUID(), order.PaymentUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero-value command on Validate", func(t *testing.T) {
		cmd := commands.ConfirmPaymentCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmPaymentCommandIsNotConstructed)
	})
}
