package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// PaymentStatus represents the outcome of payment processing for an order.
// Pending is the initial state and the only state a transition may leave;
// payment decisions are final.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status assigned at checkout.
	PaymentPending

	// PaymentApproved indicates the payment processor accepted the charge.
	PaymentApproved

	// PaymentRejected indicates the payment processor declined the charge.
	PaymentRejected
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "Unknown",
		PaymentPending:  "Pending",
		PaymentApproved: "Approved",
		PaymentRejected: "Rejected",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:  "Pending",
		PaymentApproved: "Approved",
		PaymentRejected: "Rejected",
	}
}

// ParsePaymentStatus converts a wire representation into a PaymentStatus,
// rejecting anything outside the closed member set at decode time.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	if s == "" {
		return PaymentUnknown, errs.NewValueIsRequiredError("payment status")
	}
	for status, name := range getValidPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the PaymentStatus value is a member of the closed set.
func (p PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// OrderStatus returns the workflow status a payment outcome settles the order
// into: approval starts preparation, rejection cancels, and a replayed
// pending outcome leaves the order where checkout put it.
func (p PaymentStatus) OrderStatus() Status {
	switch p {
	case PaymentApproved:
		return StatusInPreparation
	case PaymentRejected:
		return StatusCancelled
	case PaymentPending:
		return StatusReceived
	default:
		return StatusUnknown
	}
}
