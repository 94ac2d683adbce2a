package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"
)

// Status represents the kitchen workflow state of an order.
//
// State transitions:
//
//	Received ──> InPreparation ──> Ready ──> Finalized
//	    │
//	    └──> Cancelled   (payment rejection only)
//
// The integer value doubles as the workflow ordinal: Received..Finalized form
// the ordered preparation sequence, and Cancelled sorts after Finalized in
// kitchen-display queries.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusReceived is the initial status assigned at checkout.
	StatusReceived

	// StatusInPreparation indicates the kitchen has started the order.
	StatusInPreparation

	// StatusReady indicates the order is ready for pickup.
	StatusReady

	// StatusFinalized indicates the order was handed over. Terminal.
	StatusFinalized

	// StatusCancelled indicates payment was rejected. Terminal, reachable
	// only from StatusReceived through payment rejection.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:       "Unknown",
		StatusReceived:      "Received",
		StatusInPreparation: "InPreparation",
		StatusReady:         "Ready",
		StatusFinalized:     "Finalized",
		StatusCancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusReceived:      "Received",
		StatusInPreparation: "InPreparation",
		StatusReady:         "Ready",
		StatusFinalized:     "Finalized",
		StatusCancelled:     "Cancelled",
	}
}

// ParseStatus converts a wire representation into a Status, rejecting
// anything outside the closed member set. An empty string is reported as a
// missing value so boundary adapters can distinguish the two failure modes.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return StatusUnknown, errs.NewValueIsRequiredError("status")
	}
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further workflow transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusFinalized || s == StatusCancelled
}

// Next returns the single valid successor in the preparation sequence.
// The second return is false for terminal and invalid statuses; Cancelled is
// excluded from the ordinal sequence entirely.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusReceived, StatusInPreparation, StatusReady:
		return s + 1, true
	default:
		return StatusUnknown, false
	}
}
