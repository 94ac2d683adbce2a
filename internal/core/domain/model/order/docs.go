// Package order provides the aggregate root and business rules for the food
// order lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding item snapshots, the workflow status,
//     and the payment status
//   - Status: the kitchen workflow state machine
//     (Received -> InPreparation -> Ready -> Finalized, Cancelled as a side
//     exit on payment rejection)
//   - PaymentStatus: the payment outcome, decided exactly once
//   - Item and CustomerSnapshot: immutable copies of external catalog and
//     directory data taken at checkout time
//
// Key business rules:
//   - The total value always equals the sum of unitPrice * quantity over the
//     snapshotted items; it is computed at checkout and never mutated directly
//   - The workflow status advances exactly one step at a time and only while
//     payment is approved; Finalized and Cancelled are terminal
//   - Payment transitions away from Pending at most once; replayed
//     confirmations are rejected rather than overwriting state
//   - Status and payment status can only change through their dedicated
//     transition methods, never through the generic update path
package order
