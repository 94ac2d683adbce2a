// Package customer models the customer identity resolved from the external
// customer directory at checkout time. A Customer is an immutable value once
// resolved; its email and tax id are validated value objects that fail
// construction on malformed input, so a Customer can never carry contact data
// the notification pipeline cannot use.
package customer
