package order

// PaymentNotification is the message sent to the customer-notification queue
// after a payment decision. It carries the snapshot identity, never a live
// directory lookup, so an erased or changed customer record cannot leak into
// a notification built from an older order.
type PaymentNotification struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	OrderID       string
	Status        string
	PaymentStatus string
}
