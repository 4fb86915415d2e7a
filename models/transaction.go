package models

import "time"

// Transaction is one marketplace settlement record. Payment and contact
// details are serialized to JSON and encrypted as a single payload keyed by
// the ordered (order, user) pair; the relational columns keep only the
// identifiers needed for lookup.
type Transaction struct {
	// ID is the unique transaction identifier.
	ID int64 `json:"id"`

	// OrderID references the marketplace order being settled.
	OrderID int64 `json:"order_id"`

	// UserID is the buyer the payload belongs to.
	UserID int64 `json:"user_id"`

	// Payload is the encrypted JSON form of TransactionPayload.
	Payload Envelope `json:"payload"`

	// CreatedAt is the settlement time.
	CreatedAt time.Time `json:"created_at"`
}

// Context returns the key context the transaction payload was encrypted under.
func (t Transaction) Context() KeyContext {
	return NewKeyContext(t.OrderID, t.UserID)
}

// TransactionPayload is the decrypted content of a transaction record.
// This structure is serialized to JSON and stored encrypted inside
// Transaction.Payload.
type TransactionPayload struct {
	// Payment carries how the order was paid.
	Payment PaymentInfo `json:"payment"`

	// Contact carries where and to whom the order is delivered.
	Contact ContactInfo `json:"contact"`
}

// PaymentInfo describes the payment side of a settlement.
// All fields are considered sensitive and are always encrypted.
type PaymentInfo struct {
	// Method names the payment instrument (wallet, card, cash on delivery).
	Method string `json:"method"`

	// Reference is the processor's transaction reference.
	Reference string `json:"reference,omitempty"`

	// AmountCents is the settled amount in minor currency units.
	AmountCents int64 `json:"amount_cents"`

	// Currency is the ISO 4217 currency code of the amount.
	Currency string `json:"currency"`
}

// ContactInfo describes the delivery contact of a settlement.
// All fields are considered sensitive and are always encrypted.
type ContactInfo struct {
	// Name is the recipient's full name.
	Name string `json:"name"`

	// Phone is the recipient's contact number.
	Phone string `json:"phone"`

	// Address is the delivery address as free-form text.
	Address string `json:"address"`

	// Email is an optional contact email.
	Email string `json:"email,omitempty"`
}
