package payment

import (
	"context"
)

// OrderRequest describes a gateway order to open. Amount is in the smallest
// currency unit (paise for INR).
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Order is the gateway's view of a created order.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Status   string
}

type Provider interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	// VerifySignature recomputes the gateway signature for orderID|paymentID
	// and compares it in constant time against the claimed one.
	VerifySignature(orderID, paymentID, signature string) bool
	// KeyID is the public key identifier, safe to expose to checkout clients.
	KeyID() string
	// Configured reports whether credentials are present. When false,
	// CreateOrder fails fast without any network I/O.
	Configured() bool
}
