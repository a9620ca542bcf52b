package payment

import (
	"context"
	"fmt"
	"time"
)

// StubProvider is a no-op provider for local development: every order
// succeeds and every signature verifies.
type StubProvider struct{}

func (s *StubProvider) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	return &Order{
		ID:       fmt.Sprintf("order_stub_%d", time.Now().UnixNano()),
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "created",
	}, nil
}

func (s *StubProvider) VerifySignature(orderID, paymentID, signature string) bool { return true }

func (s *StubProvider) KeyID() string { return "rzp_test_stub" }

func (s *StubProvider) Configured() bool { return true }
