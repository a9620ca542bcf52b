package domain

import (
	"errors"
	"fmt"
)

const (
	// Proposal payment_status values. Free proposals skip the field entirely.
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

const (
	// Payment (order) statuses.
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
)

const (
	DefaultMessage   = "Will you be my Valentine?"
	DefaultCharacter = "bear"
)

const (
	MaxNameLength    = 100
	MaxMessageLength = 500
	MaxPageSize      = 100
)

var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrPaymentNotFound  = errors.New("payment not found")

	// ErrInvalidSignature means the claimed gateway signature did not match
	// the recomputed one. Client error, not a server fault.
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrProposalMismatch means the verify call named a proposal the payment
	// record does not fund.
	ErrProposalMismatch = errors.New("payment does not belong to proposal")
)

// ValidationError reports bad input on a named field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// GatewayError wraps a failure from the external payment provider.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
