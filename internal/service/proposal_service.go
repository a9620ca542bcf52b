package service

import (
	"context"
	"time"
	"unicode/utf8"

	"cupid/internal/domain"
	"cupid/internal/models"
	"cupid/pkg/payment"

	"github.com/google/uuid"
)

type ProposalStore interface {
	Create(p *models.Proposal) error
	GetByPublicID(id string) (*models.Proposal, error)
	Update(p *models.Proposal) error
	List(offset, limit int) ([]models.Proposal, error)
}

type PaymentStore interface {
	Create(p *models.Payment) error
	GetByOrderID(orderID string) (*models.Payment, error)
	ActivateProposal(orderID, proposalID, paymentID, signature string, paidAt time.Time) (*models.Proposal, error)
}

// ProposalService owns the proposal state machine: payment axis
// (unpaid -> paid, one-way) and response axis (unanswered -> accepted or
// declined, last write wins).
type ProposalService struct {
	proposals ProposalStore
	payments  PaymentStore
	pricing   *PricingService
	gateway   payment.Provider
}

func NewProposalService(proposals ProposalStore, payments PaymentStore, pricing *PricingService, gateway payment.Provider) *ProposalService {
	return &ProposalService{proposals: proposals, payments: payments, pricing: pricing, gateway: gateway}
}

// PendingOrder is what a checkout client needs to complete payment. KeyID is
// the gateway's public identifier, never the secret.
type PendingOrder struct {
	OrderID    string `json:"order_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	KeyID      string `json:"key_id"`
	ProposalID string `json:"proposal_id"`
}

func validateInput(name, message string) error {
	if name == "" {
		return &domain.ValidationError{Field: "valentine_name", Reason: "required"}
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return &domain.ValidationError{Field: "valentine_name", Reason: "must be at most 100 characters"}
	}
	if utf8.RuneCountInString(message) > domain.MaxMessageLength {
		return &domain.ValidationError{Field: "custom_message", Reason: "must be at most 500 characters"}
	}
	return nil
}

func newProposal(name, message, character string) *models.Proposal {
	if message == "" {
		message = domain.DefaultMessage
	}
	if character == "" {
		character = domain.DefaultCharacter
	}
	return &models.Proposal{
		PublicID:        uuid.New().String(),
		ValentineName:   name,
		CustomMessage:   message,
		CharacterChoice: character,
	}
}

// CreatePendingOrder creates an unpaid proposal, opens a gateway order for the
// current price, and records the payment. A gateway failure leaves the pending
// proposal row behind; it is unreachable by the recipient flow (paid=false)
// and there is no rollback.
func (s *ProposalService) CreatePendingOrder(ctx context.Context, name, message, character string) (*PendingOrder, error) {
	if err := validateInput(name, message); err != nil {
		return nil, err
	}
	amount := s.pricing.CurrentPrice()

	proposal := newProposal(name, message, character)
	proposal.PaymentStatus = domain.PaymentStatusPending
	if err := s.proposals.Create(proposal); err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, payment.OrderRequest{
		Amount:   amount,
		Currency: DefaultCurrency,
		Receipt:  "proposal_" + proposal.PublicID[:8],
		Notes: map[string]string{
			"proposal_id":    proposal.PublicID,
			"valentine_name": name,
		},
	})
	if err != nil {
		return nil, &domain.GatewayError{Op: "create order", Err: err}
	}

	if err := s.payments.Create(&models.Payment{
		OrderID:    order.ID,
		ProposalID: proposal.PublicID,
		Amount:     amount,
		Currency:   DefaultCurrency,
		Status:     domain.OrderStatusCreated,
	}); err != nil {
		return nil, err
	}

	return &PendingOrder{
		OrderID:    order.ID,
		Amount:     amount,
		Currency:   DefaultCurrency,
		KeyID:      s.gateway.KeyID(),
		ProposalID: proposal.PublicID,
	}, nil
}

// CreateFreeProposal bypasses payment and creates an already-paid proposal.
// Kept for the legacy zero-cost path.
func (s *ProposalService) CreateFreeProposal(name, message, character string) (*models.Proposal, error) {
	if err := validateInput(name, message); err != nil {
		return nil, err
	}
	proposal := newProposal(name, message, character)
	proposal.Paid = true
	if err := s.proposals.Create(proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// VerifyAndActivate checks the claimed gateway signature and, on match,
// promotes the payment and its proposal to paid in one transaction. The
// payment row must reference the submitted proposal; a mismatch is rejected
// rather than activating an unrelated proposal.
func (s *ProposalService) VerifyAndActivate(orderID, paymentID, signature, proposalID string) (*models.Proposal, error) {
	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		return nil, domain.ErrInvalidSignature
	}
	pay, err := s.payments.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if pay == nil {
		return nil, domain.ErrPaymentNotFound
	}
	if pay.ProposalID != proposalID {
		return nil, domain.ErrProposalMismatch
	}
	return s.payments.ActivateProposal(orderID, proposalID, paymentID, signature, time.Now().UTC())
}

func (s *ProposalService) Get(id string) (*models.Proposal, error) {
	p, err := s.proposals.GetByPublicID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProposalNotFound
	}
	return p, nil
}

// Respond records the recipient's answer. Accepting stamps accepted_at;
// declining clears it, even after a prior accept.
func (s *ProposalService) Respond(id string, accepted bool) (*models.Proposal, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	p.Accepted = &accepted
	if accepted {
		now := time.Now().UTC()
		p.AcceptedAt = &now
	} else {
		p.AcceptedAt = nil
	}
	if err := s.proposals.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns proposals newest first. Page is 1-indexed; limit is clamped
// to at most 100.
func (s *ProposalService) List(page, limit int) ([]models.Proposal, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}
	return s.proposals.List((page-1)*limit, limit)
}
