package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cupid/internal/domain"
	"cupid/internal/models"
	"cupid/pkg/payment"
)

// In-memory stores mirroring the repository contracts, shared by the service
// tests so they run without MySQL.

type memStore struct {
	proposals []*models.Proposal
	payments  []*models.Payment
	pricing   *models.PricingSetting
	failRead  bool
	failWrite bool
}

var errStore = errors.New("store unavailable")

func (m *memStore) Create(p *models.Proposal) error {
	if m.failWrite {
		return errStore
	}
	p.CreatedAt = time.Now().UTC()
	m.proposals = append(m.proposals, p)
	return nil
}

func (m *memStore) GetByPublicID(id string) (*models.Proposal, error) {
	if m.failRead {
		return nil, errStore
	}
	for _, p := range m.proposals {
		if p.PublicID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memStore) Update(p *models.Proposal) error {
	if m.failWrite {
		return errStore
	}
	for i, existing := range m.proposals {
		if existing.PublicID == p.PublicID {
			m.proposals[i] = p
			return nil
		}
	}
	return errStore
}

func (m *memStore) List(offset, limit int) ([]models.Proposal, error) {
	if m.failRead {
		return nil, errStore
	}
	// newest-created-first
	var out []models.Proposal
	for i := len(m.proposals) - 1; i >= 0; i-- {
		out = append(out, *m.proposals[i])
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memPayments struct {
	store *memStore
}

func (m *memPayments) Create(p *models.Payment) error {
	if m.store.failWrite {
		return errStore
	}
	m.store.payments = append(m.store.payments, p)
	return nil
}

func (m *memPayments) GetByOrderID(orderID string) (*models.Payment, error) {
	if m.store.failRead {
		return nil, errStore
	}
	for _, p := range m.store.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPayments) ActivateProposal(orderID, proposalID, paymentID, signature string, paidAt time.Time) (*models.Proposal, error) {
	pay, err := m.GetByOrderID(orderID)
	if err != nil || pay == nil {
		return nil, errStore
	}
	pay.PaymentID = paymentID
	pay.Signature = signature
	pay.Status = domain.OrderStatusPaid
	pay.PaidAt = &paidAt
	proposal, err := m.store.GetByPublicID(proposalID)
	if err != nil || proposal == nil {
		return nil, errStore
	}
	proposal.Paid = true
	proposal.PaymentStatus = domain.PaymentStatusCompleted
	proposal.PaymentID = paymentID
	return proposal, nil
}

type memSettings struct {
	store *memStore
}

func (m *memSettings) GetPricing() (*models.PricingSetting, error) {
	if m.store.failRead {
		return nil, errStore
	}
	return m.store.pricing, nil
}

func (m *memSettings) UpsertPricing(s *models.PricingSetting) error {
	if m.store.failWrite {
		return errStore
	}
	m.store.pricing = s
	return nil
}

// fakeGateway accepts exactly the signature "valid-signature" and can be told
// to fail order creation.
type fakeGateway struct {
	created    int
	failCreate bool
}

func (g *fakeGateway) CreateOrder(ctx context.Context, req payment.OrderRequest) (*payment.Order, error) {
	if g.failCreate {
		return nil, errors.New("gateway unreachable")
	}
	g.created++
	return &payment.Order{
		ID:       fmt.Sprintf("order_test_%d", g.created),
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == "valid-signature"
}

func (g *fakeGateway) KeyID() string { return "rzp_test_fake" }

func (g *fakeGateway) Configured() bool { return true }

func newTestService(store *memStore, gateway payment.Provider) *ProposalService {
	pricing := NewPricingService(&memSettings{store: store})
	return NewProposalService(store, &memPayments{store: store}, pricing, gateway)
}
