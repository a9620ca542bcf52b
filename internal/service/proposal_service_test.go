package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"cupid/internal/domain"
)

func TestCreatePendingOrderLeavesProposalUnpaid(t *testing.T) {
	store := &memStore{}
	gateway := &fakeGateway{}
	svc := newTestService(store, gateway)

	order, err := svc.CreatePendingOrder(context.Background(), "Asha", "", "")
	if err != nil {
		t.Fatalf("create pending order: %v", err)
	}
	if order.Amount != DefaultAmount {
		t.Fatalf("expected default amount %d, got %d", DefaultAmount, order.Amount)
	}
	if order.Currency != DefaultCurrency {
		t.Fatalf("expected currency %s, got %s", DefaultCurrency, order.Currency)
	}
	if order.KeyID != "rzp_test_fake" {
		t.Fatalf("expected public key id, got %q", order.KeyID)
	}

	proposal, err := svc.Get(order.ProposalID)
	if err != nil {
		t.Fatalf("get proposal: %v", err)
	}
	if proposal.Paid {
		t.Fatal("freshly created order must not be paid")
	}
	if proposal.PaymentStatus != domain.PaymentStatusPending {
		t.Fatalf("expected payment_status pending, got %q", proposal.PaymentStatus)
	}
	if proposal.CustomMessage != domain.DefaultMessage {
		t.Fatalf("expected default message, got %q", proposal.CustomMessage)
	}
	if proposal.CharacterChoice != domain.DefaultCharacter {
		t.Fatalf("expected default character, got %q", proposal.CharacterChoice)
	}

	if len(store.payments) != 1 {
		t.Fatalf("expected one payment record, got %d", len(store.payments))
	}
	pay := store.payments[0]
	if pay.OrderID != order.OrderID || pay.ProposalID != order.ProposalID {
		t.Fatalf("payment record not linked: %+v", pay)
	}
	if pay.Status != domain.OrderStatusCreated {
		t.Fatalf("expected payment status created, got %q", pay.Status)
	}
}

func TestCreatePendingOrderValidation(t *testing.T) {
	svc := newTestService(&memStore{}, &fakeGateway{})

	cases := []struct {
		name    string
		message string
	}{
		{"", ""},
		{strings.Repeat("a", 101), ""},
		{"Asha", strings.Repeat("b", 501)},
	}
	for _, tc := range cases {
		_, err := svc.CreatePendingOrder(context.Background(), tc.name, tc.message, "")
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("name=%q msg-len=%d: expected validation error, got %v", tc.name, len(tc.message), err)
		}
	}
}

func TestCreatePendingOrderGatewayFailure(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store, &fakeGateway{failCreate: true})

	_, err := svc.CreatePendingOrder(context.Background(), "Asha", "", "")
	var gErr *domain.GatewayError
	if !errors.As(err, &gErr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
	// The pending proposal row remains, orphaned and unpaid.
	if len(store.proposals) != 1 {
		t.Fatalf("expected orphaned pending proposal, got %d rows", len(store.proposals))
	}
	if store.proposals[0].Paid {
		t.Fatal("orphaned proposal must stay unpaid")
	}
	if len(store.payments) != 0 {
		t.Fatalf("no payment row expected on gateway failure, got %d", len(store.payments))
	}
}

func TestCreateFreeProposal(t *testing.T) {
	svc := newTestService(&memStore{}, &fakeGateway{})

	proposal, err := svc.CreateFreeProposal("Meera", "Be mine?", "penguin")
	if err != nil {
		t.Fatalf("create free proposal: %v", err)
	}
	if !proposal.Paid {
		t.Fatal("free proposal must be paid immediately")
	}
	if proposal.Accepted != nil {
		t.Fatal("new proposal must be unanswered")
	}
	if proposal.PaymentStatus != "" {
		t.Fatalf("free path must not track payment_status, got %q", proposal.PaymentStatus)
	}
	if proposal.CustomMessage != "Be mine?" || proposal.CharacterChoice != "penguin" {
		t.Fatalf("inputs not preserved: %+v", proposal)
	}
}

func TestVerifyAndActivateRoundTrip(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store, &fakeGateway{})

	order, err := svc.CreatePendingOrder(context.Background(), "Asha", "", "")
	if err != nil {
		t.Fatalf("create pending order: %v", err)
	}

	proposal, err := svc.VerifyAndActivate(order.OrderID, "pay_123", "valid-signature", order.ProposalID)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !proposal.Paid {
		t.Fatal("verified proposal must be paid")
	}
	if proposal.PaymentStatus != domain.PaymentStatusCompleted {
		t.Fatalf("expected payment_status completed, got %q", proposal.PaymentStatus)
	}
	if proposal.PaymentID != "pay_123" {
		t.Fatalf("expected payment id recorded, got %q", proposal.PaymentID)
	}

	pay := store.payments[0]
	if pay.Status != domain.OrderStatusPaid {
		t.Fatalf("expected payment status paid, got %q", pay.Status)
	}
	if pay.PaidAt == nil || pay.Signature != "valid-signature" {
		t.Fatalf("payment verification fields not stored: %+v", pay)
	}

	got, err := svc.Get(order.ProposalID)
	if err != nil {
		t.Fatalf("get after verify: %v", err)
	}
	if !got.Paid {
		t.Fatal("re-read proposal must be paid")
	}
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store, &fakeGateway{})

	order, err := svc.CreatePendingOrder(context.Background(), "Asha", "", "")
	if err != nil {
		t.Fatalf("create pending order: %v", err)
	}
	_, err = svc.VerifyAndActivate(order.OrderID, "pay_123", "forged", order.ProposalID)
	if !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("expected invalid signature error, got %v", err)
	}
	proposal, _ := svc.Get(order.ProposalID)
	if proposal.Paid {
		t.Fatal("proposal must stay unpaid after rejected verify")
	}
	if store.payments[0].Status != domain.OrderStatusCreated {
		t.Fatal("payment must stay in created state after rejected verify")
	}
}

func TestVerifyRejectsMismatchedProposal(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store, &fakeGateway{})

	first, err := svc.CreatePendingOrder(context.Background(), "Asha", "", "")
	if err != nil {
		t.Fatalf("create first order: %v", err)
	}
	second, err := svc.CreatePendingOrder(context.Background(), "Meera", "", "")
	if err != nil {
		t.Fatalf("create second order: %v", err)
	}

	_, err = svc.VerifyAndActivate(first.OrderID, "pay_123", "valid-signature", second.ProposalID)
	if !errors.Is(err, domain.ErrProposalMismatch) {
		t.Fatalf("expected proposal mismatch error, got %v", err)
	}
	for _, id := range []string{first.ProposalID, second.ProposalID} {
		p, _ := svc.Get(id)
		if p.Paid {
			t.Fatalf("proposal %s must not be activated by mismatched verify", id)
		}
	}
}

func TestVerifyUnknownOrder(t *testing.T) {
	svc := newTestService(&memStore{}, &fakeGateway{})
	_, err := svc.VerifyAndActivate("order_missing", "pay_123", "valid-signature", "prop_missing")
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Fatalf("expected payment not found, got %v", err)
	}
}

func TestRespondSetsAndClearsAcceptedAt(t *testing.T) {
	svc := newTestService(&memStore{}, &fakeGateway{})
	proposal, err := svc.CreateFreeProposal("Meera", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	accepted, err := svc.Respond(proposal.PublicID, true)
	if err != nil {
		t.Fatalf("respond accept: %v", err)
	}
	if accepted.Accepted == nil || !*accepted.Accepted {
		t.Fatal("expected accepted=true")
	}
	if accepted.AcceptedAt == nil {
		t.Fatal("accepting must stamp accepted_at")
	}

	// Declining afterwards overwrites the answer and clears the timestamp.
	declined, err := svc.Respond(proposal.PublicID, false)
	if err != nil {
		t.Fatalf("respond decline: %v", err)
	}
	if declined.Accepted == nil || *declined.Accepted {
		t.Fatal("expected accepted=false")
	}
	if declined.AcceptedAt != nil {
		t.Fatal("declining must clear accepted_at")
	}
}

func TestRespondUnknownProposal(t *testing.T) {
	svc := newTestService(&memStore{}, &fakeGateway{})
	if _, err := svc.Respond("nope", true); !errors.Is(err, domain.ErrProposalNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListClampsLimitAndOrdersNewestFirst(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store, &fakeGateway{})
	for i := 0; i < 120; i++ {
		if _, err := svc.CreateFreeProposal(fmt.Sprintf("valentine-%d", i), "", ""); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	list, err := svc.List(1, 200)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 100 {
		t.Fatalf("limit must clamp to 100, got %d", len(list))
	}
	if list[0].ValentineName != "valentine-119" {
		t.Fatalf("expected newest first, got %q", list[0].ValentineName)
	}

	page2, err := svc.List(2, 100)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page2) != 20 {
		t.Fatalf("expected remaining 20 on page 2, got %d", len(page2))
	}
	if page2[0].ValentineName != "valentine-19" {
		t.Fatalf("unexpected page 2 head: %q", page2[0].ValentineName)
	}
}
