package service

import (
	"testing"
)

func TestDetailsPersistsDefaultLazily(t *testing.T) {
	store := &memStore{}
	svc := NewPricingService(&memSettings{store: store})

	p := svc.Details()
	if p.Amount != DefaultAmount || p.Currency != DefaultCurrency || p.DisplayPrice != DefaultDisplayPrice {
		t.Fatalf("expected hard-coded default, got %+v", p)
	}
	if store.pricing == nil {
		t.Fatal("first read must persist the default record")
	}

	again := svc.Details()
	if again.Amount != DefaultAmount {
		t.Fatalf("subsequent read must be consistent, got %+v", again)
	}
}

func TestUpdateThenDetails(t *testing.T) {
	store := &memStore{}
	svc := NewPricingService(&memSettings{store: store})

	if err := svc.Update(9900, "₹99"); err != nil {
		t.Fatalf("update: %v", err)
	}
	p := svc.Details()
	if p.Amount != 9900 || p.DisplayPrice != "₹99" {
		t.Fatalf("expected updated pricing, got %+v", p)
	}
	if p.UpdatedAt.IsZero() {
		t.Fatal("update must stamp updated_at")
	}
	if got := svc.CurrentPrice(); got != 9900 {
		t.Fatalf("expected current price 9900, got %d", got)
	}
}

func TestPricingReadsFailOpen(t *testing.T) {
	store := &memStore{failRead: true}
	svc := NewPricingService(&memSettings{store: store})

	if got := svc.CurrentPrice(); got != DefaultAmount {
		t.Fatalf("broken store must fall back to default amount, got %d", got)
	}
	p := svc.Details()
	if p.Amount != DefaultAmount || p.DisplayPrice != DefaultDisplayPrice {
		t.Fatalf("broken store must fall back to default details, got %+v", p)
	}
	if store.pricing != nil {
		t.Fatal("fail-open read must not persist anything")
	}
}

func TestDetailsSurvivesPersistFailure(t *testing.T) {
	store := &memStore{failWrite: true}
	svc := NewPricingService(&memSettings{store: store})

	p := svc.Details()
	if p.Amount != DefaultAmount {
		t.Fatalf("default must be returned even when the lazy persist fails, got %+v", p)
	}
}
