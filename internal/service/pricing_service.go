package service

import (
	"log"
	"time"

	"cupid/internal/models"
)

// Hard-coded fallback used whenever the settings row is missing or the store
// is unreachable. Pricing reads fail open: a broken settings table must never
// block order creation.
const (
	DefaultAmount       = 14900 // paise
	DefaultCurrency     = "INR"
	DefaultDisplayPrice = "₹149"
)

type SettingStore interface {
	GetPricing() (*models.PricingSetting, error)
	UpsertPricing(s *models.PricingSetting) error
}

type PricingService struct {
	settings SettingStore
}

func NewPricingService(settings SettingStore) *PricingService {
	return &PricingService{settings: settings}
}

// CurrentPrice returns the stored amount, or the default when the record is
// absent or the store errors.
func (s *PricingService) CurrentPrice() int64 {
	p, err := s.settings.GetPricing()
	if err != nil {
		log.Printf("[pricing] read failed, using default: %v", err)
		return DefaultAmount
	}
	if p == nil {
		return DefaultAmount
	}
	return p.Amount
}

// Details returns the full pricing record, lazily persisting the default the
// first time it is requested so later reads are consistent.
func (s *PricingService) Details() *models.PricingSetting {
	fallback := &models.PricingSetting{
		Key:          models.PricingKey,
		Amount:       DefaultAmount,
		Currency:     DefaultCurrency,
		DisplayPrice: DefaultDisplayPrice,
	}
	p, err := s.settings.GetPricing()
	if err != nil {
		log.Printf("[pricing] read failed, using default: %v", err)
		return fallback
	}
	if p == nil {
		if err := s.settings.UpsertPricing(fallback); err != nil {
			log.Printf("[pricing] default persist failed: %v", err)
		}
		return fallback
	}
	return p
}

// Update upserts the singleton record. Amount is trusted as-is; the endpoint
// is admin-only.
func (s *PricingService) Update(amount int64, displayPrice string) error {
	return s.settings.UpsertPricing(&models.PricingSetting{
		Key:          models.PricingKey,
		Amount:       amount,
		Currency:     DefaultCurrency,
		DisplayPrice: displayPrice,
		UpdatedAt:    time.Now().UTC(),
	})
}
