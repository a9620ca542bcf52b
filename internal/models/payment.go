package models

import (
	"time"
)

// Payment records one gateway order. A row exists iff order creation at the
// gateway succeeded; it is always looked up by OrderID.
type Payment struct {
	ID         uint       `gorm:"primaryKey" json:"-"`
	OrderID    string     `gorm:"size:64;uniqueIndex;not null" json:"order_id"`
	ProposalID string     `gorm:"size:36;index;not null" json:"proposal_id"`
	Amount     int64      `gorm:"not null" json:"amount"` // smallest currency unit (paise)
	Currency   string     `gorm:"size:3;not null;default:'INR'" json:"currency"`
	Status     string     `gorm:"size:20;not null;index" json:"status"` // created, paid
	PaymentID  string     `gorm:"size:64" json:"payment_id,omitempty"`
	Signature  string     `gorm:"size:128" json:"-"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"-"`
}

func (Payment) TableName() string { return "payments" }
