package models

import (
	"time"
)

// PricingKey is the fixed key of the singleton pricing row.
const PricingKey = "pricing"

// PricingSetting is the singleton price record, always keyed by PricingKey.
type PricingSetting struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Key          string    `gorm:"uniqueIndex;size:50;not null" json:"-"`
	Amount       int64     `gorm:"not null" json:"amount"` // smallest currency unit (paise)
	Currency     string    `gorm:"size:3;not null" json:"currency"`
	DisplayPrice string    `gorm:"size:20;not null" json:"display_price"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PricingSetting) TableName() string { return "settings" }
