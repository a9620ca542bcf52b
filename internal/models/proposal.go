package models

import (
	"time"
)

// Proposal is the shareable "will you be my valentine" entity. PublicID is the
// only handle clients ever see; the numeric key stays internal.
type Proposal struct {
	ID              uint       `gorm:"primaryKey" json:"-"`
	PublicID        string     `gorm:"size:36;uniqueIndex;not null" json:"id"`
	ValentineName   string     `gorm:"size:100;not null" json:"valentine_name"`
	CustomMessage   string     `gorm:"size:500;not null" json:"custom_message"`
	CharacterChoice string     `gorm:"size:50;not null" json:"character_choice"`
	Accepted        *bool      `json:"accepted"`
	AcceptedAt      *time.Time `json:"accepted_at"`
	Paid            bool       `gorm:"not null;default:false" json:"paid"`
	PaymentStatus   string     `gorm:"size:20" json:"payment_status,omitempty"`
	PaymentID       string     `gorm:"size:64" json:"payment_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"-"`
}

func (Proposal) TableName() string { return "proposals" }
