package models

import (
	"time"
)

// StatusCheck is a diagnostic ping left by monitoring clients.
type StatusCheck struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	PublicID   string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	ClientName string    `gorm:"size:100;not null" json:"client_name"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
}

func (StatusCheck) TableName() string { return "status_checks" }
