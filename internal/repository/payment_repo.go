package repository

import (
	"errors"
	"time"

	"cupid/internal/domain"
	"cupid/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

// GetByOrderID returns nil, nil when no row matches.
func (r *PaymentRepository) GetByOrderID(orderID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.Where("order_id = ?", orderID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ActivateProposal marks the payment paid and promotes its proposal in one
// transaction, so a crash can never leave the payment paid but the proposal
// pending. Both updates are idempotent-by-value; racing verifies converge.
func (r *PaymentRepository) ActivateProposal(orderID, proposalID, paymentID, signature string, paidAt time.Time) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Payment{}).Where("order_id = ?", orderID).Updates(map[string]interface{}{
			"payment_id": paymentID,
			"signature":  signature,
			"status":     domain.OrderStatusPaid,
			"paid_at":    paidAt,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Proposal{}).Where("public_id = ?", proposalID).Updates(map[string]interface{}{
			"paid":           true,
			"payment_status": domain.PaymentStatusCompleted,
			"payment_id":     paymentID,
		}).Error; err != nil {
			return err
		}
		return tx.Where("public_id = ?", proposalID).First(&proposal).Error
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}
