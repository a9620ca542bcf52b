package repository

import (
	"errors"

	"cupid/internal/models"

	"gorm.io/gorm"
)

type ProposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) Create(p *models.Proposal) error {
	return r.db.Create(p).Error
}

// GetByPublicID returns nil, nil when no row matches.
func (r *ProposalRepository) GetByPublicID(id string) (*models.Proposal, error) {
	var p models.Proposal
	err := r.db.Where("public_id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProposalRepository) Update(p *models.Proposal) error {
	return r.db.Save(p).Error
}

// List returns proposals newest-created-first.
func (r *ProposalRepository) List(offset, limit int) ([]models.Proposal, error) {
	var list []models.Proposal
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}
