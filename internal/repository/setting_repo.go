package repository

import (
	"errors"

	"cupid/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetPricing returns nil, nil when the record has not been created yet.
func (r *SettingRepository) GetPricing() (*models.PricingSetting, error) {
	var s models.PricingSetting
	err := r.db.Where("`key` = ?", models.PricingKey).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) UpsertPricing(s *models.PricingSetting) error {
	s.Key = models.PricingKey
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "currency", "display_price", "updated_at"}),
	}).Create(s).Error
}
