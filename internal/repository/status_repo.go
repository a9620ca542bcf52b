package repository

import (
	"cupid/internal/models"

	"gorm.io/gorm"
)

type StatusCheckRepository struct {
	db *gorm.DB
}

func NewStatusCheckRepository(db *gorm.DB) *StatusCheckRepository {
	return &StatusCheckRepository{db: db}
}

func (r *StatusCheckRepository) Create(s *models.StatusCheck) error {
	return r.db.Create(s).Error
}

func (r *StatusCheckRepository) List(limit int) ([]models.StatusCheck, error) {
	var list []models.StatusCheck
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&list).Error
	return list, err
}
