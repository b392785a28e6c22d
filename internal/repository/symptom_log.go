package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sumaiya226/PCOS/internal/models"
)

type SymptomLogRepository struct {
	db *gorm.DB
}

func NewSymptomLogRepository(db *gorm.DB) *SymptomLogRepository {
	return &SymptomLogRepository{db: db}
}

func (r *SymptomLogRepository) Create(ctx context.Context, log *models.SymptomLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *SymptomLogRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.SymptomLog, error) {
	var logs []models.SymptomLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("log_date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
