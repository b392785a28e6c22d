package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sumaiya226/PCOS/internal/models"
)

// historyLimit caps the rows returned by the history endpoints.
const historyLimit = 20

type PredictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Create(ctx context.Context, p *models.Prediction) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PredictionRepository) ListByUser(ctx context.Context, userID string) ([]models.Prediction, error) {
	var predictions []models.Prediction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

func (r *PredictionRepository) CreateLifestyle(ctx context.Context, p *models.LifestylePrediction) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PredictionRepository) ListLifestyleByUser(ctx context.Context, userID string) ([]models.LifestylePrediction, error) {
	var predictions []models.LifestylePrediction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND prediction_type = ?", userID, "lifestyle").
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}
