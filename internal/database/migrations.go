package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/sumaiya226/PCOS/internal/models"
)

// RunMigrations brings the schema up to date for all service entities.
func RunMigrations(db *gorm.DB) error {
	slog.Info("Starting database migration")

	err := db.AutoMigrate(
		&models.User{},
		&models.Prediction{},
		&models.UserProfile{},
		&models.SymptomLog{},
		&models.LifestylePrediction{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("index creation failed: %w", err)
	}

	slog.Info("Database migration completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_predictions_user_created ON predictions(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_lifestyle_predictions_user_created ON lifestyle_predictions(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_symptom_logs_user_date ON symptom_logs(user_id, log_date DESC)",

		// GIN indexes for the JSONB payload columns
		"CREATE INDEX IF NOT EXISTS idx_predictions_input_gin ON predictions USING GIN (input_data)",
		"CREATE INDEX IF NOT EXISTS idx_lifestyle_predictions_factors_gin ON lifestyle_predictions USING GIN (risk_factors)",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			slog.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	return nil
}
