package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the slow-changing anthropometrics used by the lifestyle
// assessment. One row per user.
type UserProfile struct {
	ID                    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID                string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Height                float64   `json:"height"`
	Weight                float64   `json:"weight"`
	BMI                   float64   `json:"bmi"`
	FamilyHistoryPCOS     bool      `json:"family_history_pcos" gorm:"default:false"`
	FamilyHistoryDiabetes bool      `json:"family_history_diabetes" gorm:"default:false"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
