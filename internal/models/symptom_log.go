package models

import (
	"time"

	"github.com/google/uuid"
)

// SymptomLog is one daily self-reported symptom entry.
type SymptomLog struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         string    `json:"user_id" gorm:"type:uuid;not null;index"`
	LogDate        time.Time `json:"log_date" gorm:"type:date;not null"`
	AcneSeverity   int       `json:"acne_severity" gorm:"default:0"`
	HirsutismScore int       `json:"hirsutism_score" gorm:"default:0"`
	HairLossScore  int       `json:"hair_loss_score" gorm:"default:0"`
	FatigueLevel   int       `json:"fatigue_level" gorm:"default:0"`
	MoodSwings     int       `json:"mood_swings" gorm:"default:0"`
	AnxietyLevel   int       `json:"anxiety_level" gorm:"default:0"`
	SleepQuality   int       `json:"sleep_quality" gorm:"default:5"`
	FoodCravings   int       `json:"food_cravings" gorm:"default:0"`
	Bloating       int       `json:"bloating" gorm:"default:0"`
	PeriodFlow     string    `json:"period_flow" gorm:"type:varchar(20);default:'None'"`
	PeriodActive   bool      `json:"period_active" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
}

func (SymptomLog) TableName() string {
	return "symptom_logs"
}

// SymptomLogRequest mirrors the tracker form field names.
type SymptomLogRequest struct {
	Date         string `json:"date"`
	Acne         int    `json:"acne"`
	Hirsutism    int    `json:"hirsutism"`
	HairLoss     int    `json:"hairLoss"`
	Fatigue      int    `json:"fatigue"`
	MoodChanges  int    `json:"moodChanges"`
	Anxiety      int    `json:"anxiety"`
	SleepQuality int    `json:"sleepQuality"`
	FoodCravings int    `json:"foodCravings"`
	Bloating     int    `json:"bloating"`
	PeriodFlow   string `json:"periodFlow"`
	PeriodActive bool   `json:"periodActive"`
}
