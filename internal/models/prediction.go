package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is one stored clinical model inference.
type Prediction struct {
	ID               uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           string             `json:"user_id" gorm:"type:uuid;not null;index"`
	PredictionResult int                `json:"prediction_result" gorm:"not null"`
	Probability      float64            `json:"probability" gorm:"not null"`
	RiskLevel        string             `json:"risk_level" gorm:"type:varchar(50)"`
	InputData        map[string]float64 `json:"input_data" gorm:"serializer:json;type:jsonb"`
	CreatedAt        time.Time          `json:"created_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}

// LifestylePrediction is one stored lifestyle assessment, including the
// per-feature breakdown and the generated recommendations.
type LifestylePrediction struct {
	ID              uuid.UUID             `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          string                `json:"user_id" gorm:"type:uuid;not null;index"`
	RiskScore       float64               `json:"risk_score" gorm:"not null"`
	RiskLevel       string                `json:"risk_level" gorm:"type:varchar(50)"`
	Confidence      float64               `json:"confidence"`
	RiskFactors     map[string]RiskFactor `json:"risk_factors" gorm:"serializer:json;type:jsonb"`
	Recommendations []Recommendation      `json:"recommendations" gorm:"serializer:json;type:jsonb"`
	ModelVersion    string                `json:"model_version" gorm:"type:varchar(50)"`
	PredictionType  string                `json:"prediction_type" gorm:"type:varchar(50);index"`
	CreatedAt       time.Time             `json:"created_at"`
}

func (LifestylePrediction) TableName() string {
	return "lifestyle_predictions"
}

// RiskFactor pairs the submitted feature value with the model's importance
// weight for that feature.
type RiskFactor struct {
	Value      float64 `json:"value"`
	Importance float64 `json:"importance"`
}

type Recommendation struct {
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// PredictionResponse is the wire shape shared by both inference endpoints.
type PredictionResponse struct {
	PCOSRisk           int                   `json:"pcos_risk"`
	Probability        float64               `json:"probability"`
	HealthyProbability float64               `json:"healthy_probability"`
	RiskLevel          string                `json:"risk_level"`
	PredictionText     string                `json:"prediction_text"`
	Confidence         float64               `json:"confidence"`
	RiskFactors        map[string]RiskFactor `json:"risk_factors,omitempty"`
	Recommendations    []Recommendation      `json:"recommendations,omitempty"`
	InputFeatures      map[string]float64    `json:"input_features"`
}
