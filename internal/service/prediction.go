package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"time"

	"github.com/sumaiya226/PCOS/internal/config"
	"github.com/sumaiya226/PCOS/internal/ml"
	"github.com/sumaiya226/PCOS/internal/models"
)

// Risk level thresholds on the positive-class probability.
const (
	lowRiskCeiling      = 0.3
	moderateRiskCeiling = 0.7
)

// MissingFeatureError reports which required feature was absent from a
// prediction request.
type MissingFeatureError struct {
	Feature  string
	Required []string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing required feature: %s", e.Feature)
}

// ErrModelNotLoaded is returned when inference is requested before a trained
// bundle is available on disk.
type ErrModelNotLoaded struct {
	Kind string
}

func (e *ErrModelNotLoaded) Error() string {
	return fmt.Sprintf("%s model not loaded, please train the model first", e.Kind)
}

// PredictionStore persists inference results and serves the history queries.
type PredictionStore interface {
	Create(ctx context.Context, p *models.Prediction) error
	ListByUser(ctx context.Context, userID string) ([]models.Prediction, error)
	CreateLifestyle(ctx context.Context, p *models.LifestylePrediction) error
	ListLifestyleByUser(ctx context.Context, userID string) ([]models.LifestylePrediction, error)
}

// ProfileStore persists the measurements submitted with lifestyle assessments.
type ProfileStore interface {
	Upsert(ctx context.Context, profile *models.UserProfile) error
}

// PredictionService runs both inference pipelines and records their results.
type PredictionService struct {
	predictions PredictionStore
	profiles    ProfileStore

	clinical  *ml.Bundle
	lifestyle *ml.Bundle
}

func NewPredictionService(
	predictions PredictionStore,
	profiles ProfileStore,
	clinical, lifestyle *ml.Bundle,
) *PredictionService {
	return &PredictionService{
		predictions: predictions,
		profiles:    profiles,
		clinical:    clinical,
		lifestyle:   lifestyle,
	}
}

// LoadModelBundles reads both saved pipelines from the model directory. A
// missing bundle is logged, not fatal: the server starts and the affected
// endpoints answer with a train-first error.
func LoadModelBundles(cfg config.ModelConfig) (clinical, lifestyle *ml.Bundle) {
	var err error

	clinical, err = ml.LoadBundle(filepath.Join(cfg.Dir, cfg.ClinicalFile))
	if err != nil {
		slog.Warn("Clinical model bundle not loaded", "error", err)
	} else {
		slog.Info("Clinical model loaded",
			"model", clinical.Metadata.ModelName,
			"features", clinical.FeatureNames,
		)
	}

	lifestyle, err = ml.LoadBundle(filepath.Join(cfg.Dir, cfg.LifestyleFile))
	if err != nil {
		slog.Warn("Lifestyle model bundle not loaded", "error", err)
	} else {
		slog.Info("Lifestyle model loaded",
			"model", lifestyle.Metadata.ModelName,
			"features", lifestyle.FeatureNames,
		)
	}

	return clinical, lifestyle
}

func (s *PredictionService) ClinicalReady() bool  { return s.clinical != nil }
func (s *PredictionService) LifestyleReady() bool { return s.lifestyle != nil }

func (s *PredictionService) ClinicalFeatureNames() []string {
	if s.clinical == nil {
		return nil
	}
	return s.clinical.FeatureNames
}

func (s *PredictionService) LifestyleFeatureNames() []string {
	if s.lifestyle == nil {
		return nil
	}
	return s.lifestyle.FeatureNames
}

// RiskLevel maps a positive-class probability onto the three-tier scale.
func RiskLevel(p float64) string {
	switch {
	case p < lowRiskCeiling:
		return "Low"
	case p < moderateRiskCeiling:
		return "Moderate"
	default:
		return "High"
	}
}

// featureVector assembles the input map into the bundle's feature order.
func featureVector(bundle *ml.Bundle, input map[string]float64) ([]float64, error) {
	vector := make([]float64, len(bundle.FeatureNames))
	for i, name := range bundle.FeatureNames {
		value, ok := input[name]
		if !ok {
			return nil, &MissingFeatureError{Feature: name, Required: bundle.FeatureNames}
		}
		vector[i] = value
	}
	return vector, nil
}

func (s *PredictionService) infer(bundle *ml.Bundle, input map[string]float64) (int, [2]float64, error) {
	vector, err := featureVector(bundle, input)
	if err != nil {
		return 0, [2]float64{}, err
	}

	scaled, err := bundle.Scaler.TransformVector(vector)
	if err != nil {
		return 0, [2]float64{}, fmt.Errorf("scaling input: %w", err)
	}

	return ml.PredictOne(bundle.Model, scaled)
}

// Predict runs the clinical model and records the outcome for the user.
func (s *PredictionService) Predict(ctx context.Context, userID string, input map[string]float64) (*models.PredictionResponse, error) {
	if s.clinical == nil {
		return nil, &ErrModelNotLoaded{Kind: "clinical"}
	}

	label, proba, err := s.infer(s.clinical, input)
	if err != nil {
		return nil, err
	}

	pcosProbability := proba[1]
	riskLevel := RiskLevel(pcosProbability)

	record := &models.Prediction{
		UserID:           userID,
		PredictionResult: label,
		Probability:      pcosProbability,
		RiskLevel:        riskLevel,
		InputData:        input,
	}
	if err := s.predictions.Create(ctx, record); err != nil {
		// inference already succeeded, only the audit row is lost
		slog.Error("Failed to save prediction", "error", err, "user_id", userID)
	}

	predictionText := "Healthy"
	if label == 1 {
		predictionText = "PCOS Likely"
	}

	return &models.PredictionResponse{
		PCOSRisk:           label,
		Probability:        round3(pcosProbability),
		HealthyProbability: round3(proba[0]),
		RiskLevel:          riskLevel,
		PredictionText:     predictionText,
		Confidence:         round3(math.Max(proba[0], proba[1])),
		InputFeatures:      input,
	}, nil
}

// Assess runs the lifestyle model, enriches the response with the
// per-feature importance breakdown and rule-based recommendations, and
// persists both the assessment and the user's profile measurements.
func (s *PredictionService) Assess(ctx context.Context, userID string, input map[string]float64) (*models.PredictionResponse, error) {
	if s.lifestyle == nil {
		return nil, &ErrModelNotLoaded{Kind: "lifestyle"}
	}

	label, proba, err := s.infer(s.lifestyle, input)
	if err != nil {
		return nil, err
	}

	pcosProbability := proba[1]
	riskLevel := RiskLevel(pcosProbability)
	confidence := math.Max(proba[0], proba[1])

	riskFactors := make(map[string]models.RiskFactor, len(s.lifestyle.FeatureNames))
	importance := s.lifestyle.ImportanceByFeature()
	for _, name := range s.lifestyle.FeatureNames {
		riskFactors[name] = models.RiskFactor{
			Value:      input[name],
			Importance: importance[name],
		}
	}

	recommendations := GenerateRecommendations(input, riskLevel)

	s.saveProfile(ctx, userID, input)

	record := &models.LifestylePrediction{
		UserID:          userID,
		RiskScore:       pcosProbability,
		RiskLevel:       riskLevel,
		Confidence:      confidence,
		RiskFactors:     riskFactors,
		Recommendations: recommendations,
		ModelVersion:    s.lifestyle.Metadata.ModelVersion,
		PredictionType:  "lifestyle",
	}
	if err := s.predictions.CreateLifestyle(ctx, record); err != nil {
		slog.Error("Failed to save lifestyle prediction", "error", err, "user_id", userID)
	}

	predictionText := "Low Risk"
	if label == 1 {
		predictionText = "PCOS Risk Detected"
	}

	return &models.PredictionResponse{
		PCOSRisk:           label,
		Probability:        round3(pcosProbability),
		HealthyProbability: round3(proba[0]),
		RiskLevel:          riskLevel,
		PredictionText:     predictionText,
		Confidence:         round3(confidence),
		RiskFactors:        riskFactors,
		Recommendations:    recommendations,
		InputFeatures:      input,
	}, nil
}

// saveProfile upserts height/weight measurements when the assessment
// includes them. BMI is derived from height in centimetres.
func (s *PredictionService) saveProfile(ctx context.Context, userID string, input map[string]float64) {
	height, hasHeight := input["height"]
	weight, hasWeight := input["weight"]
	if !hasHeight || !hasWeight || height <= 0 {
		return
	}

	meters := height / 100
	profile := &models.UserProfile{
		UserID:            userID,
		Height:            height,
		Weight:            weight,
		BMI:               weight / (meters * meters),
		FamilyHistoryPCOS: input["FamilyHistory"] == 1,
		UpdatedAt:         time.Now().UTC(),
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		slog.Error("Failed to save user profile", "error", err, "user_id", userID)
	}
}

func (s *PredictionService) History(ctx context.Context, userID string) ([]models.Prediction, error) {
	return s.predictions.ListByUser(ctx, userID)
}

func (s *PredictionService) LifestyleHistory(ctx context.Context, userID string) ([]models.LifestylePrediction, error) {
	return s.predictions.ListLifestyleByUser(ctx, userID)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
