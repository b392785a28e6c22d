package ml

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Bundle packages a fitted model with the scaler and feature ordering it was
// trained against, so the server can reload the full inference pipeline from
// a single file.
type Bundle struct {
	Model        Classifier
	Scaler       *StandardScaler
	FeatureNames []string
	Metadata     BundleMetadata
	CreatedAt    time.Time
}

type BundleMetadata struct {
	ID                string
	ModelName         string
	ModelVersion      string
	Dataset           string
	TestAccuracy      float64
	TestROCAUC        float64
	CVMean            float64
	CVStd             float64
	FeatureImportance map[string]float64
	Parameters        map[string]any
}

func NewBundle(model Classifier, scaler *StandardScaler, featureNames []string) *Bundle {
	return &Bundle{
		Model:        model,
		Scaler:       scaler,
		FeatureNames: featureNames,
		CreatedAt:    time.Now().UTC(),
		Metadata: BundleMetadata{
			ID:         uuid.NewString(),
			ModelName:  model.Name(),
			Parameters: model.Params(),
		},
	}
}

func registerModels() {
	gob.Register(&LogisticRegression{})
	gob.Register(&RandomForest{})
	gob.Register(&DecisionTree{})
	gob.Register(&TreeNode{})
}

func (b *Bundle) Save(filename string) error {
	registerModels()

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create bundle file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(b); err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	return nil
}

func LoadBundle(filename string) (*Bundle, error) {
	registerModels()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle file: %w", err)
	}
	defer file.Close()

	var bundle Bundle
	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}

	return &bundle, nil
}

// ImportanceByFeature maps a model's importance vector onto the bundle's
// feature names. Returns nil when the model cannot report importances.
func (b *Bundle) ImportanceByFeature() map[string]float64 {
	reporter, ok := b.Model.(ImportanceReporter)
	if !ok {
		return nil
	}
	importances := reporter.FeatureImportances()
	if importances == nil {
		return nil
	}
	out := make(map[string]float64, len(b.FeatureNames))
	for i, name := range b.FeatureNames {
		if i < len(importances) {
			out[name] = importances[i]
		}
	}
	return out
}
