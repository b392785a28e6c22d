package ml

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedBundle(t *testing.T, model Classifier) *Bundle {
	t.Helper()

	X, y := separableDataset(100, 20)
	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)
	require.NoError(t, model.Fit(scaled, y))

	return NewBundle(model, scaler, []string{"f0", "f1"})
}

func TestBundle_SaveLoadRoundTrip_LogisticRegression(t *testing.T) {
	bundle := trainedBundle(t, NewLogisticRegression())
	bundle.Metadata.TestAccuracy = 0.97
	bundle.Metadata.ModelVersion = "1.0"

	path := filepath.Join(t.TempDir(), "model.bundle")
	require.NoError(t, bundle.Save(path))

	loaded, err := LoadBundle(path)
	require.NoError(t, err)

	assert.Equal(t, "Logistic Regression", loaded.Metadata.ModelName)
	assert.Equal(t, bundle.Metadata.ID, loaded.Metadata.ID)
	assert.Equal(t, []string{"f0", "f1"}, loaded.FeatureNames)
	assert.Equal(t, 0.97, loaded.Metadata.TestAccuracy)

	// loaded pipeline must reproduce the original's predictions
	input := []float64{1.5, -0.5}
	origScaled, err := bundle.Scaler.TransformVector(input)
	require.NoError(t, err)
	loadedScaled, err := loaded.Scaler.TransformVector(input)
	require.NoError(t, err)
	assert.Equal(t, origScaled, loadedScaled)

	origLabel, origProba, err := PredictOne(bundle.Model, origScaled)
	require.NoError(t, err)
	loadedLabel, loadedProba, err := PredictOne(loaded.Model, loadedScaled)
	require.NoError(t, err)
	assert.Equal(t, origLabel, loadedLabel)
	assert.InDelta(t, origProba[1], loadedProba[1], 1e-12)
}

func TestBundle_SaveLoadRoundTrip_RandomForest(t *testing.T) {
	rf := NewRandomForest()
	rf.NEstimators = 10
	rf.Seed = 3
	bundle := trainedBundle(t, rf)

	path := filepath.Join(t.TempDir(), "forest.bundle")
	require.NoError(t, bundle.Save(path))

	loaded, err := LoadBundle(path)
	require.NoError(t, err)

	X, _ := separableDataset(20, 21)
	scaled, err := bundle.Scaler.Transform(X)
	require.NoError(t, err)

	origPred, err := bundle.Model.Predict(scaled)
	require.NoError(t, err)
	loadedPred, err := loaded.Model.Predict(scaled)
	require.NoError(t, err)
	assert.Equal(t, origPred, loadedPred)
}

func TestBundle_ImportanceByFeature(t *testing.T) {
	rf := NewRandomForest()
	rf.NEstimators = 10
	rf.Seed = 4
	bundle := trainedBundle(t, rf)

	importance := bundle.ImportanceByFeature()
	require.Len(t, importance, 2)
	assert.Contains(t, importance, "f0")
	assert.Contains(t, importance, "f1")
}

func TestLoadBundle_MissingFile(t *testing.T) {
	_, err := LoadBundle(filepath.Join(t.TempDir(), "nope.bundle"))
	assert.Error(t, err)
}

func TestBundle_PredictOne(t *testing.T) {
	bundle := trainedBundle(t, NewLogisticRegression())

	scaled, err := bundle.Scaler.TransformVector([]float64{2, 2})
	require.NoError(t, err)
	label, proba, err := PredictOne(bundle.Model, scaled)
	require.NoError(t, err)

	assert.Equal(t, 1, label)
	assert.Greater(t, proba[1], 0.5)
}
