package ml

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomForest bags decorrelated CART trees: each tree trains on a bootstrap
// sample and considers sqrt(n_features) candidates per split. Probabilities
// are averaged over the ensemble.
type RandomForest struct {
	NEstimators     int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	BalancedWeights bool
	Seed            int64

	Trees     []*DecisionTree
	NFeatures int
}

func NewRandomForest() *RandomForest {
	return &RandomForest{
		NEstimators:     100,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
	}
}

func (rf *RandomForest) Name() string { return "Random Forest" }

func (rf *RandomForest) Params() map[string]any {
	return map[string]any{
		"n_estimators":      rf.NEstimators,
		"max_depth":         rf.MaxDepth,
		"min_samples_split": rf.MinSamplesSplit,
		"min_samples_leaf":  rf.MinSamplesLeaf,
		"balanced_weights":  rf.BalancedWeights,
	}
}

func (rf *RandomForest) Fit(X *mat.Dense, y []float64) error {
	rows, cols := X.Dims()
	if rows == 0 {
		return errors.New("ml: cannot fit on empty dataset")
	}
	if rows != len(y) {
		return fmt.Errorf("ml: X has %d rows but y has %d labels", rows, len(y))
	}

	rf.NFeatures = cols
	rf.Trees = make([]*DecisionTree, rf.NEstimators)

	weights := rf.sampleWeights(y)
	rng := rand.New(rand.NewSource(rf.Seed))

	rowBuf := make([]float64, cols)
	for i := 0; i < rf.NEstimators; i++ {
		bootX := mat.NewDense(rows, cols, nil)
		bootY := make([]float64, rows)
		bootW := make([]float64, rows)
		for k := 0; k < rows; k++ {
			idx := rng.Intn(rows)
			mat.Row(rowBuf, idx, X)
			bootX.SetRow(k, rowBuf)
			bootY[k] = y[idx]
			bootW[k] = weights[idx]
		}

		tree := &DecisionTree{
			MaxDepth:        rf.MaxDepth,
			MinSamplesSplit: rf.MinSamplesSplit,
			MinSamplesLeaf:  rf.MinSamplesLeaf,
			MaxFeatures:     sqrtFeatures(cols),
			Seed:            rng.Int63(),
		}
		if err := tree.FitWeighted(bootX, bootY, bootW); err != nil {
			return fmt.Errorf("ml: fitting tree %d: %w", i, err)
		}
		rf.Trees[i] = tree
	}

	return nil
}

// sampleWeights implements balanced class weighting:
// n_samples / (n_classes * class_count).
func (rf *RandomForest) sampleWeights(y []float64) []float64 {
	weights := make([]float64, len(y))
	if !rf.BalancedWeights {
		for i := range weights {
			weights[i] = 1
		}
		return weights
	}

	n1 := 0.0
	for _, label := range y {
		n1 += label
	}
	n0 := float64(len(y)) - n1
	w0, w1 := 1.0, 1.0
	if n0 > 0 {
		w0 = float64(len(y)) / (2 * n0)
	}
	if n1 > 0 {
		w1 = float64(len(y)) / (2 * n1)
	}

	for i, label := range y {
		if label == 1 {
			weights[i] = w1
		} else {
			weights[i] = w0
		}
	}
	return weights
}

func (rf *RandomForest) PredictProba(X *mat.Dense) (*mat.Dense, error) {
	if len(rf.Trees) == 0 {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != rf.NFeatures {
		return nil, fmt.Errorf("ml: model fitted on %d features, got %d", rf.NFeatures, cols)
	}

	proba := mat.NewDense(rows, 2, nil)
	for _, tree := range rf.Trees {
		treeProba, err := tree.PredictProba(X)
		if err != nil {
			return nil, err
		}
		proba.Add(proba, treeProba)
	}
	proba.Scale(1/float64(len(rf.Trees)), proba)
	return proba, nil
}

func (rf *RandomForest) Predict(X *mat.Dense) ([]int, error) {
	proba, err := rf.PredictProba(X)
	if err != nil {
		return nil, err
	}
	rows, _ := proba.Dims()
	labels := make([]int, rows)
	for i := 0; i < rows; i++ {
		if proba.At(i, 1) >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}

// FeatureImportances averages the impurity-decrease importances of the trees.
func (rf *RandomForest) FeatureImportances() []float64 {
	if len(rf.Trees) == 0 {
		return nil
	}
	out := make([]float64, rf.NFeatures)
	for _, tree := range rf.Trees {
		for j, v := range tree.Importances {
			out[j] += v
		}
	}
	for j := range out {
		out[j] /= float64(len(rf.Trees))
	}
	return out
}
