package ml

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestDecisionTree_SeparableData(t *testing.T) {
	X, y := separableDataset(200, 5)

	tree := NewDecisionTree()
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	pred, err := tree.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if acc := Accuracy(y, pred); acc < 0.95 {
		t.Errorf("training accuracy = %v, want >= 0.95", acc)
	}
}

func TestDecisionTree_RespectsMaxDepth(t *testing.T) {
	X, y := separableDataset(100, 6)

	tree := NewDecisionTree()
	tree.MaxDepth = 1
	if err := tree.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if tree.Root.Leaf {
		t.Fatal("depth-1 tree on separable data should split at the root")
	}
	if !tree.Root.Left.Leaf || !tree.Root.Right.Leaf {
		t.Error("children of a depth-1 tree must be leaves")
	}
}

func TestRandomForest_SeparableData(t *testing.T) {
	X, y := separableDataset(200, 7)

	rf := NewRandomForest()
	rf.NEstimators = 20
	rf.Seed = 7
	if err := rf.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	pred, err := rf.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if acc := Accuracy(y, pred); acc < 0.95 {
		t.Errorf("training accuracy = %v, want >= 0.95", acc)
	}
}

func TestRandomForest_Deterministic(t *testing.T) {
	X, y := separableDataset(100, 8)

	run := func() []int {
		rf := NewRandomForest()
		rf.NEstimators = 10
		rf.Seed = 99
		if err := rf.Fit(X, y); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		pred, err := rf.Predict(X)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		return pred
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("predictions differ at %d with identical seeds", i)
		}
	}
}

func TestRandomForest_ProbabilitiesAveraged(t *testing.T) {
	X, y := separableDataset(100, 9)

	rf := NewRandomForest()
	rf.NEstimators = 15
	rf.Seed = 9
	if err := rf.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	proba, err := rf.PredictProba(X)
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	rows, _ := proba.Dims()
	for i := 0; i < rows; i++ {
		sum := proba.At(i, 0) + proba.At(i, 1)
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("row %d probabilities sum to %v", i, sum)
		}
	}
}

func TestRandomForest_FeatureImportances(t *testing.T) {
	// second feature is pure noise, first carries the signal
	rows := 200
	X := mat.NewDense(rows, 2, nil)
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		if i%2 == 0 {
			X.Set(i, 0, -1)
		} else {
			X.Set(i, 0, 1)
			y[i] = 1
		}
		X.Set(i, 1, float64(i%7)-3)
	}

	rf := NewRandomForest()
	rf.NEstimators = 20
	rf.Seed = 10
	if err := rf.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	importances := rf.FeatureImportances()
	if len(importances) != 2 {
		t.Fatalf("expected 2 importances, got %d", len(importances))
	}
	if importances[0] <= importances[1] {
		t.Errorf("signal feature importance %v should exceed noise %v", importances[0], importances[1])
	}
}

func TestRandomForest_BalancedWeights(t *testing.T) {
	rf := NewRandomForest()
	rf.BalancedWeights = true

	// 8 negatives, 2 positives
	y := []float64{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}
	weights := rf.sampleWeights(y)

	// minority class weight must exceed majority
	if weights[8] <= weights[0] {
		t.Errorf("minority weight %v should exceed majority weight %v", weights[8], weights[0])
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if math.Abs(total-float64(len(y))) > 1e-9 {
		t.Errorf("balanced weights sum to %v, want %d", total, len(y))
	}
}
