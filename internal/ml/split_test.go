package ml

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func imbalancedDataset(n int) *Dataset {
	X := mat.NewDense(n, 1, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		if i%10 < 3 { // 30% positives
			y[i] = 1
		}
	}
	return &Dataset{X: X, Y: y, FeatureNames: []string{"f0"}}
}

func positives(y []float64) int {
	count := 0
	for _, label := range y {
		if label == 1 {
			count++
		}
	}
	return count
}

func TestStratifiedSplit_PreservesRatio(t *testing.T) {
	ds := imbalancedDataset(1000)

	train, test, err := StratifiedSplit(ds, 0.2, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}

	if len(test.Y) != 200 {
		t.Errorf("test size = %d, want 200", len(test.Y))
	}
	if len(train.Y) != 800 {
		t.Errorf("train size = %d, want 800", len(train.Y))
	}

	trainRatio := float64(positives(train.Y)) / float64(len(train.Y))
	testRatio := float64(positives(test.Y)) / float64(len(test.Y))
	if trainRatio < 0.28 || trainRatio > 0.32 {
		t.Errorf("train positive ratio = %v, want ~0.30", trainRatio)
	}
	if testRatio < 0.28 || testRatio > 0.32 {
		t.Errorf("test positive ratio = %v, want ~0.30", testRatio)
	}
}

func TestStratifiedSplit_Deterministic(t *testing.T) {
	ds := imbalancedDataset(100)

	_, test1, err := StratifiedSplit(ds, 0.2, 7)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}
	_, test2, err := StratifiedSplit(ds, 0.2, 7)
	if err != nil {
		t.Fatalf("StratifiedSplit: %v", err)
	}

	for i := range test1.Y {
		if test1.X.At(i, 0) != test2.X.At(i, 0) {
			t.Fatal("same seed must produce identical splits")
		}
	}
}

func TestStratifiedSplit_InvalidRatio(t *testing.T) {
	ds := imbalancedDataset(10)
	if _, _, err := StratifiedSplit(ds, 0, 1); err == nil {
		t.Error("expected error for ratio 0")
	}
	if _, _, err := StratifiedSplit(ds, 1, 1); err == nil {
		t.Error("expected error for ratio 1")
	}
}

func TestCrossValidate(t *testing.T) {
	X, y := separableDataset(200, 11)
	ds := &Dataset{X: X, Y: y, FeatureNames: []string{"f0", "f1"}}

	scores, err := CrossValidate(func() Classifier { return NewLogisticRegression() }, ds, 5, AccuracyScorer, 11)
	if err != nil {
		t.Fatalf("CrossValidate: %v", err)
	}

	if len(scores) != 5 {
		t.Fatalf("expected 5 fold scores, got %d", len(scores))
	}
	for fold, score := range scores {
		if score < 0.85 {
			t.Errorf("fold %d accuracy = %v, want >= 0.85 on separable data", fold, score)
		}
	}
}

func TestCrossValidate_InvalidFolds(t *testing.T) {
	ds := imbalancedDataset(10)
	factory := func() Classifier { return NewLogisticRegression() }
	if _, err := CrossValidate(factory, ds, 1, AccuracyScorer, 1); err == nil {
		t.Error("expected error for k=1")
	}
	if _, err := CrossValidate(factory, ds, 11, AccuracyScorer, 1); err == nil {
		t.Error("expected error for k > sample count")
	}
}
