package ml

import (
	"math"
	"strings"
	"testing"
)

func TestAccuracy(t *testing.T) {
	yTrue := []float64{0, 1, 1, 0}
	yPred := []int{0, 1, 0, 0}
	if acc := Accuracy(yTrue, yPred); acc != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", acc)
	}
}

func TestROCAUC_PerfectRanking(t *testing.T) {
	yTrue := []float64{0, 0, 1, 1}
	scores := []float64{0.1, 0.2, 0.8, 0.9}
	if auc := ROCAUC(yTrue, scores); auc != 1.0 {
		t.Errorf("ROCAUC = %v, want 1.0", auc)
	}
}

func TestROCAUC_InvertedRanking(t *testing.T) {
	yTrue := []float64{1, 1, 0, 0}
	scores := []float64{0.1, 0.2, 0.8, 0.9}
	if auc := ROCAUC(yTrue, scores); auc != 0.0 {
		t.Errorf("ROCAUC = %v, want 0.0", auc)
	}
}

func TestROCAUC_Ties(t *testing.T) {
	// all scores equal: AUC must be exactly 0.5
	yTrue := []float64{0, 1, 0, 1}
	scores := []float64{0.5, 0.5, 0.5, 0.5}
	if auc := ROCAUC(yTrue, scores); math.Abs(auc-0.5) > 1e-9 {
		t.Errorf("ROCAUC with ties = %v, want 0.5", auc)
	}
}

func TestConfusionMatrix(t *testing.T) {
	yTrue := []float64{0, 0, 1, 1, 1}
	yPred := []int{0, 1, 1, 1, 0}
	cm := ConfusionMatrix(yTrue, yPred)

	if cm[0][0] != 1 || cm[0][1] != 1 || cm[1][0] != 1 || cm[1][1] != 2 {
		t.Errorf("ConfusionMatrix = %v, want [[1 1] [1 2]]", cm)
	}
}

func TestPrecisionRecallF1(t *testing.T) {
	yTrue := []float64{1, 1, 1, 0, 0}
	yPred := []int{1, 1, 0, 1, 0}

	m := PrecisionRecallF1(yTrue, yPred, 1)
	if math.Abs(m.Precision-2.0/3.0) > 1e-9 {
		t.Errorf("Precision = %v, want 2/3", m.Precision)
	}
	if math.Abs(m.Recall-2.0/3.0) > 1e-9 {
		t.Errorf("Recall = %v, want 2/3", m.Recall)
	}
	if m.Support != 3 {
		t.Errorf("Support = %d, want 3", m.Support)
	}
}

func TestClassificationReport(t *testing.T) {
	yTrue := []float64{0, 1, 1, 0}
	yPred := []int{0, 1, 1, 1}
	report := ClassificationReport(yTrue, yPred, [2]string{"Healthy", "PCOS"})

	for _, want := range []string{"Healthy", "PCOS", "precision", "recall", "f1-score", "support", "accuracy"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
