package ml

import "gonum.org/v1/gonum/mat"

// Classifier is a binary classifier over dense feature matrices. Labels are
// 0 (negative) and 1 (positive). PredictProba returns an n x 2 matrix with
// class probabilities in column order [P(0), P(1)].
type Classifier interface {
	Fit(X *mat.Dense, y []float64) error
	Predict(X *mat.Dense) ([]int, error)
	PredictProba(X *mat.Dense) (*mat.Dense, error)
	Name() string
	Params() map[string]any
}

// ImportanceReporter is implemented by models that can attribute predictive
// weight to individual features.
type ImportanceReporter interface {
	FeatureImportances() []float64
}

// probaVector runs PredictProba for a single sample and returns [P(0), P(1)].
func probaVector(c Classifier, x []float64) ([2]float64, error) {
	X := mat.NewDense(1, len(x), x)
	proba, err := c.PredictProba(X)
	if err != nil {
		return [2]float64{}, err
	}
	return [2]float64{proba.At(0, 0), proba.At(0, 1)}, nil
}

// PredictOne classifies a single sample, returning the label and the class
// probabilities.
func PredictOne(c Classifier, x []float64) (int, [2]float64, error) {
	p, err := probaVector(c, x)
	if err != nil {
		return 0, p, err
	}
	label := 0
	if p[1] >= 0.5 {
		label = 1
	}
	return label, p, nil
}
