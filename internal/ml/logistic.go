package ml

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LogisticRegression is a binary classifier trained with full-batch gradient
// descent and optional L2 regularization. Inputs are expected to be scaled.
type LogisticRegression struct {
	Weights []float64
	Bias    float64

	LearningRate float64
	MaxIter      int
	Tol          float64
	L2           float64
}

func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		LearningRate: 0.1,
		MaxIter:      1000,
		Tol:          1e-6,
		L2:           1e-4,
	}
}

func (lr *LogisticRegression) Name() string { return "Logistic Regression" }

func (lr *LogisticRegression) Params() map[string]any {
	return map[string]any{
		"learning_rate": lr.LearningRate,
		"max_iter":      lr.MaxIter,
		"tol":           lr.Tol,
		"l2":            lr.L2,
	}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

func (lr *LogisticRegression) Fit(X *mat.Dense, y []float64) error {
	rows, cols := X.Dims()
	if rows == 0 {
		return errors.New("ml: cannot fit on empty dataset")
	}
	if rows != len(y) {
		return fmt.Errorf("ml: X has %d rows but y has %d labels", rows, len(y))
	}

	lr.Weights = make([]float64, cols)
	lr.Bias = 0

	grad := make([]float64, cols)
	prevLoss := math.Inf(1)

	for iter := 0; iter < lr.MaxIter; iter++ {
		for j := range grad {
			grad[j] = 0
		}
		gradBias := 0.0
		loss := 0.0

		for i := 0; i < rows; i++ {
			z := lr.Bias
			for j := 0; j < cols; j++ {
				z += lr.Weights[j] * X.At(i, j)
			}
			p := sigmoid(z)
			diff := p - y[i]

			for j := 0; j < cols; j++ {
				grad[j] += diff * X.At(i, j)
			}
			gradBias += diff

			// clamp to avoid log(0)
			p = math.Min(math.Max(p, 1e-15), 1-1e-15)
			loss -= y[i]*math.Log(p) + (1-y[i])*math.Log(1-p)
		}

		n := float64(rows)
		for j := 0; j < cols; j++ {
			grad[j] = grad[j]/n + lr.L2*lr.Weights[j]
			lr.Weights[j] -= lr.LearningRate * grad[j]
		}
		lr.Bias -= lr.LearningRate * gradBias / n

		loss /= n
		if math.Abs(prevLoss-loss) < lr.Tol {
			break
		}
		prevLoss = loss
	}

	return nil
}

func (lr *LogisticRegression) PredictProba(X *mat.Dense) (*mat.Dense, error) {
	if lr.Weights == nil {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != len(lr.Weights) {
		return nil, fmt.Errorf("ml: model fitted on %d features, got %d", len(lr.Weights), cols)
	}

	proba := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		z := lr.Bias
		for j := 0; j < cols; j++ {
			z += lr.Weights[j] * X.At(i, j)
		}
		p := sigmoid(z)
		proba.Set(i, 0, 1-p)
		proba.Set(i, 1, p)
	}
	return proba, nil
}

func (lr *LogisticRegression) Predict(X *mat.Dense) ([]int, error) {
	proba, err := lr.PredictProba(X)
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

// FeatureImportances reports the absolute coefficient magnitudes, normalized
// to sum to one. Meaningful only for scaled inputs.
func (lr *LogisticRegression) FeatureImportances() []float64 {
	if lr.Weights == nil {
		return nil
	}
	out := make([]float64, len(lr.Weights))
	total := 0.0
	for j, w := range lr.Weights {
		out[j] = math.Abs(w)
		total += out[j]
	}
	if total > 0 {
		for j := range out {
			out[j] /= total
		}
	}
	return out
}
