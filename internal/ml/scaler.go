package ml

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var ErrNotFitted = errors.New("ml: estimator is not fitted")

// StandardScaler centers each feature to zero mean and unit variance.
// Fit learns the column statistics, Transform applies them.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

func (s *StandardScaler) Fit(X *mat.Dense) error {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.New("ml: cannot fit scaler on empty matrix")
	}

	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 {
			std = 1 // constant column, leave values centered only
		}
		s.Mean[j] = mean
		s.Std[j] = std
	}
	return nil
}

func (s *StandardScaler) Transform(X *mat.Dense) (*mat.Dense, error) {
	if s.Mean == nil {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != len(s.Mean) {
		return nil, fmt.Errorf("ml: scaler fitted on %d features, got %d", len(s.Mean), cols)
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Std[j])
		}
	}
	return out, nil
}

func (s *StandardScaler) FitTransform(X *mat.Dense) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// TransformVector scales a single sample in place-free form. Used on the
// request path where inputs arrive as plain slices.
func (s *StandardScaler) TransformVector(x []float64) ([]float64, error) {
	if s.Mean == nil {
		return nil, ErrNotFitted
	}
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("ml: scaler fitted on %d features, got %d", len(s.Mean), len(x))
	}
	out := make([]float64, len(x))
	for j := range x {
		out[j] = (x[j] - s.Mean[j]) / s.Std[j]
	}
	return out, nil
}
