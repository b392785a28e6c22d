package ml

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	rows, cols := scaled.Dims()
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, scaled)
		mean, variance := 0.0, 0.0
		for _, v := range col {
			mean += v
		}
		mean /= float64(rows)
		for _, v := range col {
			variance += (v - mean) * (v - mean)
		}
		variance /= float64(rows - 1)

		if math.Abs(mean) > 1e-9 {
			t.Errorf("column %d mean = %v, want ~0", j, mean)
		}
		if math.Abs(variance-1) > 1e-9 {
			t.Errorf("column %d variance = %v, want ~1", j, variance)
		}
	}
}

func TestStandardScaler_TransformVector(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		0, 100,
		5, 200,
		10, 300,
	})

	scaler := NewStandardScaler()
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	scaled, err := scaler.TransformVector([]float64{5, 200})
	if err != nil {
		t.Fatalf("TransformVector: %v", err)
	}
	for j, v := range scaled {
		if math.Abs(v) > 1e-9 {
			t.Errorf("mean input should scale to 0, feature %d = %v", j, v)
		}
	}
}

func TestStandardScaler_DimensionMismatch(t *testing.T) {
	scaler := NewStandardScaler()
	if err := scaler.Fit(mat.NewDense(2, 3, nil)); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if _, err := scaler.TransformVector([]float64{1, 2}); err == nil {
		t.Error("expected error for mismatched vector length")
	}
	if _, err := scaler.Transform(mat.NewDense(2, 2, nil)); err == nil {
		t.Error("expected error for mismatched matrix width")
	}
}

func TestStandardScaler_NotFitted(t *testing.T) {
	scaler := NewStandardScaler()
	if _, err := scaler.Transform(mat.NewDense(1, 1, nil)); err != ErrNotFitted {
		t.Errorf("expected ErrNotFitted, got %v", err)
	}
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})
	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	for i := 0; i < 3; i++ {
		if v := scaled.At(i, 0); v != 0 {
			t.Errorf("constant column should center to 0, got %v", v)
		}
	}
}
