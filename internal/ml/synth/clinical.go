// Package synth generates the synthetic training datasets. Distributions
// follow published PCOS cohort characteristics: elevated testosterone, LH,
// insulin, glucose and BMI in the positive class.
package synth

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sumaiya226/PCOS/internal/ml"
)

// ClinicalFeatures is the canonical feature order for the clinical model.
var ClinicalFeatures = []string{
	"Age", "BMI", "Insulin", "Testosterone", "LH", "FSH", "Glucose", "Cholesterol",
}

type featureProfile struct {
	mu    float64
	sigma float64
}

var healthyProfile = []featureProfile{
	{28, 6},   // Age
	{23, 3},   // BMI
	{12, 4},   // Insulin
	{35, 10},  // Testosterone
	{6, 2},    // LH
	{7, 2},    // FSH
	{90, 10},  // Glucose
	{180, 30}, // Cholesterol
}

var pcosProfile = []featureProfile{
	{26, 5},   // Age
	{28, 5},   // BMI
	{18, 6},   // Insulin
	{55, 15},  // Testosterone
	{12, 4},   // LH
	{6, 2},    // FSH
	{105, 15}, // Glucose
	{200, 40}, // Cholesterol
}

// Clinical samples n rows, 70% healthy and 30% PCOS, deterministically for a
// given seed.
func Clinical(n int, seed uint64) *ml.Dataset {
	src := rand.NewSource(seed)

	nHealthy := int(float64(n) * 0.7)
	nPCOS := n - nHealthy

	X := mat.NewDense(n, len(ClinicalFeatures), nil)
	y := make([]float64, n)

	fill := func(rowStart, count int, profile []featureProfile, label float64) {
		dists := make([]distuv.Normal, len(profile))
		for j, p := range profile {
			dists[j] = distuv.Normal{Mu: p.mu, Sigma: p.sigma, Src: src}
		}
		for i := 0; i < count; i++ {
			for j := range dists {
				X.Set(rowStart+i, j, dists[j].Rand())
			}
			y[rowStart+i] = label
		}
	}

	fill(0, nHealthy, healthyProfile, 0)
	fill(nHealthy, nPCOS, pcosProfile, 1)

	return &ml.Dataset{X: X, Y: y, FeatureNames: ClinicalFeatures}
}
