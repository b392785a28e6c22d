package synth

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sumaiya226/PCOS/internal/ml"
)

// LifestyleFeatures is the canonical feature order for the lifestyle model.
// Categorical scales: CycleRegularity 0-2, Hirsutism/Acne 0-3, HairLoss and
// WeightGainDifficulty 0-2, FamilyHistory 0/1.
var LifestyleFeatures = []string{
	"Age", "BMI", "CycleRegularity", "CycleLength",
	"Hirsutism", "Acne", "HairLoss", "WeightGainDifficulty",
	"FamilyHistory", "StressLevel", "ExerciseFrequency", "SleepQuality",
}

// Lifestyle samples n self-reported profiles with ~30% PCOS prevalence.
// PCOS-positive rows skew toward irregular long cycles, androgenic symptoms,
// higher stress and worse sleep.
func Lifestyle(n int, seed uint64) *ml.Dataset {
	src := rand.NewSource(seed)
	rng := rand.New(src)

	X := mat.NewDense(n, len(LifestyleFeatures), nil)
	y := make([]float64, n)

	norm := func(mu, sigma float64) float64 {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}.Rand()
	}

	for i := 0; i < n; i++ {
		hasPCOS := rng.Float64() < 0.3

		var row [12]float64
		if hasPCOS {
			row[0] = norm(28, 5)                                // Age
			row[1] = norm(28, 5)                                // BMI
			row[2] = choice(rng, []float64{0.1, 0.2, 0.7})      // CycleRegularity
			row[3] = norm(45, 15)                               // CycleLength
			row[4] = choice(rng, []float64{0.2, 0.2, 0.3, 0.3}) // Hirsutism
			row[5] = choice(rng, []float64{0.2, 0.3, 0.3, 0.2}) // Acne
			row[6] = choice(rng, []float64{0.3, 0.4, 0.3})      // HairLoss
			row[7] = choice(rng, []float64{0.2, 0.3, 0.5})      // WeightGainDifficulty
			row[8] = choice(rng, []float64{0.4, 0.6})           // FamilyHistory
			row[9] = norm(7, 2)                                 // StressLevel
			row[10] = norm(2, 1)                                // ExerciseFrequency
			row[11] = norm(4, 2)                                // SleepQuality
			y[i] = 1
		} else {
			row[0] = norm(28, 5)
			row[1] = norm(23, 3)
			row[2] = choice(rng, []float64{0.7, 0.2, 0.1})
			row[3] = norm(28, 3)
			row[4] = choice(rng, []float64{0.6, 0.3, 0.1, 0.0})
			row[5] = choice(rng, []float64{0.5, 0.3, 0.2, 0.0})
			row[6] = choice(rng, []float64{0.7, 0.2, 0.1})
			row[7] = choice(rng, []float64{0.5, 0.3, 0.2})
			row[8] = choice(rng, []float64{0.7, 0.3})
			row[9] = norm(5, 2)
			row[10] = norm(3, 1)
			row[11] = norm(7, 2)
		}

		row[0] = clip(row[0], 18, 45)
		row[1] = clip(row[1], 15, 45)
		row[3] = clip(row[3], 20, 90)
		row[9] = clip(row[9], 0, 10)
		row[10] = clip(row[10], 0, 7)
		row[11] = clip(row[11], 0, 10)

		X.SetRow(i, row[:])
	}

	return &ml.Dataset{X: X, Y: y, FeatureNames: LifestyleFeatures}
}

// choice draws an index with the given probabilities.
func choice(rng *rand.Rand, probs []float64) float64 {
	r := rng.Float64()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if r < cum {
			return float64(i)
		}
	}
	return float64(len(probs) - 1)
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
