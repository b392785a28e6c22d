package ml

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Dataset couples a feature matrix with its labels and feature names.
type Dataset struct {
	X            *mat.Dense
	Y            []float64
	FeatureNames []string
}

// SelectRows builds a new dataset from the given row indices.
func (d *Dataset) SelectRows(indices []int) *Dataset {
	_, cols := d.X.Dims()
	X := mat.NewDense(len(indices), cols, nil)
	y := make([]float64, len(indices))
	row := make([]float64, cols)
	for k, i := range indices {
		mat.Row(row, i, d.X)
		X.SetRow(k, row)
		y[k] = d.Y[i]
	}
	return &Dataset{X: X, Y: y, FeatureNames: d.FeatureNames}
}

// StratifiedSplit shuffles and splits the dataset preserving the class ratio
// in both halves.
func StratifiedSplit(d *Dataset, testRatio float64, seed int64) (train, test *Dataset, err error) {
	rows, _ := d.X.Dims()
	if rows == 0 {
		return nil, nil, errors.New("ml: cannot split empty dataset")
	}
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, fmt.Errorf("ml: test ratio must be in (0,1), got %v", testRatio)
	}

	rng := rand.New(rand.NewSource(seed))

	var byClass [2][]int
	for i, label := range d.Y {
		byClass[int(label)] = append(byClass[int(label)], i)
	}

	var trainIdx, testIdx []int
	for _, indices := range byClass {
		rng.Shuffle(len(indices), func(a, b int) {
			indices[a], indices[b] = indices[b], indices[a]
		})
		nTest := int(float64(len(indices)) * testRatio)
		testIdx = append(testIdx, indices[:nTest]...)
		trainIdx = append(trainIdx, indices[nTest:]...)
	}

	rng.Shuffle(len(trainIdx), func(a, b int) { trainIdx[a], trainIdx[b] = trainIdx[b], trainIdx[a] })
	rng.Shuffle(len(testIdx), func(a, b int) { testIdx[a], testIdx[b] = testIdx[b], testIdx[a] })

	return d.SelectRows(trainIdx), d.SelectRows(testIdx), nil
}

// ScoreFunc evaluates a fitted classifier against held-out data.
type ScoreFunc func(c Classifier, test *Dataset) (float64, error)

// AccuracyScorer scores by plain accuracy.
func AccuracyScorer(c Classifier, test *Dataset) (float64, error) {
	pred, err := c.Predict(test.X)
	if err != nil {
		return 0, err
	}
	return Accuracy(test.Y, pred), nil
}

// ROCAUCScorer scores by area under the ROC curve.
func ROCAUCScorer(c Classifier, test *Dataset) (float64, error) {
	proba, err := c.PredictProba(test.X)
	if err != nil {
		return 0, err
	}
	rows, _ := proba.Dims()
	scores := make([]float64, rows)
	for i := 0; i < rows; i++ {
		scores[i] = proba.At(i, 1)
	}
	return ROCAUC(test.Y, scores), nil
}

// CrossValidate runs k-fold cross-validation, refitting a fresh model per
// fold via the factory, and returns the per-fold scores.
func CrossValidate(factory func() Classifier, d *Dataset, k int, scorer ScoreFunc, seed int64) ([]float64, error) {
	rows, _ := d.X.Dims()
	if k < 2 || k > rows {
		return nil, fmt.Errorf("ml: invalid fold count %d for %d samples", k, rows)
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(rows)

	scores := make([]float64, 0, k)
	foldSize := rows / k
	for fold := 0; fold < k; fold++ {
		start := fold * foldSize
		end := start + foldSize
		if fold == k-1 {
			end = rows
		}

		testIdx := perm[start:end]
		trainIdx := make([]int, 0, rows-len(testIdx))
		trainIdx = append(trainIdx, perm[:start]...)
		trainIdx = append(trainIdx, perm[end:]...)

		model := factory()
		trainFold := d.SelectRows(trainIdx)
		if err := model.Fit(trainFold.X, trainFold.Y); err != nil {
			return nil, fmt.Errorf("ml: fold %d fit: %w", fold, err)
		}
		score, err := scorer(model, d.SelectRows(testIdx))
		if err != nil {
			return nil, fmt.Errorf("ml: fold %d score: %w", fold, err)
		}
		scores = append(scores, score)
	}

	return scores, nil
}
