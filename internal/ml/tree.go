package ml

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// TreeNode is one node of a fitted CART tree. Leaves carry the weighted class
// distribution of the training samples that reached them.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
	Leaf      bool
	Proba     [2]float64
}

// DecisionTree is a CART binary classification tree using gini impurity.
// MaxFeatures limits the features considered per split (0 means all), which
// is how the random forest decorrelates its members.
type DecisionTree struct {
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	MaxFeatures     int
	Seed            int64

	Root        *TreeNode
	NFeatures   int
	Importances []float64

	rng *rand.Rand
}

func NewDecisionTree() *DecisionTree {
	return &DecisionTree{
		MaxDepth:        10,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
	}
}

func (t *DecisionTree) Name() string { return "Decision Tree" }

func (t *DecisionTree) Params() map[string]any {
	return map[string]any{
		"max_depth":         t.MaxDepth,
		"min_samples_split": t.MinSamplesSplit,
		"min_samples_leaf":  t.MinSamplesLeaf,
		"max_features":      t.MaxFeatures,
	}
}

func (t *DecisionTree) Fit(X *mat.Dense, y []float64) error {
	rows, _ := X.Dims()
	weights := make([]float64, rows)
	for i := range weights {
		weights[i] = 1
	}
	return t.FitWeighted(X, y, weights)
}

// FitWeighted trains the tree with per-sample weights. The forest uses this
// to apply balanced class weighting.
func (t *DecisionTree) FitWeighted(X *mat.Dense, y []float64, weights []float64) error {
	rows, cols := X.Dims()
	if rows == 0 {
		return errors.New("ml: cannot fit on empty dataset")
	}
	if rows != len(y) || rows != len(weights) {
		return fmt.Errorf("ml: X has %d rows, y %d labels, weights %d entries", rows, len(y), len(weights))
	}

	t.NFeatures = cols
	t.Importances = make([]float64, cols)
	t.rng = rand.New(rand.NewSource(t.Seed))

	indices := make([]int, rows)
	for i := range indices {
		indices[i] = i
	}

	t.Root = t.build(X, y, weights, indices, 0)
	t.normalizeImportances()
	return nil
}

func (t *DecisionTree) build(X *mat.Dense, y, weights []float64, indices []int, depth int) *TreeNode {
	w0, w1 := classWeightSums(y, weights, indices)
	total := w0 + w1

	node := &TreeNode{Leaf: true, Proba: [2]float64{0.5, 0.5}}
	if total > 0 {
		node.Proba = [2]float64{w0 / total, w1 / total}
	}

	if depth >= t.MaxDepth || len(indices) < t.MinSamplesSplit || w0 == 0 || w1 == 0 {
		return node
	}

	feature, threshold, gain := t.bestSplit(X, y, weights, indices)
	if feature < 0 {
		return node
	}

	var left, right []int
	for _, i := range indices {
		if X.At(i, feature) <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < t.MinSamplesLeaf || len(right) < t.MinSamplesLeaf {
		return node
	}

	t.Importances[feature] += gain * total

	node.Leaf = false
	node.Feature = feature
	node.Threshold = threshold
	node.Left = t.build(X, y, weights, left, depth+1)
	node.Right = t.build(X, y, weights, right, depth+1)
	return node
}

// bestSplit scans candidate features for the threshold with the largest gini
// decrease. Returns feature -1 when no split improves on the parent.
func (t *DecisionTree) bestSplit(X *mat.Dense, y, weights []float64, indices []int) (int, float64, float64) {
	parentW0, parentW1 := classWeightSums(y, weights, indices)
	parentTotal := parentW0 + parentW1
	parentGini := gini(parentW0, parentW1)

	bestFeature := -1
	bestThreshold := 0.0
	bestGain := 1e-9

	for _, feature := range t.candidateFeatures() {
		// sort sample indices by this feature's value
		sorted := make([]int, len(indices))
		copy(sorted, indices)
		sort.Slice(sorted, func(a, b int) bool {
			return X.At(sorted[a], feature) < X.At(sorted[b], feature)
		})

		leftW0, leftW1 := 0.0, 0.0
		for k := 0; k < len(sorted)-1; k++ {
			i := sorted[k]
			if y[i] == 1 {
				leftW1 += weights[i]
			} else {
				leftW0 += weights[i]
			}

			v, next := X.At(i, feature), X.At(sorted[k+1], feature)
			if v == next {
				continue
			}

			rightW0 := parentW0 - leftW0
			rightW1 := parentW1 - leftW1
			leftTotal := leftW0 + leftW1
			rightTotal := rightW0 + rightW1

			weighted := (leftTotal*gini(leftW0, leftW1) + rightTotal*gini(rightW0, rightW1)) / parentTotal
			gain := parentGini - weighted
			if gain > bestGain {
				bestGain = gain
				bestFeature = feature
				bestThreshold = (v + next) / 2
			}
		}
	}

	return bestFeature, bestThreshold, bestGain
}

func (t *DecisionTree) candidateFeatures() []int {
	if t.MaxFeatures <= 0 || t.MaxFeatures >= t.NFeatures {
		all := make([]int, t.NFeatures)
		for j := range all {
			all[j] = j
		}
		return all
	}
	perm := t.rng.Perm(t.NFeatures)
	return perm[:t.MaxFeatures]
}

func (t *DecisionTree) normalizeImportances() {
	total := 0.0
	for _, v := range t.Importances {
		total += v
	}
	if total > 0 {
		for j := range t.Importances {
			t.Importances[j] /= total
		}
	}
}

func classWeightSums(y, weights []float64, indices []int) (w0, w1 float64) {
	for _, i := range indices {
		if y[i] == 1 {
			w1 += weights[i]
		} else {
			w0 += weights[i]
		}
	}
	return w0, w1
}

func gini(w0, w1 float64) float64 {
	total := w0 + w1
	if total == 0 {
		return 0
	}
	p0 := w0 / total
	p1 := w1 / total
	return 1 - p0*p0 - p1*p1
}

func (t *TreeNode) traverse(x []float64) [2]float64 {
	if t.Leaf {
		return t.Proba
	}
	if x[t.Feature] <= t.Threshold {
		return t.Left.traverse(x)
	}
	return t.Right.traverse(x)
}

func (t *DecisionTree) PredictProba(X *mat.Dense) (*mat.Dense, error) {
	if t.Root == nil {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != t.NFeatures {
		return nil, fmt.Errorf("ml: model fitted on %d features, got %d", t.NFeatures, cols)
	}

	proba := mat.NewDense(rows, 2, nil)
	x := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(x, i, X)
		p := t.Root.traverse(x)
		proba.Set(i, 0, p[0])
		proba.Set(i, 1, p[1])
	}
	return proba, nil
}

func (t *DecisionTree) Predict(X *mat.Dense) ([]int, error) {
	proba, err := t.PredictProba(X)
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

func (t *DecisionTree) FeatureImportances() []float64 {
	return t.Importances
}

// sqrtFeatures is the usual max_features heuristic for classification forests.
func sqrtFeatures(n int) int {
	k := int(math.Sqrt(float64(n)))
	if k < 1 {
		k = 1
	}
	return k
}
