package ml

import (
	"fmt"
	"sort"
	"strings"
)

// Accuracy is the fraction of matching labels.
func Accuracy(yTrue []float64, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	correct := 0
	for i := range yTrue {
		if int(yTrue[i]) == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// ROCAUC computes the area under the ROC curve from positive-class scores
// using the rank statistic (equivalent to the Mann-Whitney U), with tie
// correction via midranks.
func ROCAUC(yTrue, scores []float64) float64 {
	n := len(yTrue)
	if n == 0 {
		return 0
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n-1 && scores[order[j+1]] == scores[order[i]] {
			j++
		}
		midrank := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = midrank
		}
		i = j + 1
	}

	nPos, nNeg, rankSum := 0.0, 0.0, 0.0
	for i := range yTrue {
		if yTrue[i] == 1 {
			nPos++
			rankSum += ranks[i]
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return 0
	}
	return (rankSum - nPos*(nPos+1)/2) / (nPos * nNeg)
}

// ConfusionMatrix is [[TN, FP], [FN, TP]].
func ConfusionMatrix(yTrue []float64, yPred []int) [2][2]int {
	var cm [2][2]int
	for i := range yTrue {
		cm[int(yTrue[i])][yPred[i]]++
	}
	return cm
}

// ClassMetrics holds per-class precision/recall/F1.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

func PrecisionRecallF1(yTrue []float64, yPred []int, class int) ClassMetrics {
	tp, fp, fn, support := 0, 0, 0, 0
	for i := range yTrue {
		actual := int(yTrue[i]) == class
		predicted := yPred[i] == class
		if actual {
			support++
		}
		switch {
		case actual && predicted:
			tp++
		case !actual && predicted:
			fp++
		case actual && !predicted:
			fn++
		}
	}

	m := ClassMetrics{Support: support}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// ClassificationReport renders a per-class summary table in the familiar
// precision/recall/f1/support layout.
func ClassificationReport(yTrue []float64, yPred []int, targetNames [2]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	for class := 0; class < 2; class++ {
		m := PrecisionRecallF1(yTrue, yPred, class)
		fmt.Fprintf(&b, "%-12s %9.3f %9.3f %9.3f %9d\n",
			targetNames[class], m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\n%-12s %29.3f %9d\n", "accuracy", Accuracy(yTrue, yPred), len(yTrue))
	return b.String()
}
