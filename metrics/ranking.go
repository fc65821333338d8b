// Package metrics provides the evaluation metrics used to illustrate the
// effect of a feature transform on a downstream classifier.
package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// ROCAUC computes the area under the ROC curve from binary labels (0/1) and
// real-valued scores, using the rank statistic with average ranks for tied
// scores. When only one class is present the metric is undefined; a warning
// is emitted and 0.5 is returned.
func ROCAUC(yTrue, yScore *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("ROCAUC", "empty vector")
	}
	if yScore.Len() != n {
		return 0, errors.NewDimensionError("ROCAUC", n, yScore.Len())
	}

	nPos := 0
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 1:
			nPos++
		case 0:
		default:
			return 0, errors.NewValueError("ROCAUC", "labels must be 0 or 1")
		}
	}
	nNeg := n - nPos
	if nPos == 0 || nNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("roc_auc", "only one class present", 0.5))
		return 0.5, nil
	}

	// Average ranks over ties, then the Mann-Whitney identity.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return yScore.AtVec(idx[a]) < yScore.AtVec(idx[b])
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && yScore.AtVec(idx[j+1]) == yScore.AtVec(idx[i]) {
			j++
		}
		avgRank := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avgRank
		}
		i = j + 1
	}

	sumRanksPos := 0.0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			sumRanksPos += ranks[i]
		}
	}
	auc := (sumRanksPos - float64(nPos)*float64(nPos+1)/2) / (float64(nPos) * float64(nNeg))
	return auc, nil
}
