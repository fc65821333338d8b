// Package analysis provides descriptive diagnostics over tabular columns,
// currently centered on missing-data inspection: how often a column is
// missing and whether missingness correlates with the target, the practical
// check behind the MCAR/MAR distinction.
package analysis

import (
	"math"

	"github.com/YuminosukeSato/tabprep/dataset"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// MissingComparison contrasts the target over rows where a column is missing
// against rows where it is present. A large gap between the two means hints
// that values are not missing completely at random.
type MissingComparison struct {
	MissingCount    int
	PresentCount    int
	MeanWhenMissing float64
	MeanWhenPresent float64
}

// Gap returns the absolute difference between the two group means. It is NaN
// when either group is empty.
func (m MissingComparison) Gap() float64 {
	return math.Abs(m.MeanWhenMissing - m.MeanWhenPresent)
}

// CompareMissing splits the target by the column's missing mask and averages
// each side. An empty group yields NaN for its mean. NaN targets are skipped.
func CompareMissing(col dataset.Column, target []float64) (MissingComparison, error) {
	if len(target) != col.Len() {
		return MissingComparison{}, errors.NewDimensionError("CompareMissing", col.Len(), len(target))
	}

	var out MissingComparison
	var sumMissing, sumPresent float64
	for i := 0; i < col.Len(); i++ {
		if math.IsNaN(target[i]) {
			continue
		}
		if col.IsMissing(i) {
			out.MissingCount++
			sumMissing += target[i]
		} else {
			out.PresentCount++
			sumPresent += target[i]
		}
	}

	out.MeanWhenMissing = math.NaN()
	if out.MissingCount > 0 {
		out.MeanWhenMissing = sumMissing / float64(out.MissingCount)
	}
	out.MeanWhenPresent = math.NaN()
	if out.PresentCount > 0 {
		out.MeanWhenPresent = sumPresent / float64(out.PresentCount)
	}
	return out, nil
}
