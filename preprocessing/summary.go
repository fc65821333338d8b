package preprocessing

import (
	"github.com/YuminosukeSato/tabprep/dataset"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// CategorySummary describes one category of a column against a numeric
// target: how often it occurs and the mean target value among its rows.
type CategorySummary struct {
	Label      string
	Count      int
	Proportion float64
	TargetMean float64
}

// TargetRateSummary computes per-category count, proportion of total rows
// and mean target value, in first-encountered category order. Missing rows
// group under MissingLabel. Categories with zero rows are absent from the
// output. The result is descriptive; it is not a transform.
func TargetRateSummary(col dataset.Column, target []float64) ([]CategorySummary, error) {
	if len(target) != col.Len() {
		return nil, errors.NewDimensionError("TargetRateSummary", col.Len(), len(target))
	}
	if col.Len() == 0 {
		return nil, nil
	}

	type acc struct {
		count int
		sum   float64
	}
	var order []string
	stats := make(map[string]*acc)
	for i := 0; i < col.Len(); i++ {
		label := col.Label(i)
		if col.IsMissing(i) {
			label = MissingLabel
		}
		a, seen := stats[label]
		if !seen {
			a = &acc{}
			stats[label] = a
			order = append(order, label)
		}
		a.count++
		a.sum += target[i]
	}

	total := float64(col.Len())
	out := make([]CategorySummary, len(order))
	for i, label := range order {
		a := stats[label]
		out[i] = CategorySummary{
			Label:      label,
			Count:      a.count,
			Proportion: float64(a.count) / total,
			TargetMean: a.sum / float64(a.count),
		}
	}
	return out, nil
}
