package preprocessing

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/tabprep/core/model"
	"github.com/YuminosukeSato/tabprep/dataset"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// DefaultRareSentinel is the replacement category for grouped labels.
const DefaultRareSentinel = "rare"

var _ model.ColumnTransformer = (*RareLabelGrouper)(nil)

// RareLabelGrouper replaces infrequent labels with a sentinel category.
// Fit records the labels whose proportion in the reference column is at
// least the threshold; Transform keeps those labels and maps every other
// label, including labels unseen at fit time, to the sentinel. Missing rows
// pass through unchanged.
type RareLabelGrouper struct {
	model.BaseEstimator

	// Threshold is the minimum proportion of rows a label needs to escape
	// grouping. Must be in (0, 1].
	Threshold float64

	// Sentinel is the replacement category. Default: DefaultRareSentinel.
	Sentinel string

	// Frequent holds the surviving labels after Fit.
	Frequent map[string]bool
}

// NewRareLabelGrouper creates a grouper with the given proportion threshold.
// The threshold must be in (0, 1]; anything else is rejected here, the one
// condition that aborts rather than degrades.
func NewRareLabelGrouper(threshold float64) (*RareLabelGrouper, error) {
	if threshold <= 0 || threshold > 1 {
		return nil, errors.NewValidationError("threshold", "must be a proportion in (0, 1]", threshold)
	}
	return &RareLabelGrouper{Threshold: threshold, Sentinel: DefaultRareSentinel}, nil
}

// Fit records which labels of the reference column occur often enough to be
// preserved. A zero-row column fits to an empty keep-set, so every later
// label groups to the sentinel.
func (g *RareLabelGrouper) Fit(col dataset.Column) error {
	ft := BuildFrequencyTable(col, ExcludeMissing())
	g.Frequent = make(map[string]bool)
	for _, label := range ft.Labels() {
		if ft.Proportion(label) >= g.Threshold {
			g.Frequent[label] = true
		}
	}
	g.SetFitted()
	return nil
}

// Transform returns a new column of the same length where kept labels pass
// through and all others become the sentinel. It never fails on unseen
// labels; they have zero recorded frequency and group by construction.
func (g *RareLabelGrouper) Transform(col dataset.Column) (dataset.Column, error) {
	if !g.IsFitted() {
		return dataset.Column{}, errors.NewNotFittedError("RareLabelGrouper", "Transform")
	}

	values := make([]string, col.Len())
	missing := make([]bool, col.Len())
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			missing[i] = true
			continue
		}
		label := col.Label(i)
		if g.Frequent[label] {
			values[i] = label
		} else {
			values[i] = g.Sentinel
		}
	}
	return dataset.NewMaskedColumn(col.Name(), values, missing)
}

// FitTransform runs Fit then Transform on the same column.
func (g *RareLabelGrouper) FitTransform(col dataset.Column) (dataset.Column, error) {
	if err := g.Fit(col); err != nil {
		return dataset.Column{}, err
	}
	return g.Transform(col)
}

// FrequentLabels returns the surviving labels in sorted order.
func (g *RareLabelGrouper) FrequentLabels() []string {
	labels := make([]string, 0, len(g.Frequent))
	for label := range g.Frequent {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// String returns a short description of the grouper.
func (g *RareLabelGrouper) String() string {
	if !g.IsFitted() {
		return fmt.Sprintf("RareLabelGrouper(threshold=%g)", g.Threshold)
	}
	return fmt.Sprintf("RareLabelGrouper(threshold=%g, frequent=%d)", g.Threshold, len(g.Frequent))
}
