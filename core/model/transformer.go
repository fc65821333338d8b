package model

import "github.com/YuminosukeSato/tabprep/dataset"

// ColumnTransformer is a label-to-label transform over a categorical column.
// Fit learns the mapping from a reference partition; Transform applies the
// stored mapping read-only, so labels unseen at fit time resolve to the
// transform's fallback instead of failing.
type ColumnTransformer interface {
	// Fit learns the mapping parameters from a reference column.
	Fit(col dataset.Column) error

	// Transform returns a new column of the same length with the stored
	// mapping applied.
	Transform(col dataset.Column) (dataset.Column, error)

	// FitTransform runs Fit then Transform on the same column.
	FitTransform(col dataset.Column) (dataset.Column, error)
}
