package preprocessing

import (
	"unicode/utf8"

	"github.com/YuminosukeSato/tabprep/core/model"
	"github.com/YuminosukeSato/tabprep/dataset"
)

// DefaultMissingProjection is the category assigned to missing rows by the
// CardinalityReducer.
const DefaultMissingProjection = "n"

var _ model.ColumnTransformer = (*CardinalityReducer)(nil)

// Projection derives a coarser category from a label. It must be a pure
// function of the label value so the reduction is identical across any
// partition of the data, which rules out unseen-category mismatches by
// construction.
type Projection func(label string) string

// FirstRune projects a label to its first character.
func FirstRune(label string) string {
	if label == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(label)
	return label[:size]
}

// CardinalityReducer collapses composite labels into coarser categories via a
// deterministic projection. It holds no fitted state: applying it twice
// yields the same result as applying it once, provided the projection is
// idempotent (the default first-character projection is).
type CardinalityReducer struct {
	model.BaseEstimator

	// Project maps each label to its reduced category. Default: FirstRune.
	Project Projection

	// MissingProjection is the category assigned to missing rows.
	// Default: DefaultMissingProjection.
	MissingProjection string
}

// NewCardinalityReducer creates a reducer with the given projection, or the
// first-character projection when project is nil.
func NewCardinalityReducer(project Projection) *CardinalityReducer {
	if project == nil {
		project = FirstRune
	}
	return &CardinalityReducer{Project: project, MissingProjection: DefaultMissingProjection}
}

// Fit is a no-op marker; the reducer needs no reference data. It exists so
// pipelines can treat the reducer like any other column transformer.
func (c *CardinalityReducer) Fit(_ dataset.Column) error {
	c.SetFitted()
	return nil
}

// Transform returns a new column with every label projected. Missing rows
// become the MissingProjection category and are no longer missing in the
// output.
func (c *CardinalityReducer) Transform(col dataset.Column) (dataset.Column, error) {
	values := make([]string, col.Len())
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			values[i] = c.MissingProjection
			continue
		}
		values[i] = c.Project(col.Label(i))
	}
	return dataset.NewMaskedColumn(col.Name(), values, nil)
}

// FitTransform runs Fit then Transform on the same column.
func (c *CardinalityReducer) FitTransform(col dataset.Column) (dataset.Column, error) {
	if err := c.Fit(col); err != nil {
		return dataset.Column{}, err
	}
	return c.Transform(col)
}
