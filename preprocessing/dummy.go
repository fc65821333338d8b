package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tabprep/core/model"
	"github.com/YuminosukeSato/tabprep/dataset"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// TopKDummyEncoder one-hot encodes the k most frequent labels of a column.
// Fit selects the top-k labels from a reference column (ties broken by
// first-encountered order); Transform emits one binary indicator column per
// selected label. Rows whose label is outside the selection, including labels
// never seen at fit time, produce an all-zero indicator row.
type TopKDummyEncoder struct {
	model.BaseEstimator

	// K is the requested number of indicator columns. It clamps to the
	// number of distinct labels at fit time.
	K int

	// IncludeMissing treats missing values as a distinct label competing
	// for a top-k slot. Default: true.
	IncludeMissing bool

	// Categories holds the selected labels after Fit, most frequent first.
	Categories []string

	index map[string]int
}

// NewTopKDummyEncoder creates an encoder for the k most frequent labels.
// k must be at least 1.
func NewTopKDummyEncoder(k int) (*TopKDummyEncoder, error) {
	if k < 1 {
		return nil, errors.NewValidationError("k", "must be at least 1", k)
	}
	return &TopKDummyEncoder{K: k, IncludeMissing: true}, nil
}

// Fit selects the top-k labels from the reference column. A zero-row column
// fits to an empty selection.
func (e *TopKDummyEncoder) Fit(col dataset.Column) error {
	opts := []FrequencyOption{}
	if !e.IncludeMissing {
		opts = append(opts, ExcludeMissing())
	}
	ft := BuildFrequencyTable(col, opts...)
	e.Categories = ft.TopK(e.K)
	e.index = nil
	e.SetFitted()
	return nil
}

// Transform returns an n×min(k, distinct) indicator matrix: cell (i, j) is 1
// when row i's label equals the j-th selected category, else 0. For empty
// input or an empty selection the matrix is empty.
func (e *TopKDummyEncoder) Transform(col dataset.Column) (*mat.Dense, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("TopKDummyEncoder", "Transform")
	}

	r := col.Len()
	if r == 0 || len(e.Categories) == 0 {
		return &mat.Dense{}, nil
	}

	idx := e.categoryIndex()
	out := mat.NewDense(r, len(e.Categories), nil)
	for i := 0; i < r; i++ {
		label := col.Label(i)
		if col.IsMissing(i) {
			if !e.IncludeMissing {
				continue
			}
			label = MissingLabel
		}
		if j, ok := idx[label]; ok {
			out.Set(i, j, 1)
		}
	}
	return out, nil
}

// FitTransform runs Fit then Transform on the same column.
func (e *TopKDummyEncoder) FitTransform(col dataset.Column) (*mat.Dense, error) {
	if err := e.Fit(col); err != nil {
		return nil, err
	}
	return e.Transform(col)
}

// ColumnNames returns one indicator-column name per selected category,
// prefixed with the source column name.
func (e *TopKDummyEncoder) ColumnNames(source string) []string {
	names := make([]string, len(e.Categories))
	for i, cat := range e.Categories {
		names[i] = fmt.Sprintf("%s_%s", source, cat)
	}
	return names
}

func (e *TopKDummyEncoder) categoryIndex() map[string]int {
	if e.index == nil {
		e.index = make(map[string]int, len(e.Categories))
		for j, cat := range e.Categories {
			e.index[cat] = j
		}
	}
	return e.index
}

// String returns a short description of the encoder.
func (e *TopKDummyEncoder) String() string {
	if !e.IsFitted() {
		return fmt.Sprintf("TopKDummyEncoder(k=%d)", e.K)
	}
	return fmt.Sprintf("TopKDummyEncoder(k=%d, categories=%d)", e.K, len(e.Categories))
}
