package preprocessing

import (
	"github.com/YuminosukeSato/tabprep/core/model"
	"github.com/YuminosukeSato/tabprep/dataset"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// CountEncoder replaces each label with its occurrence count in the
// reference column. Labels unseen at fit time encode to 0, as do missing
// rows when the reference excluded them.
type CountEncoder struct {
	model.BaseEstimator

	// Counts is the fitted label-to-count mapping.
	Counts map[string]int
}

// NewCountEncoder creates an unfitted CountEncoder.
func NewCountEncoder() *CountEncoder {
	return &CountEncoder{}
}

// Fit records per-label counts from the reference column. Missing rows count
// under MissingLabel.
func (e *CountEncoder) Fit(col dataset.Column) error {
	ft := BuildFrequencyTable(col)
	e.Counts = make(map[string]int, ft.Len())
	for _, label := range ft.Labels() {
		e.Counts[label] = ft.Count(label)
	}
	e.SetFitted()
	return nil
}

// Transform returns the reference count of each row's label; unseen labels
// yield 0.
func (e *CountEncoder) Transform(col dataset.Column) ([]float64, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("CountEncoder", "Transform")
	}
	out := make([]float64, col.Len())
	for i := 0; i < col.Len(); i++ {
		label := col.Label(i)
		if col.IsMissing(i) {
			label = MissingLabel
		}
		out[i] = float64(e.Counts[label])
	}
	return out, nil
}

// FitTransform runs Fit then Transform on the same column.
func (e *CountEncoder) FitTransform(col dataset.Column) ([]float64, error) {
	if err := e.Fit(col); err != nil {
		return nil, err
	}
	return e.Transform(col)
}

// FrequencyEncoder replaces each label with its proportion of the reference
// rows. Labels unseen at fit time encode to 0.
type FrequencyEncoder struct {
	model.BaseEstimator

	// Frequencies is the fitted label-to-proportion mapping.
	Frequencies map[string]float64
}

// NewFrequencyEncoder creates an unfitted FrequencyEncoder.
func NewFrequencyEncoder() *FrequencyEncoder {
	return &FrequencyEncoder{}
}

// Fit records per-label proportions from the reference column. Missing rows
// count under MissingLabel.
func (e *FrequencyEncoder) Fit(col dataset.Column) error {
	ft := BuildFrequencyTable(col)
	e.Frequencies = make(map[string]float64, ft.Len())
	for _, label := range ft.Labels() {
		e.Frequencies[label] = ft.Proportion(label)
	}
	e.SetFitted()
	return nil
}

// Transform returns the reference proportion of each row's label; unseen
// labels yield 0.
func (e *FrequencyEncoder) Transform(col dataset.Column) ([]float64, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("FrequencyEncoder", "Transform")
	}
	out := make([]float64, col.Len())
	for i := 0; i < col.Len(); i++ {
		label := col.Label(i)
		if col.IsMissing(i) {
			label = MissingLabel
		}
		out[i] = e.Frequencies[label]
	}
	return out, nil
}

// FitTransform runs Fit then Transform on the same column.
func (e *FrequencyEncoder) FitTransform(col dataset.Column) ([]float64, error) {
	if err := e.Fit(col); err != nil {
		return nil, err
	}
	return e.Transform(col)
}

// UnseenCode is the integer code the OrdinalEncoder assigns to labels absent
// from its reference data.
const UnseenCode = -1

// OrdinalEncoder maps labels to integer codes in first-encountered reference
// order. Unseen labels and missing rows encode to UnseenCode.
type OrdinalEncoder struct {
	model.BaseEstimator

	// Labels holds the reference labels in code order, so Labels[code]
	// recovers the original label.
	Labels []string

	// Codes is the fitted label-to-code mapping.
	Codes map[string]int
}

// NewOrdinalEncoder creates an unfitted OrdinalEncoder.
func NewOrdinalEncoder() *OrdinalEncoder {
	return &OrdinalEncoder{}
}

// Fit assigns codes 0..n-1 to the distinct non-missing labels of the
// reference column in first-encountered order.
func (e *OrdinalEncoder) Fit(col dataset.Column) error {
	ft := BuildFrequencyTable(col, ExcludeMissing())
	e.Labels = ft.Labels()
	e.Codes = make(map[string]int, len(e.Labels))
	for code, label := range e.Labels {
		e.Codes[label] = code
	}
	e.SetFitted()
	return nil
}

// Transform returns each row's integer code. Missing rows and labels unseen
// at fit time yield UnseenCode; the transform never fails on them. Each
// distinct unseen label is reported once through the warning hook.
func (e *OrdinalEncoder) Transform(col dataset.Column) ([]int, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OrdinalEncoder", "Transform")
	}
	out := make([]int, col.Len())
	warned := make(map[string]bool)
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			out[i] = UnseenCode
			continue
		}
		label := col.Label(i)
		code, ok := e.Codes[label]
		if !ok {
			out[i] = UnseenCode
			if !warned[label] {
				warned[label] = true
				errors.Warn(errors.NewUnseenLabelWarning("OrdinalEncoder", col.Name(), label, "-1"))
			}
			continue
		}
		out[i] = code
	}
	return out, nil
}

// FitTransform runs Fit then Transform on the same column.
func (e *OrdinalEncoder) FitTransform(col dataset.Column) ([]int, error) {
	if err := e.Fit(col); err != nil {
		return nil, err
	}
	return e.Transform(col)
}

// InverseTransform maps codes back to labels; UnseenCode and out-of-range
// codes become missing rows in the result.
func (e *OrdinalEncoder) InverseTransform(name string, codes []int) (dataset.Column, error) {
	if !e.IsFitted() {
		return dataset.Column{}, errors.NewNotFittedError("OrdinalEncoder", "InverseTransform")
	}
	values := make([]string, len(codes))
	missing := make([]bool, len(codes))
	for i, code := range codes {
		if code < 0 || code >= len(e.Labels) {
			missing[i] = true
			continue
		}
		values[i] = e.Labels[code]
	}
	return dataset.NewMaskedColumn(name, values, missing)
}
