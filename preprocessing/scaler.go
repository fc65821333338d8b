package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tabprep/core/model"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// StandardScaler standardizes numeric features to zero mean and unit
// variance, fitted on a reference matrix and applied to any partition.
type StandardScaler struct {
	model.BaseEstimator

	// Mean holds the per-feature mean learned at fit time.
	Mean []float64

	// Scale holds the per-feature standard deviation learned at fit time.
	Scale []float64

	// NFeatures is the number of features seen at fit time.
	NFeatures int
}

// NewStandardScaler creates an unfitted StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes per-feature mean and standard deviation from the reference
// matrix. Near-constant features get scale 1 to avoid division by zero.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		s.Mean[j] = sum / float64(r)

		sumSquares := 0.0
		for i := 0; i < r; i++ {
			diff := X.At(i, j) - s.Mean[j]
			sumSquares += diff * diff
		}
		s.Scale[j] = math.Sqrt(sumSquares / float64(r))
		if math.Abs(s.Scale[j]) < 1e-8 {
			s.Scale[j] = 1.0
		}
	}

	s.SetFitted()
	return nil
}

// Transform standardizes X with the fitted statistics.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}
	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}
	return result, nil
}

// FitTransform runs Fit then Transform on the same matrix.
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// String returns a short description of the scaler.
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return "StandardScaler()"
	}
	return fmt.Sprintf("StandardScaler(n_features=%d)", s.NFeatures)
}

// MinMaxScaler rescales numeric features to a target range, default [0, 1].
type MinMaxScaler struct {
	model.BaseEstimator

	// DataMin and DataMax hold the per-feature extrema learned at fit time.
	DataMin []float64
	DataMax []float64

	// Scale holds the per-feature data range (max - min).
	Scale []float64

	// NFeatures is the number of features seen at fit time.
	NFeatures int

	// FeatureRange is the target range after scaling.
	FeatureRange [2]float64
}

// NewMinMaxScaler creates a scaler targeting the given range.
func NewMinMaxScaler(featureRange [2]float64) *MinMaxScaler {
	return &MinMaxScaler{FeatureRange: featureRange}
}

// NewMinMaxScalerDefault creates a scaler targeting [0, 1].
func NewMinMaxScalerDefault() *MinMaxScaler {
	return NewMinMaxScaler([2]float64{0, 1})
}

// Fit computes per-feature minima and maxima from the reference matrix.
// Constant features get scale 1 to avoid division by zero.
func (m *MinMaxScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("MinMaxScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	m.NFeatures = c
	m.DataMin = make([]float64, c)
	m.DataMax = make([]float64, c)
	m.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		lo, hi := X.At(0, j), X.At(0, j)
		for i := 1; i < r; i++ {
			v := X.At(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		m.DataMin[j] = lo
		m.DataMax[j] = hi
		m.Scale[j] = hi - lo
		if math.Abs(m.Scale[j]) < 1e-8 {
			m.Scale[j] = 1.0
		}
	}

	m.SetFitted()
	return nil
}

// Transform rescales X into the target range with the fitted extrema.
func (m *MinMaxScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}
	r, c := X.Dims()
	if c != m.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.Transform", m.NFeatures, c)
	}

	span := m.FeatureRange[1] - m.FeatureRange[0]
	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			scaled := (X.At(i, j)-m.DataMin[j])/m.Scale[j]*span + m.FeatureRange[0]
			result.Set(i, j, scaled)
		}
	}
	return result, nil
}

// FitTransform runs Fit then Transform on the same matrix.
func (m *MinMaxScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// String returns a short description of the scaler.
func (m *MinMaxScaler) String() string {
	if !m.IsFitted() {
		return fmt.Sprintf("MinMaxScaler(feature_range=[%g, %g])", m.FeatureRange[0], m.FeatureRange[1])
	}
	return fmt.Sprintf("MinMaxScaler(feature_range=[%g, %g], n_features=%d)",
		m.FeatureRange[0], m.FeatureRange[1], m.NFeatures)
}
