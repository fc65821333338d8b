package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

func TestROCAUC(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yScore    *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect separation",
			yTrue:     mat.NewVecDense(4, []float64{0, 0, 1, 1}),
			yScore:    mat.NewVecDense(4, []float64{0.1, 0.2, 0.8, 0.9}),
			want:      1.0,
			tolerance: 1e-12,
		},
		{
			name:      "inverted separation",
			yTrue:     mat.NewVecDense(4, []float64{1, 1, 0, 0}),
			yScore:    mat.NewVecDense(4, []float64{0.1, 0.2, 0.8, 0.9}),
			want:      0.0,
			tolerance: 1e-12,
		},
		{
			name:      "all scores tied",
			yTrue:     mat.NewVecDense(4, []float64{0, 1, 0, 1}),
			yScore:    mat.NewVecDense(4, []float64{0.5, 0.5, 0.5, 0.5}),
			want:      0.5,
			tolerance: 1e-12,
		},
		{
			name:      "partial overlap",
			yTrue:     mat.NewVecDense(4, []float64{0, 1, 0, 1}),
			yScore:    mat.NewVecDense(4, []float64{0.1, 0.3, 0.35, 0.8}),
			want:      0.75,
			tolerance: 1e-12,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{0, 1, 0}),
			yScore:  mat.NewVecDense(2, []float64{0.1, 0.2}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yScore:  &mat.VecDense{},
			wantErr: true,
		},
		{
			name:    "non-binary labels",
			yTrue:   mat.NewVecDense(2, []float64{0, 2}),
			yScore:  mat.NewVecDense(2, []float64{0.1, 0.2}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ROCAUC(tt.yTrue, tt.yScore)
			if (err != nil) != tt.wantErr {
				t.Errorf("ROCAUC() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("ROCAUC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestROCAUCSingleClass(t *testing.T) {
	var warned error
	errors.SetWarningHandler(func(w error) { warned = w })
	defer errors.SetWarningHandler(nil)

	got, err := ROCAUC(
		mat.NewVecDense(3, []float64{1, 1, 1}),
		mat.NewVecDense(3, []float64{0.1, 0.2, 0.3}),
	)
	if err != nil {
		t.Fatalf("ROCAUC() error = %v, want nil with warning", err)
	}
	if got != 0.5 {
		t.Errorf("ROCAUC() = %v, want 0.5 for single-class input", got)
	}
	var undefined *errors.UndefinedMetricWarning
	if !errors.As(warned, &undefined) {
		t.Errorf("warning = %v, want UndefinedMetricWarning", warned)
	}
}
