package preprocessing

import (
	"math"
	"reflect"
	"testing"

	"github.com/YuminosukeSato/tabprep/dataset"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

func TestCountEncoder(t *testing.T) {
	train := dataset.NewColumn("code", []string{"a", "a", "b", "a"})
	e := NewCountEncoder()
	if err := e.Fit(train); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	got, err := e.Transform(dataset.NewColumn("code", []string{"a", "b", "z"}))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	want := []float64{3, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Transform() = %v, want %v (unseen label encodes to 0)", got, want)
	}
}

func TestFrequencyEncoder(t *testing.T) {
	train := dataset.NewColumn("code", []string{"a", "a", "b", "a"})
	e := NewFrequencyEncoder()
	got, err := e.FitTransform(train)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	want := []float64{0.75, 0.75, 0.25, 0.75}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}

	out, err := e.Transform(dataset.NewColumn("code", []string{"z"}))
	if err != nil {
		t.Fatalf("Transform() with unseen label error = %v", err)
	}
	if out[0] != 0 {
		t.Errorf("unseen label frequency = %v, want 0", out[0])
	}
}

func TestEncodersCountMissingAsLabel(t *testing.T) {
	train := dataset.NewColumn("code", []string{"a", "", ""})
	e := NewCountEncoder()
	if err := e.Fit(train); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	got, err := e.Transform(dataset.NewColumn("code", []string{"", "a"}))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if got[0] != 2 {
		t.Errorf("missing row count = %v, want 2", got[0])
	}
}

func TestOrdinalEncoder(t *testing.T) {
	train := dataset.NewColumn("code", []string{"b", "a", "b", "c"})
	e := NewOrdinalEncoder()
	if err := e.Fit(train); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	// Codes follow first-encountered order: b=0, a=1, c=2.
	if got := e.Labels; !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("Labels = %v, want [b a c]", got)
	}

	codes, err := e.Transform(dataset.NewColumn("code", []string{"a", "z", "", "c"}))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	want := []int{1, UnseenCode, UnseenCode, 2}
	if !reflect.DeepEqual(codes, want) {
		t.Errorf("Transform() = %v, want %v", codes, want)
	}
}

func TestOrdinalEncoderInverseTransform(t *testing.T) {
	e := NewOrdinalEncoder()
	if err := e.Fit(dataset.NewColumn("code", []string{"b", "a", "c"})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	col, err := e.InverseTransform("code", []int{0, 2, UnseenCode})
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}
	if got := col.Label(0); got != "b" {
		t.Errorf("code 0 = %q, want b", got)
	}
	if got := col.Label(1); got != "c" {
		t.Errorf("code 2 = %q, want c", got)
	}
	if !col.IsMissing(2) {
		t.Errorf("UnseenCode did not invert to a missing row")
	}
}

func TestEncodersNotFitted(t *testing.T) {
	col := dataset.NewColumn("code", []string{"a"})

	var nf *errors.NotFittedError
	if _, err := NewCountEncoder().Transform(col); !errors.As(err, &nf) {
		t.Errorf("CountEncoder.Transform() before Fit error = %v, want NotFittedError", err)
	}
	if _, err := NewFrequencyEncoder().Transform(col); !errors.As(err, &nf) {
		t.Errorf("FrequencyEncoder.Transform() before Fit error = %v, want NotFittedError", err)
	}
	if _, err := NewOrdinalEncoder().Transform(col); !errors.As(err, &nf) {
		t.Errorf("OrdinalEncoder.Transform() before Fit error = %v, want NotFittedError", err)
	}
}
