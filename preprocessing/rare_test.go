package preprocessing

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/tabprep/dataset"
	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

func TestNewRareLabelGrouperValidation(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		wantErr   bool
	}{
		{name: "zero", threshold: 0, wantErr: true},
		{name: "negative", threshold: -0.1, wantErr: true},
		{name: "above one", threshold: 1.5, wantErr: true},
		{name: "exactly one", threshold: 1, wantErr: false},
		{name: "typical", threshold: 0.05, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRareLabelGrouper(tt.threshold)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRareLabelGrouper(%v) error = %v, wantErr %v", tt.threshold, err, tt.wantErr)
			}
		})
	}
}

func TestRareLabelGrouperGrouping(t *testing.T) {
	// X=0.5, Y=0.333, Z=0.167 against t=0.3: only Z groups.
	col := dataset.NewColumn("code", []string{"X", "X", "X", "Y", "Y", "Z"})
	g, err := NewRareLabelGrouper(0.3)
	if err != nil {
		t.Fatalf("NewRareLabelGrouper(0.3) error = %v", err)
	}

	out, err := g.FitTransform(col)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	want := []string{"X", "X", "X", "Y", "Y", "rare"}
	for i, w := range want {
		if got := out.Label(i); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}
	if out.Len() != col.Len() {
		t.Errorf("output length = %d, want %d", out.Len(), col.Len())
	}
}

func TestRareLabelGrouperRegroupedProportions(t *testing.T) {
	// After grouping, every surviving label keeps proportion >= t and the
	// sentinel's proportion equals the grouped labels' combined share.
	col := dataset.NewColumn("code", []string{"a", "a", "a", "a", "b", "b", "c", "d"})
	threshold := 0.25
	g, err := NewRareLabelGrouper(threshold)
	if err != nil {
		t.Fatalf("NewRareLabelGrouper(%v) error = %v", threshold, err)
	}
	out, err := g.FitTransform(col)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	before := BuildFrequencyTable(col)
	after := BuildFrequencyTable(out)
	groupedShare := 0.0
	for _, label := range before.Labels() {
		if before.Proportion(label) < threshold {
			groupedShare += before.Proportion(label)
		}
	}
	for _, label := range after.Labels() {
		if label == g.Sentinel {
			continue
		}
		if p := after.Proportion(label); p < threshold {
			t.Errorf("surviving label %q has proportion %v, want >= %v", label, p, threshold)
		}
	}
	if p := after.Proportion(g.Sentinel); math.Abs(p-groupedShare) > 1e-12 {
		t.Errorf("sentinel proportion = %v, want %v", p, groupedShare)
	}
}

func TestRareLabelGrouperUnseenLabel(t *testing.T) {
	g, err := NewRareLabelGrouper(0.3)
	if err != nil {
		t.Fatalf("NewRareLabelGrouper(0.3) error = %v", err)
	}
	if err := g.Fit(dataset.NewColumn("code", []string{"a", "a", "b"})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	// "z" never appeared in the reference data; it must group, not fail.
	out, err := g.Transform(dataset.NewColumn("code", []string{"z", "a"}))
	if err != nil {
		t.Fatalf("Transform() with unseen label error = %v, want nil", err)
	}
	if got := out.Label(0); got != g.Sentinel {
		t.Errorf("unseen label mapped to %q, want %q", got, g.Sentinel)
	}
	if got := out.Label(1); got != "a" {
		t.Errorf("frequent label mapped to %q, want a", got)
	}
}

func TestRareLabelGrouperMissingPassthrough(t *testing.T) {
	col := dataset.NewColumn("code", []string{"a", "", "a", "b"})
	g, err := NewRareLabelGrouper(0.5)
	if err != nil {
		t.Fatalf("NewRareLabelGrouper(0.5) error = %v", err)
	}
	out, err := g.FitTransform(col)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	if !out.IsMissing(1) {
		t.Errorf("missing row lost its mask after grouping")
	}
	if got := out.Label(3); got != g.Sentinel {
		t.Errorf("b (proportion 1/3 of non-missing) mapped to %q, want %q", got, g.Sentinel)
	}
}

func TestRareLabelGrouperEmptyReference(t *testing.T) {
	g, err := NewRareLabelGrouper(0.3)
	if err != nil {
		t.Fatalf("NewRareLabelGrouper(0.3) error = %v", err)
	}
	if err := g.Fit(dataset.NewColumn("code", nil)); err != nil {
		t.Fatalf("Fit() on empty column error = %v, want nil", err)
	}
	out, err := g.Transform(dataset.NewColumn("code", []string{"a"}))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if got := out.Label(0); got != g.Sentinel {
		t.Errorf("label after empty-reference fit = %q, want %q", got, g.Sentinel)
	}
}

func TestRareLabelGrouperNotFitted(t *testing.T) {
	g, err := NewRareLabelGrouper(0.3)
	if err != nil {
		t.Fatalf("NewRareLabelGrouper(0.3) error = %v", err)
	}
	_, err = g.Transform(dataset.NewColumn("code", []string{"a"}))
	var nf *errors.NotFittedError
	if !errors.As(err, &nf) {
		t.Errorf("Transform() before Fit error = %v, want NotFittedError", err)
	}
}

func TestRareLabelGrouperCustomSentinel(t *testing.T) {
	g, err := NewRareLabelGrouper(0.9)
	if err != nil {
		t.Fatalf("NewRareLabelGrouper(0.9) error = %v", err)
	}
	g.Sentinel = "other"
	out, err := g.FitTransform(dataset.NewColumn("code", []string{"a", "b"}))
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	for i := 0; i < out.Len(); i++ {
		if got := out.Label(i); got != "other" {
			t.Errorf("row %d = %q, want custom sentinel other", i, got)
		}
	}
}
