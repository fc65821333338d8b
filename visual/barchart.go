// Package visual renders the descriptive summaries produced by the
// preprocessing package as charts for exploratory inspection.
package visual

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/tabprep/pkg/errors"
	"github.com/YuminosukeSato/tabprep/preprocessing"
)

// TargetRateBars builds a bar chart of per-category mean target values from
// a target-rate summary, one bar per category in summary order.
func TargetRateBars(summary []preprocessing.CategorySummary, title string) (*plot.Plot, error) {
	if len(summary) == 0 {
		return nil, errors.NewValueError("TargetRateBars", "empty summary")
	}

	values := make(plotter.Values, len(summary))
	names := make([]string, len(summary))
	for i, s := range summary {
		values[i] = s.TargetMean
		names[i] = s.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, errors.Wrap(err, "building bar chart")
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "mean target"
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// SaveTargetRateBars renders the bar chart to a file; the format follows the
// file extension (.png, .svg, .pdf).
func SaveTargetRateBars(summary []preprocessing.CategorySummary, title, path string) error {
	p, err := TargetRateBars(summary, title)
	if err != nil {
		return err
	}
	return errors.Wrap(p.Save(6*vg.Inch, 4*vg.Inch, path), "saving chart")
}
