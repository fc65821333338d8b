// Package dataset provides the in-memory tabular types consumed by the
// tabprep transforms: categorical columns with an explicit missing mask and
// schema-checked tables loaded from CSV.
package dataset

// DefaultMissingMarkers are the raw string values interpreted as missing when
// a column is built without an explicit mask.
var DefaultMissingMarkers = []string{"", "NA", "NaN", "nan", "?"}

// Column is an ordered sequence of categorical labels with a missing mask.
// Labels carry no ordinal relationship. A Column is read-only after
// construction; transforms return new columns instead of mutating in place.
type Column struct {
	name   string
	labels []string
	miss   []bool
}

// NewColumn builds a column from raw values, marking values that match one of
// the markers as missing. With no markers given, DefaultMissingMarkers apply.
func NewColumn(name string, values []string, markers ...string) Column {
	if len(markers) == 0 {
		markers = DefaultMissingMarkers
	}
	markerSet := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		markerSet[m] = struct{}{}
	}

	labels := make([]string, len(values))
	miss := make([]bool, len(values))
	for i, v := range values {
		if _, ok := markerSet[v]; ok {
			miss[i] = true
			continue
		}
		labels[i] = v
	}
	return Column{name: name, labels: labels, miss: miss}
}

// NewMaskedColumn builds a column from values and an explicit missing mask.
// The mask must align with values row for row; a nil mask means no missing
// values.
func NewMaskedColumn(name string, values []string, missing []bool) (Column, error) {
	if missing != nil && len(missing) != len(values) {
		return Column{}, errDimension("NewMaskedColumn", len(values), len(missing))
	}
	labels := make([]string, len(values))
	copy(labels, values)
	miss := make([]bool, len(values))
	if missing != nil {
		copy(miss, missing)
	}
	for i := range labels {
		if miss[i] {
			labels[i] = ""
		}
	}
	return Column{name: name, labels: labels, miss: miss}, nil
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Len returns the number of rows.
func (c Column) Len() int { return len(c.labels) }

// Label returns the label at row i. The result is meaningful only when the
// row is not missing.
func (c Column) Label(i int) string { return c.labels[i] }

// IsMissing reports whether row i holds a missing value.
func (c Column) IsMissing(i int) bool { return c.miss[i] }

// MissingCount returns the number of missing rows.
func (c Column) MissingCount() int {
	n := 0
	for _, m := range c.miss {
		if m {
			n++
		}
	}
	return n
}

// MissingRate returns the fraction of rows that are missing, 0 for an empty
// column.
func (c Column) MissingRate() float64 {
	if len(c.miss) == 0 {
		return 0
	}
	return float64(c.MissingCount()) / float64(len(c.miss))
}

// Distinct returns the number of distinct non-missing labels.
func (c Column) Distinct() int {
	seen := make(map[string]struct{})
	for i, l := range c.labels {
		if c.miss[i] {
			continue
		}
		seen[l] = struct{}{}
	}
	return len(seen)
}

// take returns a new column holding the given rows, in order.
func (c Column) take(idx []int) Column {
	labels := make([]string, len(idx))
	miss := make([]bool, len(idx))
	for out, i := range idx {
		labels[out] = c.labels[i]
		miss[out] = c.miss[i]
	}
	return Column{name: c.name, labels: labels, miss: miss}
}
