// Package preprocessing implements categorical feature transforms for
// tabular data: frequency tables, top-k dummy encoding, rare-label grouping,
// cardinality reduction, count/frequency/ordinal encoding and target-rate
// summaries. Every transform follows the fit/transform contract: the mapping
// is learned once from a reference partition and applied read-only to any
// other partition, with unseen labels resolving to a defined fallback.
package preprocessing

import (
	"sort"

	"github.com/YuminosukeSato/tabprep/dataset"
)

// MissingLabel is the pseudo-label under which missing rows are counted when
// a frequency table includes them.
const MissingLabel = "missing"

// FrequencyTable maps each label of a reference column to its occurrence
// count and proportion. It preserves first-encountered label order, which
// breaks ties deterministically in TopK. A FrequencyTable is immutable after
// construction.
type FrequencyTable struct {
	labels []string
	counts map[string]int
	total  int
}

type freqConfig struct {
	includeMissing bool
	missingLabel   string
}

// FrequencyOption configures frequency-table construction.
type FrequencyOption func(*freqConfig)

// ExcludeMissing skips missing rows instead of counting them as a label.
func ExcludeMissing() FrequencyOption {
	return func(c *freqConfig) { c.includeMissing = false }
}

// WithMissingLabel changes the pseudo-label under which missing rows are
// counted. The default is MissingLabel.
func WithMissingLabel(label string) FrequencyOption {
	return func(c *freqConfig) { c.missingLabel = label }
}

// BuildFrequencyTable counts each label of the column. Missing rows count as
// a distinct label by default. A zero-row column yields an empty table.
func BuildFrequencyTable(col dataset.Column, opts ...FrequencyOption) *FrequencyTable {
	cfg := freqConfig{includeMissing: true, missingLabel: MissingLabel}
	for _, opt := range opts {
		opt(&cfg)
	}

	ft := &FrequencyTable{counts: make(map[string]int)}
	for i := 0; i < col.Len(); i++ {
		label := col.Label(i)
		if col.IsMissing(i) {
			if !cfg.includeMissing {
				continue
			}
			label = cfg.missingLabel
		}
		if _, seen := ft.counts[label]; !seen {
			ft.labels = append(ft.labels, label)
		}
		ft.counts[label]++
		ft.total++
	}
	return ft
}

// Len returns the number of distinct labels in the table.
func (ft *FrequencyTable) Len() int { return len(ft.labels) }

// Total returns the number of rows counted.
func (ft *FrequencyTable) Total() int { return ft.total }

// Labels returns the distinct labels in first-encountered order.
func (ft *FrequencyTable) Labels() []string {
	out := make([]string, len(ft.labels))
	copy(out, ft.labels)
	return out
}

// Count returns the occurrence count of label, 0 for unseen labels.
func (ft *FrequencyTable) Count(label string) int {
	return ft.counts[label]
}

// Proportion returns the fraction of counted rows holding label, 0 for
// unseen labels and for an empty table.
func (ft *FrequencyTable) Proportion(label string) float64 {
	if ft.total == 0 {
		return 0
	}
	return float64(ft.counts[label]) / float64(ft.total)
}

// TopK returns the k most frequent labels, ties broken by first-encountered
// order. k larger than the number of distinct labels clamps; k < 1 yields an
// empty slice.
func (ft *FrequencyTable) TopK(k int) []string {
	if k < 1 {
		return nil
	}
	ordered := ft.Labels()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ft.counts[ordered[i]] > ft.counts[ordered[j]]
	})
	if k > len(ordered) {
		k = len(ordered)
	}
	return ordered[:k]
}
