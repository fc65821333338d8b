// Package tabprep provides categorical feature-engineering utilities for
// tabular machine learning in Go, with a scikit-learn-like fit/transform API.
//
// Every mapping is learned once from a reference (training) partition and
// applied read-only to any other partition: labels unseen at fit time
// resolve to a defined fallback category or sentinel code instead of failing
// the transform.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/tabprep/dataset"
//	    "github.com/YuminosukeSato/tabprep/preprocessing"
//	)
//
//	func main() {
//	    train := dataset.NewColumn("cabin", []string{"C85", "C85", "C123", "E46", "B78"})
//
//	    grouper, err := preprocessing.NewRareLabelGrouper(0.3)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := grouper.Fit(train); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    test := dataset.NewColumn("cabin", []string{"C85", "G6"})
//	    grouped, err := grouper.Transform(test)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(grouped.Label(0), grouped.Label(1)) // C85 rare
//	}
//
// # Packages
//
//   - dataset: categorical columns with missing masks, schema-checked CSV
//     tables, train/test splitting
//   - preprocessing: frequency tables, top-k dummy encoding, rare-label
//     grouping, cardinality reduction, count/frequency/ordinal encoders,
//     target-rate summaries, numeric scalers
//   - analysis: missing-data diagnostics
//   - metrics: evaluation metrics (ROC AUC)
//   - visual: chart rendering for summaries
//   - config: YAML configuration of per-column transform parameters
//   - core/model: estimator state and transformer interfaces
//
// The tabprep command wires the packages together: it loads a CSV, fits a
// transform on a training split, applies it to the held-out split and writes
// the result.
package tabprep
