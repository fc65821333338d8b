package preprocessing

import (
	"encoding/gob"
	"io"

	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// Fitted mappings serialize with encoding/gob through small snapshot types,
// since the embedded estimator state itself is not encodable. Each Save
// requires a fitted transformer; each Load returns a transformer ready to
// apply.

type rareLabelGrouperState struct {
	Threshold float64
	Sentinel  string
	Frequent  map[string]bool
}

// Save writes the fitted grouper to w.
func (g *RareLabelGrouper) Save(w io.Writer) error {
	if !g.IsFitted() {
		return errors.NewNotFittedError("RareLabelGrouper", "Save")
	}
	state := rareLabelGrouperState{Threshold: g.Threshold, Sentinel: g.Sentinel, Frequent: g.Frequent}
	return errors.Wrap(gob.NewEncoder(w).Encode(state), "encoding RareLabelGrouper")
}

// LoadRareLabelGrouper reads a grouper saved with Save.
func LoadRareLabelGrouper(r io.Reader) (*RareLabelGrouper, error) {
	var state rareLabelGrouperState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, errors.Wrap(err, "decoding RareLabelGrouper")
	}
	g := &RareLabelGrouper{Threshold: state.Threshold, Sentinel: state.Sentinel, Frequent: state.Frequent}
	g.SetFitted()
	return g, nil
}

type topKDummyEncoderState struct {
	K              int
	IncludeMissing bool
	Categories     []string
}

// Save writes the fitted encoder to w.
func (e *TopKDummyEncoder) Save(w io.Writer) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError("TopKDummyEncoder", "Save")
	}
	state := topKDummyEncoderState{K: e.K, IncludeMissing: e.IncludeMissing, Categories: e.Categories}
	return errors.Wrap(gob.NewEncoder(w).Encode(state), "encoding TopKDummyEncoder")
}

// LoadTopKDummyEncoder reads an encoder saved with Save.
func LoadTopKDummyEncoder(r io.Reader) (*TopKDummyEncoder, error) {
	var state topKDummyEncoderState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, errors.Wrap(err, "decoding TopKDummyEncoder")
	}
	e := &TopKDummyEncoder{K: state.K, IncludeMissing: state.IncludeMissing, Categories: state.Categories}
	e.SetFitted()
	return e, nil
}

type ordinalEncoderState struct {
	Labels []string
}

// Save writes the fitted encoder to w.
func (e *OrdinalEncoder) Save(w io.Writer) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError("OrdinalEncoder", "Save")
	}
	return errors.Wrap(gob.NewEncoder(w).Encode(ordinalEncoderState{Labels: e.Labels}), "encoding OrdinalEncoder")
}

// LoadOrdinalEncoder reads an encoder saved with Save.
func LoadOrdinalEncoder(r io.Reader) (*OrdinalEncoder, error) {
	var state ordinalEncoderState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, errors.Wrap(err, "decoding OrdinalEncoder")
	}
	e := &OrdinalEncoder{Labels: state.Labels, Codes: make(map[string]int, len(state.Labels))}
	for code, label := range state.Labels {
		e.Codes[label] = code
	}
	e.SetFitted()
	return e, nil
}

type countEncoderState struct {
	Counts map[string]int
}

// Save writes the fitted encoder to w.
func (e *CountEncoder) Save(w io.Writer) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError("CountEncoder", "Save")
	}
	return errors.Wrap(gob.NewEncoder(w).Encode(countEncoderState{Counts: e.Counts}), "encoding CountEncoder")
}

// LoadCountEncoder reads an encoder saved with Save.
func LoadCountEncoder(r io.Reader) (*CountEncoder, error) {
	var state countEncoderState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, errors.Wrap(err, "decoding CountEncoder")
	}
	e := &CountEncoder{Counts: state.Counts}
	e.SetFitted()
	return e, nil
}

type frequencyEncoderState struct {
	Frequencies map[string]float64
}

// Save writes the fitted encoder to w.
func (e *FrequencyEncoder) Save(w io.Writer) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError("FrequencyEncoder", "Save")
	}
	return errors.Wrap(gob.NewEncoder(w).Encode(frequencyEncoderState{Frequencies: e.Frequencies}), "encoding FrequencyEncoder")
}

// LoadFrequencyEncoder reads an encoder saved with Save.
func LoadFrequencyEncoder(r io.Reader) (*FrequencyEncoder, error) {
	var state frequencyEncoderState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, errors.Wrap(err, "decoding FrequencyEncoder")
	}
	e := &FrequencyEncoder{Frequencies: state.Frequencies}
	e.SetFitted()
	return e, nil
}
