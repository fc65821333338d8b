package model

// EstimatorState tracks whether a transformer has been fitted.
type EstimatorState int

const (
	// NotFitted means Fit has not run yet.
	NotFitted EstimatorState = iota
	// Fitted means Fit has completed and the mapping is ready to apply.
	Fitted
)

// BaseEstimator is embedded by every fitted transformer to track its
// lifecycle state.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether Fit has completed.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the transformer as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the transformer to its unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
