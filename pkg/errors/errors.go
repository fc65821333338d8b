// Package errors provides the error and warning system shared by all tabprep
// packages. It is inspired by scikit-learn's exception hierarchy and wraps
// cockroachdb/errors so every constructed error carries a stack trace.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("tabprep-warning: %v\n", w)
	}
	// zerolog sink, registered lazily to avoid a circular import with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the library-wide warning handler. Use it to
// silence or redirect warnings such as UnseenLabelWarning.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc registers a zerolog-backed warning sink. pkg/log calls
// this during setup; it is split out to avoid a circular import.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. When a zerolog sink is registered it takes
// precedence; otherwise the plain handler runs.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// UnseenLabelWarning is emitted when a fitted mapping is applied to a label
// that was absent from the reference data. The transform does not fail; the
// label resolves to the configured fallback and this warning records it.
type UnseenLabelWarning struct {
	Transform string
	Column    string
	Label     string
	Fallback  string
}

func (w *UnseenLabelWarning) Error() string {
	return fmt.Sprintf("%s: label %q in column %q was not seen during fit; mapped to %q",
		w.Transform, w.Label, w.Column, w.Fallback)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *UnseenLabelWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("transform", w.Transform).
		Str("column", w.Column).
		Str("label", w.Label).
		Str("fallback", w.Fallback).
		Str("type", "UnseenLabelWarning")
}

// NewUnseenLabelWarning creates a new UnseenLabelWarning.
func NewUnseenLabelWarning(transform, column, label, fallback string) *UnseenLabelWarning {
	return &UnseenLabelWarning{Transform: transform, Column: column, Label: label, Fallback: fallback}
}

// UndefinedMetricWarning is emitted when a metric cannot be computed from the
// given inputs, e.g. ROC AUC over a single-class label vector. Result holds
// the value returned in that condition.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError reports a Transform or InverseTransform call on a
// transformer whose Fit has not run yet.
type NotFittedError struct {
	TransformName string
	Method        string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("tabprep: %s: this transformer is not fitted yet. Call Fit() before using %s()",
		e.TransformName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("transform", e.TransformName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(transformName, method string) error {
	err := &NotFittedError{TransformName: transformName, Method: method}
	return errors.WithStack(err)
}

// DimensionError reports a length mismatch between two inputs that must be
// aligned row for row, such as a categorical column and its target vector.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("tabprep: %s: length mismatch. Expected %d rows, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValidationError reports a constructor parameter that failed validation,
// such as a rare-label threshold outside (0, 1].
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tabprep: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is unusable for the operation,
// e.g. an empty vector passed to a metric.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("tabprep: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError is a general error raised by a transformer operation.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tabprep: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("tabprep: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace attached.
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation requires at least one row.
	ErrEmptyData = New("empty data")

	// ErrColumnNotFound is returned when a named column is absent from a table.
	ErrColumnNotFound = New("column not found")
)
