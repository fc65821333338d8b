package errors

import (
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("RareLabelGrouper", "Transform")

	var nf *NotFittedError
	if !As(err, &nf) {
		t.Fatalf("As() failed, error = %v", err)
	}
	if nf.TransformName != "RareLabelGrouper" || nf.Method != "Transform" {
		t.Errorf("fields = (%q, %q), want (RareLabelGrouper, Transform)", nf.TransformName, nf.Method)
	}
	if msg := err.Error(); !strings.Contains(msg, "not fitted") {
		t.Errorf("Error() = %q, want mention of not fitted", msg)
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("TargetRateSummary", 6, 5)
	var de *DimensionError
	if !As(err, &de) {
		t.Fatalf("As() failed, error = %v", err)
	}
	if de.Expected != 6 || de.Got != 5 {
		t.Errorf("fields = (%d, %d), want (6, 5)", de.Expected, de.Got)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("threshold", "must be a proportion in (0, 1]", 1.5)
	var ve *ValidationError
	if !As(err, &ve) {
		t.Fatalf("As() failed, error = %v", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "threshold") || !strings.Contains(msg, "1.5") {
		t.Errorf("Error() = %q, want parameter name and value", msg)
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("StandardScaler.Fit", "empty data", ErrEmptyData)
	if !Is(err, ErrEmptyData) {
		t.Errorf("Is(err, ErrEmptyData) = false, want true")
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewUnseenLabelWarning("RareLabelGrouper", "cabin", "T", "rare")
	Warn(warning)

	var ul *UnseenLabelWarning
	if !As(captured, &ul) {
		t.Fatalf("captured = %v, want UnseenLabelWarning", captured)
	}
	if ul.Label != "T" || ul.Fallback != "rare" {
		t.Errorf("fields = (%q, %q), want (T, rare)", ul.Label, ul.Fallback)
	}
}

func TestWarnZerologSinkTakesPrecedence(t *testing.T) {
	var handlerHit, sinkHit bool
	SetWarningHandler(func(error) { handlerHit = true })
	SetZerologWarnFunc(func(error) { sinkHit = true })
	defer func() {
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	}()

	Warn(New("anything"))
	if !sinkHit {
		t.Errorf("zerolog sink not called")
	}
	if handlerHit {
		t.Errorf("plain handler called despite registered sink")
	}
}
