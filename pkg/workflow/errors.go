package workflow

import (
	"errors"
	"fmt"
)

// FailureKind classifies workflow failures for callers.
type FailureKind string

// Failure kinds surfaced to workflow callers.
const (
	FailurePatternNotFound    FailureKind = "pattern-not-found"
	FailureRoleNotProvisioned FailureKind = "role-not-provisioned"
	FailureNoRuntime          FailureKind = "no-runtime"
	FailureStepFailed         FailureKind = "step-failed"
	FailureTimeout            FailureKind = "timeout"
	FailureCancelled          FailureKind = "cancelled"
	FailureEscalation         FailureKind = "escalation-failed"
)

// Error is a typed workflow failure. StepIndex is -1 when the failure is
// not attributable to a specific step.
type Error struct {
	Kind      FailureKind
	StepIndex int
	Err       error
}

func (e *Error) Error() string {
	if e.StepIndex >= 0 {
		return fmt.Sprintf("workflow %s at step %d: %v", e.Kind, e.StepIndex, e.Err)
	}
	return fmt.Sprintf("workflow %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind FailureKind, step int, err error) *Error {
	return &Error{Kind: kind, StepIndex: step, Err: err}
}

// KindOf extracts the failure kind from err, defaulting to step-failed.
func KindOf(err error) FailureKind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return FailureStepFailed
}
